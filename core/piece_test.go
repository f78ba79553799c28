package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSizingDerivation(t *testing.T) {
	tests := []struct {
		tier       int
		wantRadius float64
		wantMass   float64
	}{
		{0, 25, 12.5},
		{1, 30, 15},
		{9, 70, 35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantRadius, DefaultSizing.Radius(tt.tier), "radius tier %d", tt.tier)
		assert.Equal(t, tt.wantMass, DefaultSizing.Mass(tt.tier), "mass tier %d", tt.tier)
	}
}

func TestNewPiece(t *testing.T) {
	held := NewPiece(175, 30, 1, false, DefaultSizing)
	assert.Equal(t, 30.0, held.Radius)
	assert.Equal(t, 15.0, held.Mass)
	assert.False(t, held.Falling)
	assert.True(t, held.Still())
	assert.False(t, held.Dropped())

	falling := NewPiece(100, 100, 0, true, DefaultSizing)
	assert.True(t, falling.Falling)
	assert.Equal(t, 1.0, falling.VY)
	assert.False(t, falling.OnGround)
	assert.False(t, falling.Merged)
}

func TestPieceGeometry(t *testing.T) {
	a := NewPiece(100, 100, 0, true, DefaultSizing)
	b := NewPiece(140, 100, 0, true, DefaultSizing)
	c := NewPiece(150, 100, 0, true, DefaultSizing)

	assert.Equal(t, 75.0, a.Top())
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	// Touching exactly is not overlapping
	assert.False(t, a.Overlaps(c))

	a.DroppedAt = time.Unix(10, 0)
	assert.True(t, a.Dropped())
}
