package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV2FNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2F
		want Vec2F
	}{
		{"Zero vector", Vec2F{}, Vec2F{}},
		{"Axis X", Vec2F{5, 0}, Vec2F{1, 0}},
		{"Axis Y negative", Vec2F{0, -3}, Vec2F{0, -1}},
		{"Diagonal", Vec2F{3, 4}, Vec2F{0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2FNormalize(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestV2FDistAndMidpoint(t *testing.T) {
	a := Vec2F{1, 2}
	b := Vec2F{4, 6}

	assert.InDelta(t, 5.0, V2FDist(a, b), 1e-9)
	assert.Equal(t, V2FDist(a, b), V2FDist(b, a))
	assert.Equal(t, Vec2F{2.5, 4}, V2FMidpoint(a, b))
	assert.InDelta(t, 25.0, V2FMagSq(V2FSub(b, a)), 1e-9)
	assert.InDelta(t, 0.0, V2FDot(Vec2F{1, 0}, Vec2F{0, 1}), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	// Inverted range resolves to the lower bound
	assert.Equal(t, 8.0, Clamp(3, 8, 2))
}

func TestSnapZero(t *testing.T) {
	assert.Equal(t, 0.0, SnapZero(0.049, 0.05))
	assert.Equal(t, 0.0, SnapZero(-0.049, 0.05))
	assert.Equal(t, 0.05, SnapZero(0.05, 0.05))
	assert.False(t, math.Signbit(SnapZero(-0.01, 0.05)))
}
