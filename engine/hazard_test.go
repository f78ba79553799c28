package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/cookie-jar/core"
)

var hazardEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testHazard() *HazardMonitor {
	return &HazardMonitor{
		LossAfter:     5 * time.Second,
		WarnAfter:     3 * time.Second,
		FlashInterval: 500 * time.Millisecond,
		HazardLine:    70,
		WarningLine:   90,
	}
}

// droppedAt returns a tier-0 piece whose top edge is at top, dropped at t
func droppedAt(top float64, t time.Time) *core.Piece {
	p := core.NewPiece(175, top+core.DefaultSizing.BaseRadius, 0, true, core.DefaultSizing)
	p.DroppedAt = t
	return p
}

func TestHazardCheckLevels(t *testing.T) {
	tests := []struct {
		name        string
		top         float64
		held        time.Duration
		wantLevel   HazardLevel
		wantOver    bool
		wantWarning bool
	}{
		{"low piece", 200, time.Minute, HazardClear, false, false},
		{"above hazard but fresh", 50, 2 * time.Second, HazardClear, false, false},
		{"warning band after 3s", 80, 3 * time.Second, HazardWarning, false, true},
		{"above hazard after 4s warns", 60, 4 * time.Second, HazardWarning, false, true},
		{"above hazard after 5s loses", 70, 5 * time.Second, HazardLoss, true, false},
		{"warning band never loses", 85, time.Minute, HazardWarning, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWith(droppedAt(tt.top, hazardEpoch))
			level := testHazard().Check(s, hazardEpoch.Add(tt.held))

			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantOver, s.GameOver)
			assert.Equal(t, tt.wantWarning, s.Warning)
		})
	}
}

func TestHazardCheckSkipsUndroppedPieces(t *testing.T) {
	// Merge results have no drop timestamp and never trigger the hazard
	p := core.NewPiece(175, 10, 3, true, core.DefaultSizing)
	s := stateWith(p)

	assert.Equal(t, HazardClear, testHazard().Check(s, hazardEpoch.Add(time.Hour)))
	assert.False(t, s.GameOver)
}

func TestHazardGameOverIsMonotonic(t *testing.T) {
	p := droppedAt(40, hazardEpoch)
	s := stateWith(p)
	h := testHazard()

	assert.Equal(t, HazardLoss, h.Check(s, hazardEpoch.Add(6*time.Second)))

	// Piece leaves the danger zone; the round stays lost
	p.Y = 350
	assert.Equal(t, HazardLoss, h.Check(s, hazardEpoch.Add(7*time.Second)))
	assert.True(t, s.GameOver)
}

func TestHazardFlashTogglesOnInterval(t *testing.T) {
	s := stateWith(droppedAt(80, hazardEpoch))
	h := testHazard()

	now := hazardEpoch.Add(3 * time.Second)
	h.Check(s, now)
	assert.True(t, s.WarningFlash, "first warning frame turns the flash on")

	// Frames inside the interval leave the flash alone
	for i := 1; i < 30; i++ {
		h.Check(s, now.Add(time.Duration(i)*16*time.Millisecond))
		assert.True(t, s.WarningFlash)
	}

	h.Check(s, now.Add(500*time.Millisecond))
	assert.False(t, s.WarningFlash)

	h.Check(s, now.Add(time.Second))
	assert.True(t, s.WarningFlash)
}

func TestHazardWarningClearsWhenPieceSinks(t *testing.T) {
	p := droppedAt(80, hazardEpoch)
	s := stateWith(p)
	h := testHazard()

	h.Check(s, hazardEpoch.Add(3*time.Second))
	assert.True(t, s.Warning)

	p.Y = 300
	assert.Equal(t, HazardClear, h.Check(s, hazardEpoch.Add(4*time.Second)))
	assert.False(t, s.Warning)
}
