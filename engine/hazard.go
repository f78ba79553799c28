package engine

import "time"

// HazardLevel is the outcome of one hazard check
type HazardLevel uint8

const (
	HazardClear HazardLevel = iota
	HazardWarning
	HazardLoss
)

// HazardMonitor judges whether dropped pieces have lingered too long near the jar top
type HazardMonitor struct {
	// LossAfter is how long a dropped piece may stay at or above HazardLine
	LossAfter time.Duration
	// WarnAfter is how long before a piece at or above WarningLine starts the warning
	WarnAfter time.Duration
	// FlashInterval is the warning overlay blink period, independent of frame rate
	FlashInterval time.Duration

	HazardLine  float64
	WarningLine float64
}

// Check evaluates every dropped piece once for this frame
// Loss sets s.GameOver, which nothing but reset clears
func (h *HazardMonitor) Check(s *GameState, now time.Time) HazardLevel {
	if s.GameOver {
		return HazardLoss
	}

	warning := false
	for _, p := range s.Pieces {
		if !p.Dropped() {
			continue
		}
		held := now.Sub(p.DroppedAt)
		top := p.Top()

		if held >= h.LossAfter && top <= h.HazardLine {
			s.GameOver = true
			s.Warning = false
			return HazardLoss
		} else if held >= h.WarnAfter && top <= h.WarningLine {
			warning = true
		}
	}

	s.Warning = warning
	if !warning {
		return HazardClear
	}

	if now.Sub(s.LastFlash) >= h.FlashInterval {
		s.WarningFlash = !s.WarningFlash
		s.LastFlash = now
	}
	return HazardWarning
}
