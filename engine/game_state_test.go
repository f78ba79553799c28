package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/cookie-jar/core"
)

// TestGameStateInitialization verifies GameState starts empty and waiting for preload
func TestGameStateInitialization(t *testing.T) {
	gs := NewGameState()

	if gs.Phase != PhaseLoading {
		t.Errorf("Expected phase %v, got %v", PhaseLoading, gs.Phase)
	}
	if len(gs.Pieces) != 0 {
		t.Errorf("Expected no pieces, got %d", len(gs.Pieces))
	}
	if gs.Current != nil {
		t.Error("Expected no current piece")
	}
	if gs.Score != 0 || gs.GameOver || gs.Round != 0 {
		t.Errorf("Unexpected initial values: score=%d gameOver=%v round=%d", gs.Score, gs.GameOver, gs.Round)
	}
}

// TestGameStateClearRound verifies reset empties the jar and bumps the round
func TestGameStateClearRound(t *testing.T) {
	gs := NewGameState()
	gs.Phase = PhaseGameOver
	gs.Score = 120
	gs.GameOver = true
	gs.Warning = true
	gs.WarningFlash = true
	gs.LastFlash = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gs.FrameNumber = 300
	gs.Current = core.NewPiece(175, 30, 0, false, core.DefaultSizing)
	for i := 0; i < 5; i++ {
		gs.Pieces = append(gs.Pieces, core.NewPiece(50+float64(i)*50, 300, 1, true, core.DefaultSizing))
	}

	gs.clearRound()

	if len(gs.Pieces) != 0 {
		t.Errorf("Expected empty jar, got %d pieces", len(gs.Pieces))
	}
	if gs.Current != nil {
		t.Error("Expected current piece cleared")
	}
	if gs.Score != 0 || gs.GameOver || gs.Warning || gs.WarningFlash {
		t.Errorf("Round flags not cleared: score=%d gameOver=%v warning=%v flash=%v",
			gs.Score, gs.GameOver, gs.Warning, gs.WarningFlash)
	}
	if !gs.LastFlash.IsZero() || gs.FrameNumber != 0 {
		t.Errorf("Timing not cleared: lastFlash=%v frame=%d", gs.LastFlash, gs.FrameNumber)
	}
	if gs.Round != 1 {
		t.Errorf("Expected round 1, got %d", gs.Round)
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{
		PhaseLoading:  "loading",
		PhaseSpawning: "spawning",
		PhaseAiming:   "aiming",
		PhaseDropped:  "dropped",
		PhaseGameOver: "game_over",
		Phase(42):     "unknown",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
