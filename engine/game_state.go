package engine

import (
	"time"

	"github.com/lixenwraith/cookie-jar/core"
)

// Phase is the controller's position in the round lifecycle
type Phase uint8

const (
	// PhaseLoading waits for asset preload; no frames are simulated
	PhaseLoading Phase = iota
	// PhaseSpawning has no current piece; the next frame spawns one
	PhaseSpawning
	// PhaseAiming has a controllable current piece
	PhaseAiming
	// PhaseDropped has released the current piece; a replacement is scheduled
	PhaseDropped
	// PhaseGameOver is terminal until reset
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseLoading:  "loading",
	PhaseSpawning: "spawning",
	PhaseAiming:   "aiming",
	PhaseDropped:  "dropped",
	PhaseGameOver: "game_over",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// GameState is the single owner of all mutable round state
// Mutated only from the loop goroutine: frames and input handlers interleave, never overlap
type GameState struct {
	// ===== ROUND STATE =====

	Phase Phase
	Score int

	// Pieces is the active collection, the only source of truth for simulation and rendering
	Pieces []*core.Piece
	// Current is the player-held piece, never a member of Pieces
	Current *core.Piece

	// GameOver is set once by the hazard monitor and cleared only by reset
	GameOver bool

	// Round increments on every reset; scheduled work from an older round is discarded
	Round uint64

	// ===== HAZARD TIMING =====

	// Warning is true when this frame has a piece lingering above the warning line
	Warning bool
	// WarningFlash is the overlay's current blink state
	WarningFlash bool
	// LastFlash is when WarningFlash last toggled
	LastFlash time.Time

	// FrameNumber counts simulated frames in the current round
	FrameNumber uint64
}

// NewGameState returns an empty state waiting for preload
func NewGameState() *GameState {
	return &GameState{
		Phase:  PhaseLoading,
		Pieces: make([]*core.Piece, 0, 32),
	}
}

// clearRound empties the jar and advances the round generation
func (s *GameState) clearRound() {
	clear(s.Pieces)
	s.Pieces = s.Pieces[:0]
	s.Current = nil
	s.Score = 0
	s.GameOver = false
	s.Warning = false
	s.WarningFlash = false
	s.LastFlash = time.Time{}
	s.FrameNumber = 0
	s.Round++
}
