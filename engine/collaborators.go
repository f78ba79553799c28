package engine

import (
	"context"

	"github.com/lixenwraith/cookie-jar/core"
)

// Renderer draws one frame; calls arrive in order background, overlay, pieces, Show
type Renderer interface {
	DrawBackground()
	DrawWarningOverlay(active bool)
	DrawPiece(p *core.Piece)
	DrawGameOver()
	Show()
}

// ScoreDisplay shows the live score and the persisted high-score list
type ScoreDisplay interface {
	SetScore(score int)
	SetHighScores(scores []int)
}

// HighScoreStore persists the top scores, highest first
type HighScoreStore interface {
	Load(ctx context.Context) ([]int, error)
	Save(ctx context.Context, score int) error
}

// SoundCues plays short effects; implementations must not block the loop
type SoundCues interface {
	PlayDrop()
	PlayMerge(tier int)
	PlayWarning()
	PlayGameOver()
}

// No-op collaborators fill any dependency left nil
type (
	nopRenderer struct{}
	nopDisplay  struct{}
	nopStore    struct{}
	nopSound    struct{}
)

func (nopRenderer) DrawBackground()         {}
func (nopRenderer) DrawWarningOverlay(bool) {}
func (nopRenderer) DrawPiece(*core.Piece)   {}
func (nopRenderer) DrawGameOver()           {}
func (nopRenderer) Show()                   {}

func (nopDisplay) SetScore(int)        {}
func (nopDisplay) SetHighScores([]int) {}

func (nopStore) Load(context.Context) ([]int, error) { return nil, nil }
func (nopStore) Save(context.Context, int) error     { return nil }

func (nopSound) PlayDrop()     {}
func (nopSound) PlayMerge(int) {}
func (nopSound) PlayWarning()  {}
func (nopSound) PlayGameOver() {}
