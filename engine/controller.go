package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/cookie-jar/core"
	"github.com/lixenwraith/cookie-jar/physics"
	"github.com/lixenwraith/cookie-jar/vmath"
)

// Settings collects the tunables the controller needs for one game
type Settings struct {
	Jar     physics.Bounds
	Physics physics.Profile
	Sizing  core.Sizing

	// TierCount is the size of the tier table
	TierCount int
	// SpawnTiers bounds new pieces to tiers [0, SpawnTiers)
	SpawnTiers int
	SpawnY     float64

	DropVelocity  float64
	MergeVelocity float64
	ScoreUnit     int

	HazardLine  float64
	WarningLine float64

	LossAfter     time.Duration
	WarnAfter     time.Duration
	FlashInterval time.Duration
	SpawnDelay    time.Duration
}

// DefaultSettings returns the classic 350x400 jar with ten tiers
func DefaultSettings() Settings {
	return Settings{
		Jar:           physics.DefaultBounds,
		Physics:       physics.DefaultProfile,
		Sizing:        core.DefaultSizing,
		TierCount:     10,
		SpawnTiers:    2,
		SpawnY:        30,
		DropVelocity:  1,
		MergeVelocity: -1,
		ScoreUnit:     10,
		HazardLine:    70,
		WarningLine:   90,
		LossAfter:     5 * time.Second,
		WarnAfter:     3 * time.Second,
		FlashInterval: 500 * time.Millisecond,
		SpawnDelay:    500 * time.Millisecond,
	}
}

// Deps wires the controller to its collaborators; nil fields get no-op defaults
type Deps struct {
	Renderer Renderer
	Display  ScoreDisplay
	Store    HighScoreStore
	Sound    SoundCues
	Clock    TimeProvider
	Rand     *vmath.FastRand
	Logger   *zap.Logger
}

// Controller owns the game state and advances it one frame at a time
// All methods must be called from the loop goroutine
type Controller struct {
	settings Settings
	state    *GameState

	hazard HazardMonitor
	merge  MergeRules
	sched  Scheduler

	renderer Renderer
	display  ScoreDisplay
	store    HighScoreStore
	sound    SoundCues
	clock    TimeProvider
	rng      *vmath.FastRand
	log      *zap.Logger
}

// NewController creates a controller in the loading phase
func NewController(settings Settings, deps Deps) *Controller {
	c := &Controller{
		settings: settings,
		state:    NewGameState(),
		hazard: HazardMonitor{
			LossAfter:     settings.LossAfter,
			WarnAfter:     settings.WarnAfter,
			FlashInterval: settings.FlashInterval,
			HazardLine:    settings.HazardLine,
			WarningLine:   settings.WarningLine,
		},
		merge: MergeRules{
			TierCount:     settings.TierCount,
			ScoreUnit:     settings.ScoreUnit,
			MergeVelocity: settings.MergeVelocity,
			Sizing:        settings.Sizing,
		},
		renderer: deps.Renderer,
		display:  deps.Display,
		store:    deps.Store,
		sound:    deps.Sound,
		clock:    deps.Clock,
		rng:      deps.Rand,
		log:      deps.Logger,
	}

	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	if c.display == nil {
		c.display = nopDisplay{}
	}
	if c.store == nil {
		c.store = nopStore{}
	}
	if c.sound == nil {
		c.sound = nopSound{}
	}
	if c.clock == nil {
		c.clock = NewMonotonicTimeProvider()
	}
	if c.rng == nil {
		c.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Start leaves the loading phase once preload has finished
// High scores are loaded for display; a store failure is logged and the game starts anyway
func (c *Controller) Start(ctx context.Context) {
	if c.state.Phase != PhaseLoading {
		return
	}

	c.refreshHighScores(ctx)
	c.display.SetScore(0)
	c.state.Phase = PhaseSpawning
	c.log.Info("game started",
		zap.Float64("jar_width", c.settings.Jar.Width),
		zap.Float64("jar_height", c.settings.Jar.Height),
		zap.Int("tiers", c.settings.TierCount))
}

// Frame advances the simulation by one step and renders the result
// Returns false once the round has ended or when there is nothing to simulate
func (c *Controller) Frame(ctx context.Context) bool {
	s := c.state
	if s.Phase == PhaseLoading || s.Phase == PhaseGameOver || s.GameOver {
		return false
	}

	now := c.clock.Now()
	c.sched.RunDue(now, s.Round)

	if s.Phase == PhaseSpawning {
		c.spawn()
	}
	s.FrameNumber++

	// 1. Integrate
	for _, p := range s.Pieces {
		physics.Integrate(p, c.settings.Jar, &c.settings.Physics)
	}

	// 2. Hazard check
	wasWarning := s.Warning
	if c.hazard.Check(s, now) == HazardLoss {
		c.endRound(ctx)
		return false
	}
	if s.Warning && !wasWarning {
		c.sound.PlayWarning()
		c.log.Info("hazard warning", zap.Uint64("frame", s.FrameNumber))
	}

	// 3. Collisions
	physics.ResolveCollisions(s.Pieces, c.settings.Jar, &c.settings.Physics)

	// 4. Render
	c.render()

	// 5. Merges
	if merges := EvaluateMerges(s, &c.merge); len(merges) > 0 {
		c.display.SetScore(s.Score)
		for _, m := range merges {
			c.sound.PlayMerge(m.Result.Tier)
			c.log.Debug("merge",
				zap.Int("from_tier", m.FromTier),
				zap.Int("to_tier", m.Result.Tier),
				zap.Int("points", m.Points),
				zap.Int("score", s.Score))
		}
	}

	return true
}

// PointerMove sets the aiming piece's x, clamped so the piece stays inside the jar
func (c *Controller) PointerMove(x float64) {
	p := c.state.Current
	if c.state.Phase != PhaseAiming || p == nil {
		return
	}
	p.X = vmath.Clamp(x, p.Radius, c.settings.Jar.Width-p.Radius)
}

// Nudge shifts the aiming piece by dx
func (c *Controller) Nudge(dx float64) {
	if p := c.state.Current; p != nil {
		c.PointerMove(p.X + dx)
	}
}

// Drop releases the aiming piece into the jar and schedules the next spawn
func (c *Controller) Drop() {
	s := c.state
	p := s.Current
	if s.Phase != PhaseAiming || p == nil {
		return
	}

	now := c.clock.Now()
	p.Falling = true
	p.VY = c.settings.DropVelocity
	p.DroppedAt = now

	s.Pieces = append(s.Pieces, p)
	s.Current = nil
	s.Phase = PhaseDropped

	c.sched.After(now, c.settings.SpawnDelay, s.Round, c.spawnAfterDrop)
	c.sound.PlayDrop()
	c.log.Debug("drop", zap.Int("tier", p.Tier), zap.Float64("x", p.X))
}

// Reset discards the round and returns to spawning; valid from any phase but loading
func (c *Controller) Reset() {
	s := c.state
	if s.Phase == PhaseLoading {
		return
	}

	c.sched.Clear()
	s.clearRound()
	s.Phase = PhaseSpawning
	c.display.SetScore(0)
	c.log.Info("round reset", zap.Uint64("round", s.Round))
}

// Redraw repaints the current state without advancing it
func (c *Controller) Redraw() {
	switch c.state.Phase {
	case PhaseLoading:
		return
	case PhaseGameOver:
		c.render()
		c.renderer.DrawGameOver()
		c.renderer.Show()
	default:
		c.render()
	}
}

// Phase returns the current lifecycle phase
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// Running reports whether frames should be scheduled
func (c *Controller) Running() bool {
	switch c.state.Phase {
	case PhaseSpawning, PhaseAiming, PhaseDropped:
		return !c.state.GameOver
	default:
		return false
	}
}

// State exposes the game state for inspection
func (c *Controller) State() *GameState {
	return c.state
}

// spawn creates the aiming piece at the spawn point with a random low tier
func (c *Controller) spawn() {
	s := c.state
	tier := c.rng.Intn(c.settings.SpawnTiers)
	s.Current = core.NewPiece(c.settings.Jar.Width/2, c.settings.SpawnY, tier, false, c.settings.Sizing)
	s.Phase = PhaseAiming
}

// spawnAfterDrop runs from the scheduler; a round that has ended in the meantime gets nothing
func (c *Controller) spawnAfterDrop() {
	if c.state.Phase != PhaseDropped || c.state.GameOver {
		return
	}
	c.spawn()
}

func (c *Controller) render() {
	s := c.state
	c.renderer.DrawBackground()
	c.renderer.DrawWarningOverlay(s.Warning && s.WarningFlash)
	for _, p := range s.Pieces {
		c.renderer.DrawPiece(p)
	}
	if s.Current != nil {
		c.renderer.DrawPiece(s.Current)
	}
	c.renderer.Show()
}

// endRound stops simulation, persists the final score and shows the game-over screen
func (c *Controller) endRound(ctx context.Context) {
	s := c.state
	s.Phase = PhaseGameOver
	c.sched.Clear()
	c.sound.PlayGameOver()
	c.log.Info("game over",
		zap.Int("score", s.Score),
		zap.Int("pieces", len(s.Pieces)),
		zap.Uint64("frames", s.FrameNumber))

	if err := c.store.Save(ctx, s.Score); err != nil {
		c.log.Warn("failed to save score", zap.Int("score", s.Score), zap.Error(err))
	}
	c.refreshHighScores(ctx)

	c.renderer.DrawGameOver()
	c.renderer.Show()
}

func (c *Controller) refreshHighScores(ctx context.Context) {
	scores, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn("failed to load high scores", zap.Error(err))
		return
	}
	c.display.SetHighScores(scores)
}
