package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/cookie-jar/core"
	"github.com/lixenwraith/cookie-jar/engine"
	"github.com/lixenwraith/cookie-jar/physics"
)

type Config struct {
	Jar     JarConfig     `toml:"jar"`
	Physics PhysicsConfig `toml:"physics"`
	Pieces  PiecesConfig  `toml:"pieces"`
	Timing  TimingConfig  `toml:"timing"`
	Scoring ScoringConfig `toml:"scoring"`
	Scores  ScoresConfig  `toml:"scores"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	Assets  AssetsConfig  `toml:"assets"`
}

type JarConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	HazardLine    float64 `toml:"hazard_line"`    // loss line, measured from the jar top
	WarningMargin float64 `toml:"warning_margin"` // warning line = hazard_line + margin
	OverlayMargin float64 `toml:"overlay_margin"` // warning overlay covers the jar down to hazard_line + margin
}

type PhysicsConfig struct {
	Gravity         float64 `toml:"gravity"`
	WallBounce      float64 `toml:"wall_bounce"`
	FloorFriction   float64 `toml:"floor_friction"`
	GroundEpsilon   float64 `toml:"ground_epsilon"`
	SnapEpsilon     float64 `toml:"snap_epsilon"`
	JitterThreshold float64 `toml:"jitter_threshold"`
	RestVelocity    float64 `toml:"rest_velocity"`
	Damping         float64 `toml:"damping"`
	Restitution     float64 `toml:"restitution"`
}

type PiecesConfig struct {
	BaseRadius    float64 `toml:"base_radius"`
	RadiusStep    float64 `toml:"radius_step"`
	MassFactor    float64 `toml:"mass_factor"`
	SpawnTiers    int     `toml:"spawn_tiers"`
	SpawnY        float64 `toml:"spawn_y"`
	DropVelocity  float64 `toml:"drop_velocity"`
	MergeVelocity float64 `toml:"merge_velocity"`
	NudgeStep     float64 `toml:"nudge_step"`
}

type TimingConfig struct {
	FrameInterval  time.Duration `toml:"frame_interval"`
	LossAfter      time.Duration `toml:"loss_after"`
	WarnAfter      time.Duration `toml:"warn_after"`
	FlashInterval  time.Duration `toml:"flash_interval"`
	SpawnDelay     time.Duration `toml:"spawn_delay"`
	PreloadTimeout time.Duration `toml:"preload_timeout"`
}

type ScoringConfig struct {
	Unit  int `toml:"unit"`
	Slots int `toml:"slots"` // high-score entries kept and shown
}

type ScoresConfig struct {
	Backend     string `toml:"backend"` // "file", "memory", "redis" or "postgres"
	Path        string `toml:"path"`
	RedisURL    string `toml:"redis_url"`
	RedisKey    string `toml:"redis_key"`
	PostgresDSN string `toml:"postgres_dsn"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty disables logging unless --debug
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // base-2 gain, 0 = unchanged
}

type AssetsConfig struct {
	Manifest string `toml:"manifest"` // empty = embedded tier table
}

// Load reads a TOML config over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=value pairs from a .env file into the process environment
// A missing file is not an error
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func Default() *Config {
	return &Config{
		Jar: JarConfig{
			Width:         physics.DefaultBounds.Width,
			Height:        physics.DefaultBounds.Height,
			HazardLine:    70,
			WarningMargin: 20,
			OverlayMargin: 10,
		},
		Physics: PhysicsConfig{
			Gravity:         physics.DefaultProfile.Gravity,
			WallBounce:      physics.DefaultProfile.WallBounce,
			FloorFriction:   physics.DefaultProfile.FloorFriction,
			GroundEpsilon:   physics.DefaultProfile.GroundEpsilon,
			SnapEpsilon:     physics.DefaultProfile.SnapEpsilon,
			JitterThreshold: physics.DefaultProfile.JitterThreshold,
			RestVelocity:    physics.DefaultProfile.RestVelocity,
			Damping:         physics.DefaultProfile.Damping,
			Restitution:     physics.DefaultProfile.Restitution,
		},
		Pieces: PiecesConfig{
			BaseRadius:    core.DefaultSizing.BaseRadius,
			RadiusStep:    core.DefaultSizing.RadiusStep,
			MassFactor:    core.DefaultSizing.MassFactor,
			SpawnTiers:    2,
			SpawnY:        30,
			DropVelocity:  1,
			MergeVelocity: -1,
			NudgeStep:     10,
		},
		Timing: TimingConfig{
			FrameInterval:  16 * time.Millisecond,
			LossAfter:      5 * time.Second,
			WarnAfter:      3 * time.Second,
			FlashInterval:  500 * time.Millisecond,
			SpawnDelay:     500 * time.Millisecond,
			PreloadTimeout: 5 * time.Second,
		},
		Scoring: ScoringConfig{
			Unit:  10,
			Slots: 3,
		},
		Scores: ScoresConfig{
			Backend:  "file",
			Path:     "cookie-jar-scores.json",
			RedisURL: "redis://localhost:6379/0",
			RedisKey: "cookiejar:highscores",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// ApplyEnv overrides selected keys from COOKIEJAR_* environment variables
// Unparseable values are reported and leave the key unchanged
func (c *Config) ApplyEnv() error {
	var errs []error

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("COOKIEJAR_SCORES_BACKEND", &c.Scores.Backend)
	setString("COOKIEJAR_SCORES_PATH", &c.Scores.Path)
	setString("COOKIEJAR_REDIS_URL", &c.Scores.RedisURL)
	setString("COOKIEJAR_REDIS_KEY", &c.Scores.RedisKey)
	setString("COOKIEJAR_POSTGRES_DSN", &c.Scores.PostgresDSN)
	setString("COOKIEJAR_LOG_LEVEL", &c.Logging.Level)
	setString("COOKIEJAR_LOG_FORMAT", &c.Logging.Format)
	setString("COOKIEJAR_LOG_FILE", &c.Logging.File)
	setString("COOKIEJAR_MANIFEST", &c.Assets.Manifest)

	if v, ok := os.LookupEnv("COOKIEJAR_AUDIO"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("COOKIEJAR_AUDIO: %w", err))
		} else {
			c.Audio.Enabled = enabled
		}
	}
	if v, ok := os.LookupEnv("COOKIEJAR_SCORE_SLOTS"); ok && v != "" {
		slots, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("COOKIEJAR_SCORE_SLOTS: %w", err))
		} else {
			c.Scoring.Slots = slots
		}
	}

	return errors.Join(errs...)
}

// Validate checks the config against a tier table of tierCount tiers
func (c *Config) Validate(tierCount int) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Jar.Width <= 0 || c.Jar.Height <= 0 {
		fail("jar: dimensions must be positive, got %vx%v", c.Jar.Width, c.Jar.Height)
	}
	if c.Jar.HazardLine < 0 || c.Jar.HazardLine >= c.Jar.Height {
		fail("jar: hazard_line %v outside jar height", c.Jar.HazardLine)
	}
	if c.Pieces.BaseRadius <= 0 || c.Pieces.RadiusStep < 0 {
		fail("pieces: base_radius must be positive and radius_step non-negative")
	}
	if c.Pieces.MassFactor <= 0 {
		fail("pieces: mass_factor must be positive")
	}
	if c.Pieces.SpawnTiers < 1 || c.Pieces.SpawnTiers > tierCount {
		fail("pieces: spawn_tiers %d outside [1, %d]", c.Pieces.SpawnTiers, tierCount)
	}

	durations := map[string]time.Duration{
		"frame_interval":  c.Timing.FrameInterval,
		"loss_after":      c.Timing.LossAfter,
		"warn_after":      c.Timing.WarnAfter,
		"flash_interval":  c.Timing.FlashInterval,
		"spawn_delay":     c.Timing.SpawnDelay,
		"preload_timeout": c.Timing.PreloadTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			fail("timing: %s must be positive, got %v", name, d)
		}
	}

	if c.Scoring.Unit <= 0 || c.Scoring.Slots <= 0 {
		fail("scoring: unit and slots must be positive")
	}

	switch strings.ToLower(c.Scores.Backend) {
	case "memory", "file", "redis", "postgres":
	default:
		fail("scores: unknown backend %q", c.Scores.Backend)
	}

	return errors.Join(errs...)
}

// Settings converts the config into controller settings for a tier table of tierCount tiers
func (c *Config) Settings(tierCount int) engine.Settings {
	return engine.Settings{
		Jar: physics.Bounds{Width: c.Jar.Width, Height: c.Jar.Height},
		Physics: physics.Profile{
			Gravity:         c.Physics.Gravity,
			WallBounce:      c.Physics.WallBounce,
			FloorFriction:   c.Physics.FloorFriction,
			GroundEpsilon:   c.Physics.GroundEpsilon,
			SnapEpsilon:     c.Physics.SnapEpsilon,
			JitterThreshold: c.Physics.JitterThreshold,
			RestVelocity:    c.Physics.RestVelocity,
			Damping:         c.Physics.Damping,
			Restitution:     c.Physics.Restitution,
		},
		Sizing: core.Sizing{
			BaseRadius: c.Pieces.BaseRadius,
			RadiusStep: c.Pieces.RadiusStep,
			MassFactor: c.Pieces.MassFactor,
		},
		TierCount:     tierCount,
		SpawnTiers:    c.Pieces.SpawnTiers,
		SpawnY:        c.Pieces.SpawnY,
		DropVelocity:  c.Pieces.DropVelocity,
		MergeVelocity: c.Pieces.MergeVelocity,
		ScoreUnit:     c.Scoring.Unit,
		HazardLine:    c.Jar.HazardLine,
		WarningLine:   c.Jar.HazardLine + c.Jar.WarningMargin,
		LossAfter:     c.Timing.LossAfter,
		WarnAfter:     c.Timing.WarnAfter,
		FlashInterval: c.Timing.FlashInterval,
		SpawnDelay:    c.Timing.SpawnDelay,
	}
}
