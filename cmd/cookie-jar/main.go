package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/cookie-jar/asset"
	"github.com/lixenwraith/cookie-jar/audio"
	"github.com/lixenwraith/cookie-jar/config"
	"github.com/lixenwraith/cookie-jar/engine"
	"github.com/lixenwraith/cookie-jar/input"
	"github.com/lixenwraith/cookie-jar/render"
	"github.com/lixenwraith/cookie-jar/score"
)

var (
	configFlag = flag.String("config", os.Getenv("COOKIEJAR_CONFIG"), "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/cookie-jar.log")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cookie-jar: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	tiers := asset.DefaultTable()
	if cfg.Assets.Manifest != "" {
		if tiers, err = asset.LoadManifest(cfg.Assets.Manifest); err != nil {
			return err
		}
	}
	if err := cfg.Validate(tiers.Count()); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, logFile, err := setupLogging(*debugFlag, cfg.Logging)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := score.Open(ctx, cfg.Scores, cfg.Scoring.Slots, log)
	if err != nil {
		return err
	}
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOOKIE-JAR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	settings := cfg.Settings(tiers.Count())
	renderer := render.NewTerminalRenderer(screen, tiers, render.Options{
		Jar:         settings.Jar,
		HazardLine:  cfg.Jar.HazardLine,
		OverlayLine: cfg.Jar.HazardLine + cfg.Jar.OverlayMargin,
		Slots:       cfg.Scoring.Slots,
	})

	jobs := renderer.PreloadJobs()
	var sound engine.SoundCues
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(tiers.Count(), cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Cleanup()
			jobs = append(jobs, sm.PreloadJobs()...)
			sound = sm
		}
	}

	preloadCtx, cancelPreload := context.WithTimeout(ctx, cfg.Timing.PreloadTimeout)
	err = engine.Preload(preloadCtx, jobs...)
	cancelPreload()
	if err != nil {
		log.Error("preload failed", zap.Error(err))
		return fmt.Errorf("preload: %w", err)
	}

	ctrl := engine.NewController(settings, engine.Deps{
		Renderer: renderer,
		Display:  renderer,
		Store:    store,
		Sound:    sound,
		Logger:   log,
	})

	events := make(chan engine.Event, 64)
	translator := input.NewTranslator(renderer, cfg.Pieces.NudgeStep)
	go pollEvents(ctx, screen, translator, events)

	loop := engine.NewLoop(ctrl, events, cfg.Timing.FrameInterval, log)
	loop.OnResize(func() {
		screen.Sync()
		renderer.Resize()
	})

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// pollEvents feeds translated terminal events to the loop until the screen is finalized
func pollEvents(ctx context.Context, screen tcell.Screen, tr *input.Translator, out chan<- engine.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		for _, e := range tr.Translate(ev) {
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}
