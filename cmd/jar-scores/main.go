package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/cookie-jar/config"
	"github.com/lixenwraith/cookie-jar/score"
	"github.com/lixenwraith/cookie-jar/scoreboard"
)

var (
	configFlag = flag.String("config", os.Getenv("COOKIEJAR_CONFIG"), "Path to TOML config file")
	addrFlag   = flag.String("addr", ":8080", "Listen address")
	release    = flag.Bool("release", false, "Run gin in release mode")
)

const shutdownTimeout = 5 * time.Second

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jar-scores: %v\n", err)
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

	log, err := cfg.Logging.NewLogger(zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := score.Open(ctx, cfg.Scores, cfg.Scoring.Slots, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if *release {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	scoreboard.Register(router, store, log)

	srv := &http.Server{
		Addr:              *addrFlag,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("scoreboard listening", zap.String("addr", srv.Addr), zap.String("backend", cfg.Scores.Backend))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
