package score

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/cookie-jar/config"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name
var ErrUnknownBackend = errors.New("unknown score backend")

// Store persists the top scores, highest first
type Store interface {
	Load(ctx context.Context) ([]int, error)
	Save(ctx context.Context, score int) error
	Close() error
}

// Insert adds s to scores and returns the top limit entries, highest first
// The input slice is not modified
func Insert(scores []int, s, limit int) []int {
	out := make([]int, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, s)
	slices.SortStableFunc(out, func(a, b int) int { return b - a })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Open creates the store named by cfg.Backend, keeping the top slots scores
func Open(ctx context.Context, cfg config.ScoresConfig, slots int, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		store Store
		err   error
	)
	switch strings.ToLower(cfg.Backend) {
	case "memory":
		store = NewMemoryStore(slots)
	case "file", "":
		store, err = NewFileStore(cfg.Path, slots)
	case "redis":
		store, err = NewRedisStore(ctx, cfg.RedisURL, cfg.RedisKey, slots)
	case "postgres":
		store, err = NewPostgresStore(ctx, cfg.PostgresDSN, slots, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s score store: %w", cfg.Backend, err)
	}

	log.Info("score store ready", zap.String("backend", cfg.Backend), zap.Int("slots", slots))
	return store, nil
}
