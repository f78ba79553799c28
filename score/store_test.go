package score

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/cookie-jar/config"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		s      int
		limit  int
		want   []int
	}{
		{"empty", nil, 50, 3, []int{50}},
		{"top", []int{90, 50}, 200, 3, []int{200, 90, 50}},
		{"drops lowest", []int{200, 90, 50}, 10, 3, []int{200, 90, 50}},
		{"pushes out lowest", []int{200, 90, 50}, 100, 3, []int{200, 100, 90}},
		{"keeps ties", []int{50, 50}, 50, 3, []int{50, 50, 50}},
		{"zero limit", []int{10}, 20, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]int(nil), tt.scores...)
			got := Insert(in, tt.s, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.scores, in, "input untouched")
		})
	}
}

// exerciseStore checks the retention behavior every backend must share
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	scores, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, scores)

	for _, s := range []int{50, 200, 10, 90} {
		require.NoError(t, store.Save(ctx, s))
	}

	scores, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{200, 90, 50}, scores)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(3))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	store, err := NewFileStore(path, 3)
	require.NoError(t, err)

	exerciseStore(t, store)

	// A fresh instance sees the persisted list
	reopened, err := NewFileStore(path, 3)
	require.NoError(t, err)
	scores, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{200, 90, 50}, scores)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path, 3)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.Save(context.Background(), 10), "a corrupt file is not overwritten")
}

func TestFileStoreEmptyPath(t *testing.T) {
	_, err := NewFileStore("", 3)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.ScoresConfig{Backend: "memory"}, 3, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	path := filepath.Join(t.TempDir(), "scores.json")
	store, err = Open(ctx, config.ScoresConfig{Backend: "FILE", Path: path}, 3, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, config.ScoresConfig{Backend: "sqlite"}, 3, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("COOKIEJAR_TEST_REDIS_URL")
	if url == "" {
		t.Skip("COOKIEJAR_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	key := "cookiejar:test:" + t.Name()

	store, err := NewRedisStore(ctx, url, key, 3)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.client.Del(ctx, key).Err())
	defer store.client.Del(ctx, key)

	exerciseStore(t, store)

	n, err := store.client.ZCard(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n, "set trimmed to slots")
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("COOKIEJAR_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("COOKIEJAR_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	store, err := NewPostgresStore(ctx, dsn, 3, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	_, err = store.pool.Exec(ctx, `DELETE FROM high_scores`)
	require.NoError(t, err)

	exerciseStore(t, store)

	// Migrations are idempotent
	require.NoError(t, RunMigrations(ctx, store.pool))

	var n int
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT count(*) FROM high_scores`).Scan(&n))
	assert.Equal(t, 3, n, "table trimmed to slots")
}
