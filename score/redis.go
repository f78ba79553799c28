package score

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the top scores in a sorted set
// Members are unique per save so equal scores are all kept
type RedisStore struct {
	client *redis.Client
	key    string
	slots  int
}

// NewRedisStore connects to redisURL and verifies the connection
func NewRedisStore(ctx context.Context, redisURL, key string, slots int) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStoreFromClient(client, key, slots), nil
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client, key string, slots int) *RedisStore {
	return &RedisStore{client: client, key: key, slots: slots}
}

func (r *RedisStore) Load(ctx context.Context) ([]int, error) {
	entries, err := r.client.ZRevRangeWithScores(ctx, r.key, 0, int64(r.slots-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	scores := make([]int, 0, len(entries))
	for _, z := range entries {
		scores = append(scores, int(z.Score))
	}
	return scores, nil
}

func (r *RedisStore) Save(ctx context.Context, score int) error {
	member := strconv.Itoa(score) + ":" + strconv.FormatInt(time.Now().UnixNano(), 36)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, r.key, redis.Z{Score: float64(score), Member: member})
		// Keep ranks [-slots, -1], the highest scores
		pipe.ZRemRangeByRank(ctx, r.key, 0, int64(-r.slots-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
