package score

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresStore keeps scores in the high_scores table, trimmed to the top slots on every save
type PostgresStore struct {
	pool  *pgxpool.Pool
	slots int
	log   *zap.Logger
}

// NewPostgresStore connects, verifies the connection and applies pending migrations
func NewPostgresStore(ctx context.Context, dsn string, slots int, log *zap.Logger) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool, slots: slots, log: log}, nil
}

// RunMigrations applies all pending schema migrations
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (p *PostgresStore) Load(ctx context.Context) ([]int, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT score FROM high_scores ORDER BY score DESC, id ASC LIMIT $1`, p.slots,
	)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int32
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, int(s))
	}
	return scores, rows.Err()
}

func (p *PostgresStore) Save(ctx context.Context, score int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `INSERT INTO high_scores (score) VALUES ($1)`, score); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM high_scores WHERE id NOT IN (
		   SELECT id FROM high_scores ORDER BY score DESC, id ASC LIMIT $1
		 )`, p.slots,
	)
	if err != nil {
		return fmt.Errorf("trim scores: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	p.log.Debug("score saved", zap.Int("score", score), zap.Int64("trimmed", tag.RowsAffected()))
	return nil
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
