package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// Store provides access to the shop database
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger

	databaseURL string
	maxConns    int32
	connTimeout time.Duration
}

// Config holds connection pool settings
type Config struct {
	DatabaseURL string
	MaxConns    int32
	ConnTimeout time.Duration
}

// New creates a Store; call Connect before use
func New(cfg Config, logger *zap.Logger) *Store {
	if cfg.MaxConns == 0 {
		cfg.MaxConns = 10
	}
	if cfg.ConnTimeout == 0 {
		cfg.ConnTimeout = 30 * time.Second
	}

	return &Store{
		logger:      logger,
		maxConns:    cfg.MaxConns,
		connTimeout: cfg.ConnTimeout,
		databaseURL: cfg.DatabaseURL,
	}
}

// Connect establishes the connection pool and verifies connectivity
func (s *Store) Connect(ctx context.Context) error {
	config, err := pgxpool.ParseConfig(s.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = s.maxConns
	config.ConnConfig.ConnectTimeout = s.connTimeout

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	s.pool = pool
	s.logger.Info("Connected to PostgreSQL",
		zap.Int32("max_conns", s.maxConns))

	return nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}
