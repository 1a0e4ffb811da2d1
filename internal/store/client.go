package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

// Supported drivers for Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the remote store. Postgres is the production backend;
// SQLite is accepted for local runs and tests. Queries are traced through
// the GORM OpenTelemetry plugin.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverPostgres, "postgresql", "pg":
		dial = postgres.Open(dsn)
	case DriverSQLite:
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("store: tracing plugin: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// Client issues read queries against the remote store. It holds no state
// beyond the connection handle and is safe for concurrent use.
type Client struct {
	DB *gorm.DB
}

// NewClient wraps an open GORM handle.
func NewClient(db *gorm.DB) *Client { return &Client{DB: db} }

// List runs q and scans all rows into dest (a pointer to a slice).
func (c *Client) List(ctx context.Context, q Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if c == nil || c.DB == nil {
		return errors.New("store: client not configured")
	}
	return q.apply(c.DB.WithContext(ctx)).Find(dest).Error
}

// Single runs q and returns the only matching row. It returns ErrNoRows when
// nothing matches and ErrMultipleRows when the match is ambiguous.
func Single[T any](ctx context.Context, c *Client, q Query) (T, error) {
	var zero T
	q.Limit = 2
	q.Offset = 0
	var rows []T
	if err := c.List(ctx, q, &rows); err != nil {
		return zero, err
	}
	switch len(rows) {
	case 0:
		return zero, ErrNoRows
	case 1:
		return rows[0], nil
	default:
		return zero, ErrMultipleRows
	}
}

// ListResult runs q and classifies the outcome. Failures are logged here and
// never propagate as panics; the caller sees StatusFailure with empty data.
func ListResult[T any](ctx context.Context, c *Client, q Query) Result[[]T] {
	var rows []T
	err := c.List(ctx, q, &rows)
	if err != nil {
		sysutil.Logger(ctx).Warn().
			Err(err).
			Str("query", q.String()).
			Msg("store query failed")
	}
	return FromSlice(rows, err)
}

// SingleResult runs q with single-row semantics. Zero rows is Empty; an
// ambiguous match and transport errors are Failure.
func SingleResult[T any](ctx context.Context, c *Client, q Query) Result[*T] {
	row, err := Single[T](ctx, c, q)
	switch {
	case err == nil:
		return Success(&row)
	case errors.Is(err, ErrNoRows):
		return Empty[*T](nil)
	default:
		sysutil.Logger(ctx).Warn().
			Err(err).
			Str("query", q.String()).
			Msg("store single-row query failed")
		return Failure[*T](nil, err)
	}
}
