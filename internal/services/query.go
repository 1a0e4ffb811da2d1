package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/parkstats-backend/internal/cache"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/sysutil"
)

var tracer = otel.Tracer("services/QueryService")

type refreshKey struct{}

// WithRefresh marks ctx so that queries run under it drop their cached entry
// and fetch again.
func WithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

// RefreshRequested reports whether ctx was marked by WithRefresh.
func RefreshRequested(ctx context.Context) bool {
	v, _ := ctx.Value(refreshKey{}).(bool)
	return v
}

// cached runs fetch through c under key. A failed Result is handed to the
// cache as an error so it is never stored and the next read retries.
func cached[T any](ctx context.Context, c *cache.Cache, name, key string, opts cache.Options, empty T, fetch func(context.Context) store.Result[T]) store.Result[T] {
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	if RefreshRequested(ctx) {
		c.Invalidate(key)
		span.SetAttributes(attribute.Bool("cache.refresh", true))
	}

	r, outcome, err := cache.Get(ctx, c, key, opts, func(ctx context.Context) (store.Result[T], error) {
		r := fetch(ctx)
		if r.Failed() {
			return r, r.Err
		}
		return r, nil
	})
	span.SetAttributes(attribute.String("cache.outcome", string(outcome)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return store.Failure(empty, err)
	}
	return r
}

// upstream classifies a (value, error) pair from an HTTP client. notFound
// errors yield Empty; any other error is logged and yields Failure.
func upstream[T any](ctx context.Context, name string, v T, err error, empty T, notFound error, isEmpty func(T) bool) store.Result[T] {
	switch {
	case err == nil && isEmpty(v):
		return store.Empty(v)
	case err == nil:
		return store.Success(v)
	case notFound != nil && errors.Is(err, notFound):
		return store.Empty(empty)
	default:
		sysutil.Logger(ctx).Warn().Err(err).Str("query", name).Msg("upstream query failed")
		return store.Failure(empty, err)
	}
}

// disabled is the result of a query whose required parameters are missing.
func disabled[T any](empty T) store.Result[T] { return store.Empty(empty) }

// normalizeIDs trims, drops blanks and duplicates, keeping first-seen order.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
