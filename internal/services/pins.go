// Package services – PinService
//
// PinService exposes the three pinned-id stores and resolves pinned
// destinations to full records in pin order.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
)

// PinService coordinates pin storage and lookups.
type PinService struct {
	Pins    *repo.PinStores
	Queries *QueryService
}

// NewPinService wires a PinService.
func NewPinService(pins *repo.PinStores, q *QueryService) *PinService {
	return &PinService{Pins: pins, Queries: q}
}

func (s *PinService) store(category string) (*repo.PinStore, error) {
	cat, err := repo.ParseCategory(category)
	if err != nil {
		return nil, errors.Join(ErrInvalidCategory, err)
	}
	return s.Pins.For(cat), nil
}

// List returns the pinned ids of category in pin order.
func (s *PinService) List(ctx context.Context, category string) ([]string, error) {
	ps, err := s.store(category)
	if err != nil {
		return nil, err
	}
	return ps.All(ctx)
}

// Pin adds id to category. Pinning twice is a no-op.
func (s *PinService) Pin(ctx context.Context, category, id string) ([]string, error) {
	ctx, span := pinSpan(ctx, "Pin", category, id)
	defer span.End()
	ps, err := s.store(category)
	if err != nil {
		return nil, err
	}
	return ps.Add(ctx, id)
}

// Unpin removes id from category. Unpinning an absent id is a no-op.
func (s *PinService) Unpin(ctx context.Context, category, id string) ([]string, error) {
	ctx, span := pinSpan(ctx, "Unpin", category, id)
	defer span.End()
	ps, err := s.store(category)
	if err != nil {
		return nil, err
	}
	return ps.Remove(ctx, id)
}

// Clear removes every pin of category.
func (s *PinService) Clear(ctx context.Context, category string) error {
	ctx, span := pinSpan(ctx, "Clear", category, "")
	defer span.End()
	ps, err := s.store(category)
	if err != nil {
		return err
	}
	return ps.Clear(ctx)
}

// PinnedDestinations resolves the pinned destination ids to records, in pin
// order. Ids with no matching record are skipped.
func (s *PinService) PinnedDestinations(ctx context.Context) store.Result[[]domain.Destination] {
	ids, err := s.Pins.For(repo.CategoryDestinations).All(ctx)
	if err != nil {
		return store.Failure([]domain.Destination{}, err)
	}
	res := s.Queries.DestinationsByIDs(ctx, ids)
	if !res.OK() {
		return res
	}
	return store.FromSlice(orderByIDs(res.Data, ids), nil)
}

func orderByIDs(list []domain.Destination, ids []string) []domain.Destination {
	byID := make(map[string]domain.Destination, len(list))
	for _, d := range list {
		byID[d.ID] = d
	}
	out := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

func pinSpan(ctx context.Context, name, category, id string) (context.Context, trace.Span) {
	tr := otel.Tracer("services/PinService")
	return tr.Start(ctx, name,
		trace.WithAttributes(
			attribute.String("pin.category", category),
			attribute.String("pin.id", id),
		),
	)
}
