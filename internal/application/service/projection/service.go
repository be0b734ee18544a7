package projection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bondprojector/internal/domain/entity/projection"
	interfaces "bondprojector/internal/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service builds projection tables over the catalog. Tables are memoized in
// the cache keyed on the inputs and horizons; a nil cache disables memoization.
type Service struct {
	catalog  interfaces.CatalogRepository
	cache    interfaces.ProjectionCache
	cacheTTL time.Duration
	logger   *logrus.Logger
}

func NewService(catalog interfaces.CatalogRepository, cache interfaces.ProjectionCache, cacheTTL time.Duration, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		catalog:  catalog,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Table projects every catalog bond over horizons.
func (s *Service) Table(ctx context.Context, in projection.Inputs, horizons projection.Horizons) (projection.Table, error) {
	key := cacheKey(in, horizons)
	if table, ok := s.cached(ctx, key); ok {
		return table, nil
	}

	all, err := s.catalog.List(ctx)
	if err != nil {
		return projection.Table{}, fmt.Errorf("list catalog: %w", err)
	}

	table := projection.Table{
		Inputs:   in,
		Horizons: horizons,
		Rows:     make([]projection.Row, 0, len(all)),
	}
	for _, b := range all {
		table.Rows = append(table.Rows, ProjectRow(b, in, horizons))
	}

	s.store(ctx, key, table)
	return table, nil
}

// Row projects a single bond over horizons.
func (s *Service) Row(ctx context.Context, uid uuid.UUID, in projection.Inputs, horizons projection.Horizons) (projection.Row, error) {
	b, err := s.catalog.Get(ctx, uid)
	if err != nil {
		return projection.Row{}, err
	}
	return ProjectRow(b, in, horizons), nil
}

// Invalidate drops the memoized table for in and horizons.
func (s *Service) Invalidate(ctx context.Context, in projection.Inputs, horizons projection.Horizons) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cacheKey(in, horizons))
}

func (s *Service) cached(ctx context.Context, key string) (projection.Table, bool) {
	if s.cache == nil {
		return projection.Table{}, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("projection cache read failed")
		return projection.Table{}, false
	}
	if !ok {
		return projection.Table{}, false
	}
	var table projection.Table
	if err := json.Unmarshal(data, &table); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("discarding undecodable cached projection")
		return projection.Table{}, false
	}
	return table, true
}

func (s *Service) store(ctx context.Context, key string, table projection.Table) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(table)
	if err != nil {
		s.logger.WithError(err).Warn("encode projection for cache")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("projection cache write failed")
	}
}

func cacheKey(in projection.Inputs, horizons projection.Horizons) string {
	return "projection:" + in.Key() + ":" + horizons.Key()
}
