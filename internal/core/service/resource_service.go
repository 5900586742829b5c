package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campuscompass/guidance-system/internal/core/domain"
)

// RecommendationCache abstracts the filter-result cache (Redis).
type RecommendationCache interface {
	Get(ctx context.Context, year domain.Year, interests []string) ([]domain.Resource, bool, error)
	Set(ctx context.Context, year domain.Year, interests []string, resources []domain.Resource) error
}

// ResourceService serves recommendations from the immutable in-memory catalog,
// fronted by a TTL'd cache. Cache failures are logged and never fail a request.
type ResourceService struct {
	catalog []domain.Resource
	cache   RecommendationCache
	log     zerolog.Logger
}

// NewResourceService builds a ResourceService over the given catalog.
// The cache may be nil, in which case every lookup filters the catalog.
func NewResourceService(catalog []domain.Resource, cache RecommendationCache, log zerolog.Logger) *ResourceService {
	return &ResourceService{catalog: catalog, cache: cache, log: log}
}

// Recommend returns at most domain.MaxRecommendations matching resources in
// catalog order.
func (s *ResourceService) Recommend(ctx context.Context, year domain.Year, interests []string) ([]domain.Resource, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, year, interests)
		if err != nil {
			s.log.Warn().Err(err).Msg("recommendation cache read failed, filtering catalog")
		} else if ok {
			return cached, nil
		}
	}

	matched := domain.FilterResources(s.catalog, year, interests)

	if s.cache != nil {
		if err := s.cache.Set(ctx, year, interests, matched); err != nil {
			s.log.Warn().Err(err).Msg("recommendation cache write failed")
		}
	}
	return matched, nil
}
