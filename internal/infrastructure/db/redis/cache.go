package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/metrics"
)

const recommendationTTL = 5 * time.Minute

// RecommendationCache caches filtered catalog lookups in Redis.
// Key format: reco:<year>:<sorted,comma-joined interests>
type RecommendationCache struct {
	client *redis.Client
}

// NewRecommendationCache wraps the given Redis client.
func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{client: client}
}

// Get returns the cached result for the criteria, with ok=false on a miss.
func (c *RecommendationCache) Get(ctx context.Context, year domain.Year, interests []string) ([]domain.Resource, bool, error) {
	raw, err := c.client.Get(ctx, c.key(year, interests)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecommendationCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("recommendation cache get: %w", err)
	}

	var resources []domain.Resource
	if err := json.Unmarshal([]byte(raw), &resources); err != nil {
		return nil, false, fmt.Errorf("recommendation cache decode: %w", err)
	}
	metrics.RecommendationCacheTotal.WithLabelValues("hit").Inc()
	return resources, true, nil
}

// Set stores the result for the criteria (expires after recommendationTTL).
func (c *RecommendationCache) Set(ctx context.Context, year domain.Year, interests []string, resources []domain.Resource) error {
	raw, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("recommendation cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(year, interests), raw, recommendationTTL).Err()
}

// key builds a deterministic cache key: interests are sorted so the same
// criteria in a different order hit the same entry.
func (c *RecommendationCache) key(year domain.Year, interests []string) string {
	sorted := make([]string, len(interests))
	copy(sorted, interests)
	sort.Strings(sorted)
	return fmt.Sprintf("reco:%s:%s", year, strings.Join(sorted, ","))
}
