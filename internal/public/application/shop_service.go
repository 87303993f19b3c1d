package application

import (
	"context"
	"log"

	"github.com/diveshopfinder/api/internal/metrics"
	"github.com/diveshopfinder/api/internal/public/domain"
)

// shopQueryService is the concrete implementation of ShopQueryService.
type shopQueryService struct {
	source ShopSource
	cache  ResultCache
	logger *log.Logger
}

// NewShopQueryService creates a query service over the given source. cache
// may be nil, in which case every request recomputes the pipeline.
func NewShopQueryService(source ShopSource, cache ResultCache, logger *log.Logger) ShopQueryService {
	return &shopQueryService{source: source, cache: cache, logger: logger}
}

func (s *shopQueryService) List(ctx context.Context, criteria domain.Criteria, paging Paging) (ListResult, error) {
	shops, version := s.source.Snapshot()

	filtered := s.cachedApply(ctx, shops, version, criteria)

	page := domain.Paginate(filtered, paging.Limit, paging.Page)
	return ListResult{Page: page, Total: len(filtered)}, nil
}

func (s *shopQueryService) Detail(_ context.Context, id string) (*domain.Shop, error) {
	shops, _ := s.source.Snapshot()
	for i := range shops {
		if shops[i].ID == id {
			shop := shops[i]
			return &shop, nil
		}
	}
	return nil, ErrShopNotFound
}

// cachedApply consults the memoizer before running the pipeline. A cached
// entry stores the ordered id list; if any id no longer resolves against the
// current snapshot the entry is considered stale and the pipeline reruns.
func (s *shopQueryService) cachedApply(ctx context.Context, shops []domain.Shop, version int64, criteria domain.Criteria) []domain.Shop {
	if s.cache != nil {
		if ids, ok := s.cache.Get(ctx, version, criteria); ok {
			if resolved, ok := resolveIDs(shops, ids); ok {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				return resolved
			}
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	metrics.PipelineApplies.Inc()
	filtered := domain.Apply(shops, criteria)

	if s.cache != nil {
		ids := make([]string, 0, len(filtered))
		for _, shop := range filtered {
			ids = append(ids, shop.ID)
		}
		s.cache.Set(ctx, version, criteria, ids)
	}

	return filtered
}

func resolveIDs(shops []domain.Shop, ids []string) ([]domain.Shop, bool) {
	byID := make(map[string]domain.Shop, len(shops))
	for _, shop := range shops {
		byID[shop.ID] = shop
	}

	resolved := make([]domain.Shop, 0, len(ids))
	for _, id := range ids {
		shop, ok := byID[id]
		if !ok {
			return nil, false
		}
		resolved = append(resolved, shop)
	}
	return resolved, true
}
