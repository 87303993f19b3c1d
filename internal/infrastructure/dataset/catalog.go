package dataset

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/diveshopfinder/api/internal/metrics"
	"github.com/diveshopfinder/api/internal/public/domain"
)

// shopLoader is what Catalog needs from the Loader.
type shopLoader interface {
	Load(ctx context.Context) ([]domain.Shop, error)
}

// Status describes the current catalog state for health and admin endpoints.
type Status struct {
	Count     int
	Version   int64
	LoadedAt  time.Time
	LastError string
}

// Catalog owns the in-memory record set. Records are created wholesale per
// load cycle and replaced atomically on reload; readers always see a complete
// snapshot and never a partially updated one. A failed reload keeps the
// previous snapshot when one exists.
type Catalog struct {
	loader shopLoader
	logger *log.Logger

	mu       sync.RWMutex
	shops    []domain.Shop
	version  int64
	loadedAt time.Time
	lastErr  error
}

// NewCatalog creates an empty catalog over the given loader.
func NewCatalog(loader shopLoader, logger *log.Logger) *Catalog {
	return &Catalog{
		loader: loader,
		logger: logger,
		shops:  []domain.Shop{},
	}
}

// Reload fetches the dataset and swaps in the new snapshot. The returned
// error is also recorded for Status; it never propagates as a fault beyond
// this boundary.
func (c *Catalog) Reload(ctx context.Context) error {
	shops, err := c.loader.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.lastErr = err
		metrics.DatasetLoads.WithLabelValues("error").Inc()
		if c.logger != nil {
			c.logger.Printf("データセットの読み込みに失敗: %v", err)
		}
		return err
	}

	c.shops = shops
	c.version++
	c.loadedAt = time.Now()
	c.lastErr = nil
	metrics.DatasetLoads.WithLabelValues("ok").Inc()
	if c.logger != nil {
		c.logger.Printf("データセット読み込み完了: %d 件 (version=%d)", len(shops), c.version)
	}
	return nil
}

// Snapshot returns the current record set and its version. The slice is
// shared read-only data; callers must not mutate it.
func (c *Catalog) Snapshot() ([]domain.Shop, int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shops, c.version
}

// Status reports count, version, load time and the last load error.
func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := Status{
		Count:    len(c.shops),
		Version:  c.version,
		LoadedAt: c.loadedAt,
	}
	if c.lastErr != nil {
		status.LastError = c.lastErr.Error()
	}
	return status
}
