package application

import (
	"context"
	"errors"

	"github.com/diveshopfinder/api/internal/public/domain"
)

// ErrShopNotFound is returned by Detail when no shop carries the given id.
var ErrShopNotFound = errors.New("shop not found")

// ShopSource abstracts read access to the loaded record set.
// ShopSource は読み込み済みデータセットのスナップショットを提供するポート。
type ShopSource interface {
	// Snapshot returns the current immutable record set together with a
	// monotonically increasing version that changes on every reload.
	Snapshot() ([]domain.Shop, int64)
}

// ResultCache memoizes pipeline output keyed on (snapshot version, criteria).
// Implementations must treat every failure as a miss.
type ResultCache interface {
	Get(ctx context.Context, version int64, criteria domain.Criteria) ([]string, bool)
	Set(ctx context.Context, version int64, criteria domain.Criteria, ids []string)
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// ListResult bundles one page of shops with the filtered total.
type ListResult struct {
	Page  domain.Page
	Total int
}

// ShopQueryService describes the public read use-cases.
// ShopQueryService は店舗一覧・詳細のユースケースを提供するリーダーモデル。
type ShopQueryService interface {
	List(ctx context.Context, criteria domain.Criteria, paging Paging) (ListResult, error)
	Detail(ctx context.Context, id string) (*domain.Shop, error)
}
