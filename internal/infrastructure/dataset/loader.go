package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/diveshopfinder/api/internal/public/domain"
)

// PlaceholderImage is served for shops whose export carries no usable
// background variant.
const PlaceholderImage = "/images/dive-shop-placeholder.jpg"

// preferredBackgroundSize is the sized variant the card layout expects.
const preferredBackgroundSize = "800x800"

const maxDatasetBytes = 32 << 20

// Loader fetches the static dataset document and normalises its raw items
// into canonical Shop entities. Loads are soft-failing: any fetch or decode
// problem yields an empty slice plus the error, never a panic, so the caller
// can surface an error state while staying interactive.
type Loader struct {
	source string
	client *http.Client
	logger *log.Logger
}

// NewLoader creates a loader for the given source, which is either an HTTP(S)
// URL or a local file path. client is only used for URL sources.
func NewLoader(source string, client *http.Client, logger *log.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{source: source, client: client, logger: logger}
}

// Load fetches and normalises the dataset. Every call re-fetches; the Loader
// holds no cache of its own.
func (l *Loader) Load(ctx context.Context) ([]domain.Shop, error) {
	raw, err := l.fetch(ctx)
	if err != nil {
		return []domain.Shop{}, fmt.Errorf("データセットの取得に失敗: %w", err)
	}

	items, err := decodeItems(raw)
	if err != nil {
		return []domain.Shop{}, fmt.Errorf("データセットの形式が不正: %w", err)
	}

	shops := make([]domain.Shop, 0, len(items))
	for _, item := range items {
		shops = append(shops, normalizeItem(item))
	}
	return shops, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
		if err != nil {
			return nil, err
		}
		res, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		if res.StatusCode >= 400 {
			return nil, fmt.Errorf("status=%d", res.StatusCode)
		}
		return io.ReadAll(io.LimitReader(res.Body, maxDatasetBytes))
	}

	return os.ReadFile(l.source)
}

// decodeItems accepts either a bare array of raw items or an object wrapping
// the array under a known field. Anything else is malformed.
func decodeItems(raw []byte) ([]shopDocument, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, errors.New("空のドキュメント")
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []shopDocument
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var doc listDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		switch {
		case doc.Items != nil:
			return doc.Items, nil
		case doc.Shops != nil:
			return doc.Shops, nil
		case doc.Data != nil:
			return doc.Data, nil
		}
		return nil, errors.New("配列フィールドが見つかりません")
	}

	return nil, errors.New("配列でもオブジェクトでもありません")
}

// normalizeItem derives the canonical Shop from one raw item, defaulting the
// optional fields so downstream predicates can iterate unconditionally.
func normalizeItem(item shopDocument) domain.Shop {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		name = strings.TrimSpace(item.Title)
	}

	certifications := append([]string{}, item.Certifications...)
	if len(certifications) == 0 {
		if system := strings.TrimSpace(item.System); system != "" {
			certifications = []string{system}
		}
	}

	isFiveStar := strings.Contains(strings.ToLower(item.MembershipLevel), "5 star")
	if item.IsFiveStar != nil {
		isFiveStar = *item.IsFiveStar
	}

	website := strings.TrimSpace(item.Website)
	if website == "" {
		website = strings.TrimSpace(item.URL)
	}

	background := PlaceholderImage
	if sized := strings.TrimSpace(item.Background[preferredBackgroundSize]); sized != "" {
		background = sized
	}

	return domain.Shop{
		ID:             string(item.ID),
		Name:           name,
		Country:        strings.TrimSpace(item.Country),
		Region:         strings.TrimSpace(item.Region),
		City:           strings.TrimSpace(item.City),
		Address:        strings.TrimSpace(item.Address),
		Description:    item.Description,
		Certifications: certifications,
		Tags:           append([]string{}, item.Tags...),
		Languages:      append([]string{}, item.Languages...),
		Activities:     append([]string{}, item.Activities...),
		IsFiveStar:     isFiveStar,
		AdPriority:     item.AdPriority,
		AverageRating:  item.AverageRating,
		ReviewCount:    item.ReviewCount,
		LastReviewDate: item.LastReviewDate,
		Phone:          strings.TrimSpace(item.Phone),
		Email:          strings.TrimSpace(item.Email),
		Website:        website,
		OpenHour:       item.OpenHour,
		BackgroundURL:  background,
	}
}
