package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply filters and orders the given shops according to criteria. It is a
// pure function: the input slice is never mutated and the result is a new
// slice. All filter predicates are conjunctive; the sponsorship reorder runs
// last and dominates the user-chosen sort while preserving its order between
// shops of equal AdPriority.
func Apply(shops []Shop, criteria Criteria) []Shop {
	result := make([]Shop, 0, len(shops))
	for _, shop := range shops {
		if matches(shop, criteria) {
			result = append(result, shop)
		}
	}

	sortShops(result, criteria.SortBy)

	// スポンサー枠: AdPriority の降順が常に優先される。
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AdPriority > result[j].AdPriority
	})

	return result
}

func matches(shop Shop, criteria Criteria) bool {
	if query := strings.ToLower(strings.TrimSpace(criteria.SearchQuery)); query != "" {
		if !strings.Contains(strings.ToLower(shop.Name), query) &&
			!strings.Contains(strings.ToLower(shop.City), query) &&
			!strings.Contains(strings.ToLower(shop.Country), query) {
			return false
		}
	}

	if len(criteria.Certifications) > 0 && !holdsAny(shop, criteria.Certifications) {
		return false
	}

	if len(criteria.Countries) > 0 && !containsString(criteria.Countries, shop.Country) {
		return false
	}

	if criteria.FiveStarOnly && !shop.IsFiveStar {
		return false
	}

	return true
}

func holdsAny(shop Shop, certifications []string) bool {
	for _, code := range certifications {
		if shop.HasCertification(code) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// sortShops orders the slice in place by the requested key. Every branch uses
// a stable sort so that the sponsorship stage layered on top keeps equal-key
// records in a deterministic relative order.
func sortShops(shops []Shop, sortBy SortOption) {
	collator := collate.New(language.Und)

	switch sortBy {
	case SortNameDesc:
		sort.SliceStable(shops, func(i, j int) bool {
			return collator.CompareString(shops[i].Name, shops[j].Name) > 0
		})
	case SortHighestRated:
		sort.SliceStable(shops, func(i, j int) bool {
			return shops[i].AverageRating > shops[j].AverageRating
		})
	case SortPopular:
		sort.SliceStable(shops, func(i, j int) bool {
			return shops[i].ReviewCount > shops[j].ReviewCount
		})
	case SortDistance:
		sort.SliceStable(shops, func(i, j int) bool {
			return collator.CompareString(shops[i].Country, shops[j].Country) < 0
		})
	case SortNameAsc:
		fallthrough
	default:
		sort.SliceStable(shops, func(i, j int) bool {
			return collator.CompareString(shops[i].Name, shops[j].Name) < 0
		})
	}
}
