package public

import (
	"regexp"

	"github.com/diveshopfinder/api/internal/interfaces/http/common"
	"github.com/diveshopfinder/api/internal/public/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]{6,20}$`)
)

func buildShopSummary(shop domain.Shop) shopSummaryResponse {
	summary := shopSummaryResponse{
		ID:             shop.ID,
		Name:           shop.Name,
		Country:        shop.Country,
		City:           shop.City,
		Certifications: shop.Certifications,
		Tags:           buildTagResponses(shop.Tags),
		IsFiveStar:     shop.IsFiveStar,
		AdPriority:     shop.AdPriority,
		AverageRating:  shop.AverageRating,
		ReviewCount:    shop.ReviewCount,
		Website:        shop.Website,
		Email:          shop.Email,
		BackgroundURL:  shop.BackgroundURL,
	}

	if info, ok := common.CountryFlag(shop.Country); ok {
		summary.CountryCode = info.Code
		summary.CountryEnglish = info.English
	}

	return summary
}

func buildShopDetail(shop domain.Shop) shopDetailResponse {
	return shopDetailResponse{
		shopSummaryResponse: buildShopSummary(shop),
		Region:              shop.Region,
		Address:             shop.Address,
		Phone:               shop.Phone,
		Description:         shop.Description,
		Languages:           shop.Languages,
		Activities:          shop.Activities,
		OpenHour:            shop.OpenHour,
		LastReviewDate:      shop.LastReviewDate,
	}
}

func buildTagResponses(tags []string) []tagResponse {
	responses := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		info := common.TagDisplay(tag)
		responses = append(responses, tagResponse{
			Value: tag,
			Label: info.Label,
			Style: info.Style,
		})
	}
	return responses
}
