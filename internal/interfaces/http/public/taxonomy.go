package public

import (
	"net/http"

	"github.com/diveshopfinder/api/internal/interfaces/http/common"
	"github.com/diveshopfinder/api/internal/public/domain"
)

func (h *Handler) countriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		regions := make([]regionResponse, 0, len(common.Regions))
		for _, region := range common.Regions {
			countries := make([]countryResponse, 0, len(region.Countries))
			for _, name := range region.Countries {
				country := countryResponse{Name: name}
				if info, ok := common.CountryFlag(name); ok {
					country.Code = info.Code
					country.English = info.English
				}
				countries = append(countries, country)
			}
			regions = append(regions, regionResponse{Name: region.Name, Countries: countries})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"regions": regions})
	}
}

func (h *Handler) tagsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		tags := buildTagResponses(common.KnownTags())
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"tags": tags})
	}
}

func (h *Handler) certificationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, certificationsResponse{
			Certifications: common.Certifications,
			Default:        domain.DefaultCertifications,
		})
	}
}

func (h *Handler) sortOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"sortOptions": common.SortOptions})
	}
}
