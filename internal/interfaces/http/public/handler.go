package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diveshopfinder/api/internal/infrastructure/dataset"
	publicapp "github.com/diveshopfinder/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger              *log.Logger
	shopQueries         publicapp.ShopQueryService
	catalog             *dataset.Catalog
	pageSize            int
	httpClient          *http.Client
	feedbackEndpoint    string
	feedbackDestination string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger              *log.Logger
	ShopQueries         publicapp.ShopQueryService
	Catalog             *dataset.Catalog
	PageSize            int
	HTTPClient          *http.Client
	FeedbackEndpoint    string
	FeedbackDestination string
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Handler{
		logger:              cfg.Logger,
		shopQueries:         cfg.ShopQueries,
		catalog:             cfg.Catalog,
		pageSize:            pageSize,
		httpClient:          cfg.HTTPClient,
		feedbackEndpoint:    cfg.FeedbackEndpoint,
		feedbackDestination: cfg.FeedbackDestination,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/shops", h.shopListHandler())
	r.Get("/shops/{id}", h.shopDetailHandler())
	r.Get("/taxonomy/countries", h.countriesHandler())
	r.Get("/taxonomy/tags", h.tagsHandler())
	r.Get("/taxonomy/certifications", h.certificationsHandler())
	r.Get("/taxonomy/sort-options", h.sortOptionsHandler())
	r.Post("/feedback", h.feedbackHandler())
}
