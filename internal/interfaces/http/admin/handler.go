package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/diveshopfinder/api/internal/infrastructure/dataset"
)

// Handler wires admin HTTP endpoints to the dataset catalog.
// 認証は行わない方針のため、公開環境ではネットワーク側で遮断すること。
type Handler struct {
	logger  *log.Logger
	catalog *dataset.Catalog
}

// Config provides dependencies for Handler.
type Config struct {
	Logger  *log.Logger
	Catalog *dataset.Catalog
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:  cfg.Logger,
		catalog: cfg.Catalog,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/dataset/reload", h.datasetReloadHandler())
	r.Get("/dataset/status", h.datasetStatusHandler())
}
