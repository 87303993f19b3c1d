package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/diveshopfinder/api/internal/infrastructure/dataset"
	"github.com/diveshopfinder/api/internal/interfaces/http/common"
)

type datasetStatusResponse struct {
	Count     int    `json:"count"`
	Version   int64  `json:"version"`
	LoadedAt  string `json:"loadedAt,omitempty"`
	LastError string `json:"lastError,omitempty"`
}

func buildStatusResponse(status dataset.Status) datasetStatusResponse {
	response := datasetStatusResponse{
		Count:     status.Count,
		Version:   status.Version,
		LastError: status.LastError,
	}
	if !status.LoadedAt.IsZero() {
		response.LoadedAt = status.LoadedAt.Format(time.RFC3339)
	}
	return response
}

func (h *Handler) datasetReloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		if err := h.catalog.Reload(ctx); err != nil {
			// 失敗しても既存スナップショットは生きているので 502 で状態を返す。
			common.WriteJSON(h.logger, w, http.StatusBadGateway, buildStatusResponse(h.catalog.Status()))
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStatusResponse(h.catalog.Status()))
	}
}

func (h *Handler) datasetStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, buildStatusResponse(h.catalog.Status()))
	}
}
