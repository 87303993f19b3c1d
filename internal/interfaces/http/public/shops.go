package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/diveshopfinder/api/internal/interfaces/http/common"
	publicapp "github.com/diveshopfinder/api/internal/public/application"
	"github.com/diveshopfinder/api/internal/public/domain"
)

func (h *Handler) shopListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		criteria := domain.Criteria{
			SearchQuery:    strings.TrimSpace(query.Get("q")),
			Certifications: multiValue(query["certifications"]),
			Countries:      multiValue(query["countries"]),
			FiveStarOnly:   strings.EqualFold(strings.TrimSpace(query.Get("five_star")), "true"),
			SortBy:         domain.SortOption(strings.TrimSpace(query.Get("sort"))),
		}

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), h.pageSize)

		result, err := h.shopQueries.List(ctx, criteria, publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("shop list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "潛水店列表的取得失敗"})
			return
		}

		items := make([]shopSummaryResponse, 0, len(result.Page.Items))
		for _, shop := range result.Page.Items {
			items = append(items, buildShopSummary(shop))
		}

		response := shopListResponse{
			Items:      items,
			Page:       result.Page.Number,
			Limit:      limit,
			Total:      result.Total,
			TotalPages: result.Page.TotalPages,
		}

		// 読み込みエラーはここで伝え、クライアント側でエラー表示させる。
		// 一覧自体は空でも 200 を返し、アプリは操作可能なままにする。
		if status := h.catalog.Status(); status.LastError != "" && status.Count == 0 {
			response.DatasetError = "無法獲取潛水店數據"
		}

		common.WriteJSON(h.logger, w, http.StatusOK, response)
	}
}

func (h *Handler) shopDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "未指定潛水店ID"})
			return
		}

		shop, err := h.shopQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, publicapp.ErrShopNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "找不到潛水店"})
				return
			}
			h.logger.Printf("shop detail fetch failed id=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "潛水店資料的取得失敗"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildShopDetail(*shop))
	}
}

// multiValue flattens repeated query parameters, additionally splitting
// comma-separated values so both ?certifications=PADI&certifications=SSI and
// ?certifications=PADI,SSI work.
func multiValue(raw []string) []string {
	values := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
