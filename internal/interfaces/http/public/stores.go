package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sngm3741/akiseki-navi-services/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/akiseki-navi-services/api/internal/public/application"
)

func (h *Handler) storeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.StoreFilter{
			City:  strings.TrimSpace(query.Get("city")),
			Genre: strings.TrimSpace(query.Get("genre")),
			// 公開一覧の既定は空席のみ表示。
			VacantOnly: common.ParseBool(query.Get("vacantOnly"), true),
		}

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 20)

		result, err := h.storeQueries.List(ctx, filter, h.now())
		if err != nil {
			h.logger.Printf("store list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "店舗一覧の取得に失敗しました"})
			return
		}

		total := len(result.Stores)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]storeSummaryResponse, 0, end-start)
		for _, store := range result.Stores[start:end] {
			items = append(items, buildStoreSummaryResponse(store))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, storeListResponse{
			Items:           items,
			Page:            page,
			Limit:           limit,
			Total:           total,
			VacancyDegraded: result.VacancyDegraded,
		})
	}
}

func (h *Handler) storeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "店舗IDが指定されていません"})
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "店舗IDの形式が不正です"})
			return
		}

		result, err := h.storeQueries.Detail(ctx, idParam, h.now())
		if err != nil {
			if errors.Is(err, publicapp.ErrStoreNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "店舗が見つかりません"})
				return
			}
			h.logger.Printf("store detail fetch failed id=%q err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "店舗情報の取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreDetailResponse(result.Store))
	}
}
