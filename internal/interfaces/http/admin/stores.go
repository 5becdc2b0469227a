package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/sngm3741/akiseki-navi-services/api/internal/admin/application"
	"github.com/sngm3741/akiseki-navi-services/api/internal/interfaces/http/common"
)

func (h *Handler) storeSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		filter := adminapp.StoreFilter{
			City:    strings.TrimSpace(queryValues.Get("city")),
			Genre:   strings.TrimSpace(queryValues.Get("genre")),
			Keyword: strings.TrimSpace(queryValues.Get("keyword")),
		}
		page, _ := common.ParsePositiveInt(queryValues.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)

		stores, err := h.storeService.List(ctx, filter, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("admin store search failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "店舗一覧の取得に失敗しました"})
			return
		}

		items := make([]adminStoreResponse, 0, len(stores))
		for _, store := range stores {
			items = append(items, adminStoreDomainToResponse(store))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminStoreListResponse{Items: items})
	}
}

func (h *Handler) storeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "店舗IDの形式が不正です"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		store, err := h.storeService.Detail(ctx, objectID.Hex())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "店舗が見つかりません"})
				return
			}
			h.logger.Printf("admin store detail fetch failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "店舗情報の取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminStoreDomainToResponse(*store))
	}
}

func (h *Handler) storeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminStoreUpsertRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		store, err := h.storeService.Create(ctx, buildStoreCommand(req))
		if err != nil {
			h.logger.Printf("admin store create failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, adminStoreCreateResponse{Store: adminStoreDomainToResponse(*store), Created: true})
	}
}

func (h *Handler) storeUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "店舗IDの形式が不正です"})
			return
		}

		var req adminStoreUpsertRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		store, err := h.storeService.Update(ctx, objectID.Hex(), buildStoreCommand(req))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "店舗が見つかりません"})
				return
			}
			h.logger.Printf("admin store update failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminStoreDomainToResponse(*store))
	}
}

func buildStoreCommand(req adminStoreUpsertRequest) adminapp.UpsertStoreCommand {
	return adminapp.UpsertStoreCommand{
		Name:           strings.TrimSpace(req.Name),
		Address:        strings.TrimSpace(req.Address),
		City:           strings.TrimSpace(req.City),
		Genre:          strings.TrimSpace(req.Genre),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ImageURLs:      req.ImageURLs,
		ReservationURL: strings.TrimSpace(req.ReservationURL),
		Description:    req.Description,
		IsPublished:    req.IsPublished,
	}
}
