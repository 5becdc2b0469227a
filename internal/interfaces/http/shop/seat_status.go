package shop

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sngm3741/akiseki-navi-services/api/internal/interfaces/http/common"
	shopapp "github.com/sngm3741/akiseki-navi-services/api/internal/shop/application"
	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

type seatStatusUpdateRequest struct {
	StoreID string `json:"storeId,omitempty"`
	Status  string `json:"status,omitempty"`
}

type seatStatusStateResponse struct {
	StoreID          string `json:"storeId"`
	StoreName        string `json:"storeName,omitempty"`
	CoverImageURL    string `json:"coverImageUrl,omitempty"`
	CurrentStatus    string `json:"currentStatus"`
	ExpiresAt        *int64 `json:"expiresAt"`
	CanMarkAvailable bool   `json:"canMarkAvailable"`
}

type seatStatusUpdateResponse struct {
	StoreID   string `json:"storeId"`
	Status    string `json:"status"`
	ExpiresAt int64  `json:"expiresAt"`
}

// writeScopeFailure maps the non-allowed scope outcomes onto HTTP statuses.
// Forbidden は「店舗が存在しない」と「自分の店舗でない」を区別しない。
func (h *Handler) writeScopeFailure(w http.ResponseWriter, scope shopapp.ScopeResult) {
	switch scope.Outcome {
	case shopapp.ScopeAmbiguous:
		common.WriteJSON(h.logger, w, http.StatusConflict, map[string]string{
			"error": "複数の店舗が紐付いています。storeId を指定してください",
		})
	default:
		common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{
			"error": "操作できる店舗が見つかりません",
		})
	}
}

func (h *Handler) seatStatusGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		requestedStoreID := strings.TrimSpace(r.URL.Query().Get("storeId"))
		scope, err := h.seatStatus.ResolveStoreScope(ctx, user.ID, requestedStoreID)
		if err != nil {
			h.logger.Printf("store scope resolution failed subject=%s err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "空席ステータスの取得に失敗しました"})
			return
		}
		if scope.Outcome != shopapp.ScopeAllowed {
			h.writeScopeFailure(w, scope)
			return
		}

		state, err := h.seatStatus.CurrentState(ctx, scope.Link.StoreID, h.now())
		if err != nil {
			h.logger.Printf("seat status fetch failed store=%s err=%v", scope.Link.StoreID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "空席ステータスの取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, seatStatusStateResponse{
			StoreID:          state.StoreID,
			StoreName:        state.StoreName,
			CoverImageURL:    state.CoverImageURL,
			CurrentStatus:    string(state.CurrentStatus),
			ExpiresAt:        state.ExpiresAt,
			CanMarkAvailable: state.CanMarkAvailable,
		})
	}
}

func (h *Handler) seatStatusPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報を取得できませんでした"})
			return
		}

		defer r.Body.Close()

		// 空ボディは許容する。ステータス既定値は「空席あり」。
		var req seatStatusUpdateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		statusValue := strings.TrimSpace(req.Status)
		if statusValue == "" {
			statusValue = string(vacancydomain.SeatStatusAvailable)
		}
		status, err := vacancydomain.ParseSeatStatus(statusValue)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "ステータスは available か unavailable を指定してください"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		scope, err := h.seatStatus.ResolveStoreScope(ctx, user.ID, strings.TrimSpace(req.StoreID))
		if err != nil {
			h.logger.Printf("store scope resolution failed subject=%s err=%v", user.ID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "空席ステータスの更新に失敗しました"})
			return
		}
		if scope.Outcome != shopapp.ScopeAllowed {
			h.writeScopeFailure(w, scope)
			return
		}

		result, err := h.seatStatus.Update(ctx, shopapp.UpdateSeatStatusCommand{
			Subject: user.ID,
			StoreID: scope.Link.StoreID,
			Status:  status,
		}, h.now())
		if err != nil {
			h.logger.Printf("seat status update failed store=%s err=%v", scope.Link.StoreID, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "空席ステータスの更新に失敗しました"})
			return
		}
		if result.Forbidden {
			common.WriteJSON(h.logger, w, http.StatusForbidden, map[string]string{"error": "操作できる店舗が見つかりません"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, seatStatusUpdateResponse{
			StoreID:   scope.Link.StoreID,
			Status:    string(status),
			ExpiresAt: result.ExpiresAt,
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "認証情報の取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}
