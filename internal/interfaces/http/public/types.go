package public

import (
	"time"

	publicdomain "github.com/sngm3741/akiseki-navi-services/api/internal/public/domain"
)

type storeSummaryResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Genre          string   `json:"genre"`
	Address        string   `json:"address,omitempty"`
	ReservationURL string   `json:"reservationUrl"`
	VacancyStatus  string   `json:"vacancyStatus"`
	UpdatedAt      string   `json:"updatedAt"`
	ImageURLs      []string `json:"imageUrls,omitempty"`
}

type storeDetailResponse struct {
	storeSummaryResponse
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
	MapEmbed    *mapEmbedPayload `json:"mapEmbed,omitempty"`
	Description string           `json:"description,omitempty"`
}

type mapEmbedPayload struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type storeListResponse struct {
	Items           []storeSummaryResponse `json:"items"`
	Page            int                    `json:"page"`
	Limit           int                    `json:"limit"`
	Total           int                    `json:"total"`
	VacancyDegraded bool                   `json:"vacancyDegraded"`
}

// buildStoreSummaryResponse は Store ドメインモデルを一覧表示用 DTO に変換する。
func buildStoreSummaryResponse(store publicdomain.Store) storeSummaryResponse {
	return storeSummaryResponse{
		ID:             store.ID,
		Name:           store.Name,
		City:           store.City,
		Genre:          store.Genre,
		Address:        store.Address,
		ReservationURL: store.ReservationURL,
		VacancyStatus:  string(store.VacancyStatus),
		UpdatedAt:      store.UpdatedAt.UTC().Format(time.RFC3339),
		ImageURLs:      append([]string{}, store.ImageURLs...),
	}
}

// buildStoreDetailResponse は Store ドメインモデルを詳細表示用 DTO に変換する。
func buildStoreDetailResponse(store publicdomain.Store) storeDetailResponse {
	response := storeDetailResponse{
		storeSummaryResponse: buildStoreSummaryResponse(store),
		Latitude:             store.Latitude,
		Longitude:            store.Longitude,
		Description:          store.Description,
	}
	if embed := publicdomain.NewMapEmbed(store); embed != nil {
		response.MapEmbed = &mapEmbedPayload{URL: embed.URL, Label: embed.Label}
	}
	return response
}
