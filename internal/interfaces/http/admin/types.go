package admin

import (
	"time"

	admindomain "github.com/sngm3741/akiseki-navi-services/api/internal/admin/domain"
)

type adminStoreResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city"`
	Genre          string    `json:"genre"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	ImageURLs      []string  `json:"imageUrls,omitempty"`
	ReservationURL string    `json:"reservationUrl,omitempty"`
	Description    string    `json:"description,omitempty"`
	IsPublished    bool      `json:"isPublished"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type adminStoreListResponse struct {
	Items []adminStoreResponse `json:"items"`
}

type adminStoreUpsertRequest struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Genre          string   `json:"genre"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	ImageURLs      []string `json:"imageUrls"`
	ReservationURL string   `json:"reservationUrl"`
	Description    string   `json:"description"`
	IsPublished    bool     `json:"isPublished"`
}

type adminStoreCreateResponse struct {
	Store   adminStoreResponse `json:"store"`
	Created bool               `json:"created"`
}

func adminStoreDomainToResponse(store admindomain.Store) adminStoreResponse {
	return adminStoreResponse{
		ID:             store.ID,
		Name:           store.Name.String(),
		Address:        store.Address,
		City:           store.City.String(),
		Genre:          store.Genre.String(),
		Latitude:       store.Coordinates.Latitude,
		Longitude:      store.Coordinates.Longitude,
		ImageURLs:      store.ImageURLs.Strings(),
		ReservationURL: store.ReservationURL.String(),
		Description:    store.Description.String(),
		IsPublished:    store.IsPublished,
		CreatedAt:      store.CreatedAt,
		UpdatedAt:      store.UpdatedAt,
	}
}
