package domain

import (
	"fmt"
	"net/url"
	"time"

	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

// Store represents a publicly visible store entity. VacancyStatus is always
// derived from the seat-status event log at read time; the stored catalog
// value is never trusted directly.
type Store struct {
	ID             string
	Name           string
	Address        string
	City           string
	Genre          string
	Latitude       *float64
	Longitude      *float64
	ImageURLs      []string
	ReservationURL string
	Description    string
	VacancyStatus  vacancydomain.PublicVacancyStatus
	UpdatedAt      time.Time
}

// MapEmbed is the view model for the detail-page map.
type MapEmbed struct {
	URL   string
	Label string
}

// NewMapEmbed builds the map embed for a store. 座標があれば座標を優先し、
// なければ住所で埋め込みURLを組み立てる。どちらも無ければ nil を返す。
func NewMapEmbed(store Store) *MapEmbed {
	if store.Latitude != nil && store.Longitude != nil {
		return &MapEmbed{
			URL:   fmt.Sprintf("https://www.google.com/maps?q=%g,%g&z=15&output=embed", *store.Latitude, *store.Longitude),
			Label: store.Name + " の地図",
		}
	}
	if store.Address != "" {
		return &MapEmbed{
			URL:   "https://www.google.com/maps?q=" + url.QueryEscape(store.Address) + "&z=15&output=embed",
			Label: store.Name + " の地図",
		}
	}
	return nil
}
