package application

import (
	"context"

	admindomain "github.com/sngm3741/akiseki-navi-services/api/internal/admin/domain"
)

// StoreRepository exposes admin operations on the store catalog.
type StoreRepository interface {
	Find(ctx context.Context, filter StoreFilter, paging Paging) ([]admindomain.Store, error)
	FindByID(ctx context.Context, id string) (*admindomain.Store, error)
	Create(ctx context.Context, store *admindomain.Store) error
	Update(ctx context.Context, store *admindomain.Store) error
}

// StoreFilter expresses admin search criteria. Unpublished stores are
// included; publication state only matters on the public surface.
type StoreFilter struct {
	City    string
	Genre   string
	Keyword string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// StoreService describes admin store use-cases.
type StoreService interface {
	List(ctx context.Context, filter StoreFilter, paging Paging) ([]admindomain.Store, error)
	Detail(ctx context.Context, id string) (*admindomain.Store, error)
	Create(ctx context.Context, cmd UpsertStoreCommand) (*admindomain.Store, error)
	Update(ctx context.Context, id string, cmd UpsertStoreCommand) (*admindomain.Store, error)
}

// UpsertStoreCommand contains raw inputs for creating/updating stores.
// 値オブジェクトへの変換と検証はサービス側で行う。
type UpsertStoreCommand struct {
	Name           string
	Address        string
	City           string
	Genre          string
	Latitude       *float64
	Longitude      *float64
	ImageURLs      []string
	ReservationURL string
	Description    string
	IsPublished    bool
}
