package application

import (
	"context"
	"strings"
	"time"

	admindomain "github.com/sngm3741/akiseki-navi-services/api/internal/admin/domain"
)

// storeService implements StoreService.
type storeService struct {
	repo StoreRepository
}

func NewStoreService(repo StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) List(ctx context.Context, filter StoreFilter, paging Paging) ([]admindomain.Store, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *storeService) Detail(ctx context.Context, id string) (*admindomain.Store, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *storeService) Create(ctx context.Context, cmd UpsertStoreCommand) (*admindomain.Store, error) {
	store, err := buildStore(cmd)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	store.CreatedAt = now
	store.UpdatedAt = now

	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) Update(ctx context.Context, id string, cmd UpsertStoreCommand) (*admindomain.Store, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(cmd)
	if err != nil {
		return nil, err
	}

	store.ID = existing.ID
	store.CreatedAt = existing.CreatedAt
	store.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// buildStore validates raw command input into the Store aggregate.
func buildStore(cmd UpsertStoreCommand) (*admindomain.Store, error) {
	name, err := admindomain.NewStoreName(cmd.Name)
	if err != nil {
		return nil, err
	}
	city, err := admindomain.NewCity(cmd.City)
	if err != nil {
		return nil, err
	}
	genre, err := admindomain.NewGenre(cmd.Genre)
	if err != nil {
		return nil, err
	}
	coordinates, err := admindomain.NewCoordinates(cmd.Latitude, cmd.Longitude)
	if err != nil {
		return nil, err
	}
	imageURLs, err := admindomain.NewImageURLList(cmd.ImageURLs)
	if err != nil {
		return nil, err
	}
	reservationURL, err := admindomain.RequiredURL(cmd.ReservationURL)
	if err != nil {
		return nil, err
	}
	description, err := admindomain.NewDescription(cmd.Description)
	if err != nil {
		return nil, err
	}

	return &admindomain.Store{
		Name:           name,
		Address:        strings.TrimSpace(cmd.Address),
		City:           city,
		Genre:          genre,
		Coordinates:    coordinates,
		ImageURLs:      imageURLs,
		ReservationURL: reservationURL,
		Description:    description,
		IsPublished:    cmd.IsPublished,
	}, nil
}
