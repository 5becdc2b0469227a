package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/sngm3741/akiseki-navi-services/api/internal/admin/domain"
)

type fakeAdminStoreRepo struct {
	created []*admindomain.Store
	byID    map[string]*admindomain.Store
}

func (f *fakeAdminStoreRepo) Find(_ context.Context, _ StoreFilter, _ Paging) ([]admindomain.Store, error) {
	return nil, nil
}

func (f *fakeAdminStoreRepo) FindByID(_ context.Context, id string) (*admindomain.Store, error) {
	store, ok := f.byID[id]
	if !ok {
		return nil, assert.AnError
	}
	return store, nil
}

func (f *fakeAdminStoreRepo) Create(_ context.Context, store *admindomain.Store) error {
	f.created = append(f.created, store)
	return nil
}

func (f *fakeAdminStoreRepo) Update(_ context.Context, _ *admindomain.Store) error {
	return nil
}

func validCommand() UpsertStoreCommand {
	return UpsertStoreCommand{
		Name:           "酒場あきせき",
		City:           "渋谷区",
		Genre:          "居酒屋",
		ReservationURL: "https://reserve.example/akiseki",
		IsPublished:    true,
	}
}

func TestCreateValidatesCommand(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UpsertStoreCommand)
		wantErr bool
	}{
		{name: "valid", mutate: func(*UpsertStoreCommand) {}},
		{name: "missing name", mutate: func(c *UpsertStoreCommand) { c.Name = " " }, wantErr: true},
		{name: "missing city", mutate: func(c *UpsertStoreCommand) { c.City = "" }, wantErr: true},
		{name: "missing genre", mutate: func(c *UpsertStoreCommand) { c.Genre = "" }, wantErr: true},
		{name: "missing reservation url", mutate: func(c *UpsertStoreCommand) { c.ReservationURL = "" }, wantErr: true},
		{name: "relative reservation url", mutate: func(c *UpsertStoreCommand) { c.ReservationURL = "/r" }, wantErr: true},
		{name: "lone latitude", mutate: func(c *UpsertStoreCommand) { v := 35.0; c.Latitude = &v }, wantErr: true},
		{name: "bad image url", mutate: func(c *UpsertStoreCommand) { c.ImageURLs = []string{"not-a-url"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAdminStoreRepo{}
			svc := NewStoreService(repo)
			cmd := validCommand()
			tt.mutate(&cmd)

			store, err := svc.Create(context.Background(), cmd)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.created, 1)
			assert.Equal(t, "酒場あきせき", store.Name.String())
			assert.True(t, store.IsPublished)
			assert.False(t, store.CreatedAt.IsZero())
		})
	}
}
