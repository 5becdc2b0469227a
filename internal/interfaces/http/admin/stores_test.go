package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/sngm3741/akiseki-navi-services/api/internal/admin/application"
	admindomain "github.com/sngm3741/akiseki-navi-services/api/internal/admin/domain"
)

const testStoreID = "0123456789abcdef01234567"

type stubStoreService struct {
	stores     []admindomain.Store
	detail     *admindomain.Store
	detailErr  error
	created    *admindomain.Store
	createErr  error
	updated    *admindomain.Store
	updateErr  error
	lastFilter adminapp.StoreFilter
	lastCmd    adminapp.UpsertStoreCommand
}

func (s *stubStoreService) List(_ context.Context, filter adminapp.StoreFilter, _ adminapp.Paging) ([]admindomain.Store, error) {
	s.lastFilter = filter
	return s.stores, nil
}

func (s *stubStoreService) Detail(_ context.Context, _ string) (*admindomain.Store, error) {
	return s.detail, s.detailErr
}

func (s *stubStoreService) Create(_ context.Context, cmd adminapp.UpsertStoreCommand) (*admindomain.Store, error) {
	s.lastCmd = cmd
	return s.created, s.createErr
}

func (s *stubStoreService) Update(_ context.Context, _ string, cmd adminapp.UpsertStoreCommand) (*admindomain.Store, error) {
	s.lastCmd = cmd
	return s.updated, s.updateErr
}

func newTestRouter(service adminapp.StoreService) *chi.Mux {
	handler := NewHandler(Config{
		Logger:       log.New(log.Writer(), "[test] ", 0),
		StoreService: service,
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func sampleStore(id string) admindomain.Store {
	return admindomain.Store{
		ID:             id,
		Name:           admindomain.StoreName("酒場あきせき"),
		City:           admindomain.City("渋谷区"),
		Genre:          admindomain.Genre("居酒屋"),
		ReservationURL: admindomain.URL("https://reserve.example/" + id),
		IsPublished:    true,
		CreatedAt:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAdminStoreSearchHandler(t *testing.T) {
	service := &stubStoreService{stores: []admindomain.Store{sampleStore(testStoreID)}}
	router := newTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores?city=渋谷区&keyword=酒場", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body adminStoreListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, testStoreID, body.Items[0].ID)
	assert.True(t, body.Items[0].IsPublished)

	assert.Equal(t, "渋谷区", service.lastFilter.City)
	assert.Equal(t, "酒場", service.lastFilter.Keyword)
}

func TestAdminStoreDetailHandlerNotFound(t *testing.T) {
	service := &stubStoreService{detailErr: mongo.ErrNoDocuments}
	router := newTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores/"+testStoreID, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminStoreDetailHandlerRejectsMalformedID(t *testing.T) {
	router := newTestRouter(&stubStoreService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores/not-an-id", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStoreCreateHandler(t *testing.T) {
	created := sampleStore(testStoreID)
	service := &stubStoreService{created: &created}
	router := newTestRouter(service)

	payload := `{"name":"酒場あきせき","city":"渋谷区","genre":"居酒屋","reservationUrl":"https://reserve.example/a","isPublished":true}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body adminStoreCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Created)
	assert.Equal(t, testStoreID, body.Store.ID)

	assert.Equal(t, "酒場あきせき", service.lastCmd.Name)
	assert.Equal(t, "https://reserve.example/a", service.lastCmd.ReservationURL)
}

func TestAdminStoreCreateHandlerValidationFailure(t *testing.T) {
	service := &stubStoreService{createErr: assert.AnError}
	router := newTestRouter(service)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stores", strings.NewReader(`{"name":""}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStoreUpdateHandlerNotFound(t *testing.T) {
	service := &stubStoreService{updateErr: mongo.ErrNoDocuments}
	router := newTestRouter(service)

	payload := `{"name":"酒場あきせき","city":"渋谷区","genre":"居酒屋","reservationUrl":"https://reserve.example/a"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/stores/"+testStoreID, strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
