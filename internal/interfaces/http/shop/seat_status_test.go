package shop

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/akiseki-navi-services/api/internal/interfaces/http/common"
	shopapp "github.com/sngm3741/akiseki-navi-services/api/internal/shop/application"
	shopdomain "github.com/sngm3741/akiseki-navi-services/api/internal/shop/domain"
	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

type memoryLinkRepo struct {
	links []shopdomain.StoreUserLink
}

func (m *memoryLinkRepo) ListLinks(_ context.Context, subject string) ([]shopdomain.StoreUserLink, error) {
	result := make([]shopdomain.StoreUserLink, 0)
	for _, link := range m.links {
		if link.Subject == subject {
			result = append(result, link)
		}
	}
	return result, nil
}

func (m *memoryLinkRepo) FindLink(_ context.Context, subject, storeID string) (*shopdomain.StoreUserLink, error) {
	for _, link := range m.links {
		if link.Subject == subject && link.StoreID == storeID {
			found := link
			return &found, nil
		}
	}
	return nil, nil
}

type memoryEventRepo struct {
	events []vacancydomain.SeatStatusUpdate
}

func (m *memoryEventRepo) Insert(_ context.Context, update vacancydomain.SeatStatusUpdate) error {
	m.events = append(m.events, update)
	return nil
}

func (m *memoryEventRepo) ListByStoreID(_ context.Context, storeID string) ([]vacancydomain.SeatStatusUpdate, error) {
	result := make([]vacancydomain.SeatStatusUpdate, 0)
	for _, event := range m.events {
		if event.StoreID == storeID {
			result = append(result, event)
		}
	}
	return result, nil
}

type memorySummaryReader struct{}

func (memorySummaryReader) FindStoreSummary(_ context.Context, storeID string) (*shopdomain.StoreSummary, error) {
	return &shopdomain.StoreSummary{StoreID: storeID, Name: "酒場あきせき"}, nil
}

// fakeAuth injects a fixed principal the way the server middleware would.
func fakeAuth(subject string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: subject})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type shopTestEnv struct {
	router *chi.Mux
	events *memoryEventRepo
	now    int64
}

func newShopTestEnv(t *testing.T, links []shopdomain.StoreUserLink, subject string) *shopTestEnv {
	t.Helper()

	env := &shopTestEnv{events: &memoryEventRepo{}, now: 1000}
	service := shopapp.NewSeatStatusService(&memoryLinkRepo{links: links}, env.events, memorySummaryReader{})
	handler := NewHandler(Config{
		Logger:     log.New(log.Writer(), "[test] ", 0),
		SeatStatus: service,
		Now:        func() int64 { return env.now },
	})

	env.router = chi.NewRouter()
	handler.Register(env.router, fakeAuth(subject))
	return env
}

func (env *shopTestEnv) get(t *testing.T) (*httptest.ResponseRecorder, seatStatusStateResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shop/seat-status", nil))
	var state seatStatusStateResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	}
	return rec, state
}

func (env *shopTestEnv) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shop/seat-status", strings.NewReader(body)))
	return rec
}

func singleLink() []shopdomain.StoreUserLink {
	return []shopdomain.StoreUserLink{
		{StoreID: "store-a", StoreUserID: "user-7", Subject: "sub-1"},
	}
}

func TestSeatStatusLifecycle(t *testing.T) {
	env := newShopTestEnv(t, singleLink(), "sub-1")

	// イベントが無い間は unknown。
	rec, state := env.get(t)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unknown", state.CurrentStatus)
	assert.Nil(t, state.ExpiresAt)
	assert.True(t, state.CanMarkAvailable)
	assert.Equal(t, "酒場あきせき", state.StoreName)

	// now=1000 で「空席あり」を報告すると expiresAt=2800。
	env.now = 1000
	postRec := env.post(t, `{"status":"available"}`)
	require.Equal(t, http.StatusOK, postRec.Code)
	var update seatStatusUpdateResponse
	require.NoError(t, json.Unmarshal(postRec.Body.Bytes(), &update))
	assert.Equal(t, "store-a", update.StoreID)
	assert.Equal(t, "available", update.Status)
	assert.Equal(t, int64(2800), update.ExpiresAt)

	// 有効期間内は available、マーク操作は不可。
	env.now = 1500
	rec, state = env.get(t)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "available", state.CurrentStatus)
	require.NotNil(t, state.ExpiresAt)
	assert.Equal(t, int64(2800), *state.ExpiresAt)
	assert.False(t, state.CanMarkAvailable)

	// 期限を過ぎると unknown に戻る。
	env.now = 2900
	rec, state = env.get(t)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unknown", state.CurrentStatus)
	assert.Nil(t, state.ExpiresAt)
	assert.True(t, state.CanMarkAvailable)
}

func TestSeatStatusPostDefaultsToAvailable(t *testing.T) {
	env := newShopTestEnv(t, singleLink(), "sub-1")

	rec := env.post(t, "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, env.events.events, 1)
	assert.Equal(t, vacancydomain.SeatStatusAvailable, env.events.events[0].Status)
	assert.Equal(t, "user-7", env.events.events[0].UpdatedByUserID)
}

func TestSeatStatusPostRejectsUnknownStatus(t *testing.T) {
	env := newShopTestEnv(t, singleLink(), "sub-1")

	rec := env.post(t, `{"status":"closed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.events.events)
}

func TestSeatStatusForbiddenWithoutLink(t *testing.T) {
	env := newShopTestEnv(t, nil, "sub-1")

	rec, _ := env.get(t)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	postRec := env.post(t, `{"status":"available"}`)
	assert.Equal(t, http.StatusForbidden, postRec.Code)
	assert.Empty(t, env.events.events)
}

func TestSeatStatusAmbiguousWithMultipleLinks(t *testing.T) {
	links := []shopdomain.StoreUserLink{
		{StoreID: "store-a", StoreUserID: "user-7", Subject: "sub-1"},
		{StoreID: "store-b", StoreUserID: "user-7", Subject: "sub-1"},
	}
	env := newShopTestEnv(t, links, "sub-1")

	rec, _ := env.get(t)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// storeId を明示すれば解消できる。
	postRec := env.post(t, `{"storeId":"store-b","status":"unavailable"}`)
	require.Equal(t, http.StatusOK, postRec.Code)
	require.Len(t, env.events.events, 1)
	assert.Equal(t, "store-b", env.events.events[0].StoreID)

	// 他人の店舗を指定しても Forbidden。
	otherRec := env.post(t, `{"storeId":"store-c","status":"available"}`)
	assert.Equal(t, http.StatusForbidden, otherRec.Code)
}
