package application

import (
	"context"
	"errors"

	"github.com/sngm3741/akiseki-navi-services/api/internal/public/domain"
	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

// ErrStoreNotFound distinguishes "no such published store" from upstream
// failures, which surface as ordinary errors.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository abstracts read access to the published store catalog.
// StoreRepository は Public コンテキストで公開済み店舗を読み取るためのポート。
type StoreRepository interface {
	FindPublished(ctx context.Context, filter StoreFilter) ([]domain.Store, error)
}

// SeatStatusUpdateReader provides the bulk event fetch for the projection.
// 店舗ID集合に対する一括取得のみを要求し、イベントの書き込みは含まない。
type SeatStatusUpdateReader interface {
	ListByStoreIDs(ctx context.Context, storeIDs []string) ([]vacancydomain.SeatStatusUpdate, error)
}

// StoreFilter expresses search criteria for public stores. VacantOnly is
// applied after the vacancy projection, never against stored fields.
type StoreFilter struct {
	City       string
	Genre      string
	VacantOnly bool
}

// StoreListResult carries the projected catalog. VacancyDegraded reports a
// soft failure of the event store: every store is shown unavailable and the
// caller may render a "data temporarily unavailable" notice.
type StoreListResult struct {
	Stores          []domain.Store
	VacancyDegraded bool
}

// StoreDetailResult is a single projected store.
type StoreDetailResult struct {
	Store           domain.Store
	VacancyDegraded bool
}

// StoreQueryService describes public read use-cases.
// StoreQueryService は空席ステータスを合成した店舗参照ユースケースを提供する。
type StoreQueryService interface {
	List(ctx context.Context, filter StoreFilter, nowEpochSeconds int64) (StoreListResult, error)
	Detail(ctx context.Context, storeID string, nowEpochSeconds int64) (StoreDetailResult, error)
}
