package application

import (
	"context"
	"sort"

	"github.com/sngm3741/akiseki-navi-services/api/internal/public/domain"
	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

// storeQueryService is the concrete implementation of StoreQueryService.
type storeQueryService struct {
	stores StoreRepository
	events SeatStatusUpdateReader
}

// NewStoreQueryService creates a new public store query service.
func NewStoreQueryService(stores StoreRepository, events SeatStatusUpdateReader) StoreQueryService {
	return &storeQueryService{stores: stores, events: events}
}

// List projects the published catalog with derived vacancy status.
// カタログ取得の失敗はハードエラー、イベント取得の失敗は全店舗 unavailable への
// 縮退として扱い、一覧表示そのものは成立させる。
func (s *storeQueryService) List(ctx context.Context, filter StoreFilter, nowEpochSeconds int64) (StoreListResult, error) {
	catalogFilter := StoreFilter{City: filter.City, Genre: filter.Genre}
	stores, err := s.stores.FindPublished(ctx, catalogFilter)
	if err != nil {
		return StoreListResult{}, err
	}

	storeIDs := make([]string, 0, len(stores))
	for _, store := range stores {
		storeIDs = append(storeIDs, store.ID)
	}

	degraded := false
	var events []vacancydomain.SeatStatusUpdate
	if len(storeIDs) > 0 {
		events, err = s.events.ListByStoreIDs(ctx, storeIDs)
		if err != nil {
			events = nil
			degraded = true
		}
	}

	statusMap := vacancydomain.BuildVacancyMap(storeIDs, events, nowEpochSeconds)
	projected := make([]domain.Store, 0, len(stores))
	for _, store := range stores {
		store.VacancyStatus = statusMap[store.ID]
		if filter.VacantOnly && store.VacancyStatus != vacancydomain.PublicVacancyAvailable {
			continue
		}
		projected = append(projected, store)
	}

	sortByVacancyThenFreshness(projected)

	return StoreListResult{Stores: projected, VacancyDegraded: degraded}, nil
}

// Detail resolves one published store with derived vacancy status.
// 全件を射影してから線形に引く。見つからない場合は ErrStoreNotFound を返し、
// カタログ障害（エラー）とは区別する。
func (s *storeQueryService) Detail(ctx context.Context, storeID string, nowEpochSeconds int64) (StoreDetailResult, error) {
	result, err := s.List(ctx, StoreFilter{}, nowEpochSeconds)
	if err != nil {
		return StoreDetailResult{}, err
	}

	for _, store := range result.Stores {
		if store.ID == storeID {
			return StoreDetailResult{Store: store, VacancyDegraded: result.VacancyDegraded}, nil
		}
	}

	return StoreDetailResult{}, ErrStoreNotFound
}

// sortByVacancyThenFreshness orders available stores first, then newer
// updatedAt within each group.
func sortByVacancyThenFreshness(stores []domain.Store) {
	sort.SliceStable(stores, func(i, j int) bool {
		iAvailable := stores[i].VacancyStatus == vacancydomain.PublicVacancyAvailable
		jAvailable := stores[j].VacancyStatus == vacancydomain.PublicVacancyAvailable
		if iAvailable != jAvailable {
			return iAvailable
		}
		return stores[i].UpdatedAt.After(stores[j].UpdatedAt)
	})
}
