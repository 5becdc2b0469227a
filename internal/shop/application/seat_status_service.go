package application

import (
	"context"

	"github.com/google/uuid"
	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

// seatStatusService implements SeatStatusService.
type seatStatusService struct {
	links    StoreLinkRepository
	events   SeatStatusRepository
	stores   StoreSummaryReader
	newEvent func() string
}

// NewSeatStatusService creates a new shop seat-status service.
func NewSeatStatusService(links StoreLinkRepository, events SeatStatusRepository, stores StoreSummaryReader) SeatStatusService {
	return &seatStatusService{
		links:    links,
		events:   events,
		stores:   stores,
		newEvent: func() string { return uuid.NewString() },
	}
}

// ResolveStoreScope collapses an identity's linked stores into a single
// allow/forbid/ambiguous decision.
// 0件なら Forbidden、selector 指定時は自身のリンクに一致しない限り Forbidden、
// 未指定でリンクが複数なら Ambiguous として呼び出し元に選択を求める。
func (s *seatStatusService) ResolveStoreScope(ctx context.Context, subject, requestedStoreID string) (ScopeResult, error) {
	links, err := s.links.ListLinks(ctx, subject)
	if err != nil {
		return ScopeResult{}, err
	}

	if len(links) == 0 {
		return ScopeResult{Outcome: ScopeForbidden}, nil
	}

	if requestedStoreID != "" {
		for _, link := range links {
			if link.StoreID == requestedStoreID {
				return ScopeResult{Outcome: ScopeAllowed, Link: link}, nil
			}
		}
		return ScopeResult{Outcome: ScopeForbidden}, nil
	}

	if len(links) > 1 {
		return ScopeResult{Outcome: ScopeAmbiguous}, nil
	}

	return ScopeResult{Outcome: ScopeAllowed, Link: links[0]}, nil
}

// Update appends exactly one status event for an authorized store user.
// スコープ解決済みでも (subject, storeId) のリンクをここで再検証する。
// ガードの判定だけを信用して帰属ユーザーを決めないための多重防御。
func (s *seatStatusService) Update(ctx context.Context, cmd UpdateSeatStatusCommand, nowEpochSeconds int64) (UpdateSeatStatusResult, error) {
	link, err := s.links.FindLink(ctx, cmd.Subject, cmd.StoreID)
	if err != nil {
		return UpdateSeatStatusResult{}, err
	}
	if link == nil {
		return UpdateSeatStatusResult{Forbidden: true}, nil
	}

	expiresAt := vacancydomain.ComputeExpiresAt(nowEpochSeconds)
	event := vacancydomain.SeatStatusUpdate{
		ID:              s.newEvent(),
		StoreID:         cmd.StoreID,
		Status:          cmd.Status,
		ExpiresAt:       expiresAt,
		CreatedAt:       nowEpochSeconds,
		UpdatedByUserID: link.StoreUserID,
	}
	if err := s.events.Insert(ctx, event); err != nil {
		return UpdateSeatStatusResult{}, err
	}

	return UpdateSeatStatusResult{ExpiresAt: expiresAt}, nil
}

// CurrentState reduces the store's event history into the shop view.
func (s *seatStatusService) CurrentState(ctx context.Context, storeID string, nowEpochSeconds int64) (SeatStatusState, error) {
	events, err := s.events.ListByStoreID(ctx, storeID)
	if err != nil {
		return SeatStatusState{}, err
	}

	result := vacancydomain.ResolveCurrentStatus(events, nowEpochSeconds)
	state := SeatStatusState{
		StoreID:          storeID,
		CurrentStatus:    result.CurrentStatus,
		ExpiresAt:        result.ExpiresAt,
		CanMarkAvailable: result.CanMarkAvailable,
	}

	// 店舗表示情報は取得できなくてもステータス表示は成立させる。
	summary, err := s.stores.FindStoreSummary(ctx, storeID)
	if err == nil && summary != nil {
		state.StoreName = summary.Name
		state.CoverImageURL = summary.CoverImageURL
	}

	return state, nil
}
