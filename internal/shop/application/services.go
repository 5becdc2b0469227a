package application

import (
	"context"

	shopdomain "github.com/sngm3741/akiseki-navi-services/api/internal/shop/domain"
	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

// StoreLinkRepository abstracts the login-identity to store link table.
// StoreLinkRepository はログイン識別子から操作可能店舗を引くためのポート。
type StoreLinkRepository interface {
	ListLinks(ctx context.Context, subject string) ([]shopdomain.StoreUserLink, error)
	FindLink(ctx context.Context, subject, storeID string) (*shopdomain.StoreUserLink, error)
}

// SeatStatusRepository is the append-only event log port. Insert and
// filtered reads only; events are never updated or deleted here.
type SeatStatusRepository interface {
	Insert(ctx context.Context, update vacancydomain.SeatStatusUpdate) error
	ListByStoreID(ctx context.Context, storeID string) ([]vacancydomain.SeatStatusUpdate, error)
}

// StoreSummaryReader resolves display fields for the shop view.
type StoreSummaryReader interface {
	FindStoreSummary(ctx context.Context, storeID string) (*shopdomain.StoreSummary, error)
}

// ScopeOutcome tags the result of store-scope authorization.
type ScopeOutcome int

const (
	// ScopeAllowed means exactly one link was resolved for the request.
	ScopeAllowed ScopeOutcome = iota
	// ScopeForbidden covers both "no link" and "selector outside own links".
	// 店舗の存在有無を漏らさないため両者を区別しない。
	ScopeForbidden
	// ScopeAmbiguous means multiple links exist and no selector was given.
	ScopeAmbiguous
)

// ScopeResult is the tagged outcome of ResolveStoreScope. Link is populated
// only when Outcome is ScopeAllowed.
type ScopeResult struct {
	Outcome ScopeOutcome
	Link    shopdomain.StoreUserLink
}

// UpdateSeatStatusCommand carries one status-update request.
type UpdateSeatStatusCommand struct {
	Subject string
	StoreID string
	Status  vacancydomain.SeatStatus
}

// UpdateSeatStatusResult is returned on a successful append.
type UpdateSeatStatusResult struct {
	Forbidden bool
	ExpiresAt int64
}

// SeatStatusState is the authenticated shop view of a store's status.
type SeatStatusState struct {
	StoreID          string
	StoreName        string
	CoverImageURL    string
	CurrentStatus    vacancydomain.CurrentStatus
	ExpiresAt        *int64
	CanMarkAvailable bool
}

// SeatStatusService exposes the shop-facing seat status use-cases.
// SeatStatusService は店舗ユーザー向けの空席ステータス参照・更新ユースケース。
type SeatStatusService interface {
	ResolveStoreScope(ctx context.Context, subject, requestedStoreID string) (ScopeResult, error)
	Update(ctx context.Context, cmd UpdateSeatStatusCommand, nowEpochSeconds int64) (UpdateSeatStatusResult, error)
	CurrentState(ctx context.Context, storeID string, nowEpochSeconds int64) (SeatStatusState, error)
}
