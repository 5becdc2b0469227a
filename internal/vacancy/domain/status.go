package domain

import "fmt"

// SeatStatus is the two-value status a store user can report.
type SeatStatus string

const (
	SeatStatusAvailable   SeatStatus = "available"
	SeatStatusUnavailable SeatStatus = "unavailable"
)

// ExpiryWindowSeconds は空席ステータス1件の有効期間。書き込み時に固定で付与する。
const ExpiryWindowSeconds int64 = 30 * 60

// ParseSeatStatus validates caller-supplied status strings.
func ParseSeatStatus(value string) (SeatStatus, error) {
	switch SeatStatus(value) {
	case SeatStatusAvailable:
		return SeatStatusAvailable, nil
	case SeatStatusUnavailable:
		return SeatStatusUnavailable, nil
	default:
		return "", fmt.Errorf("invalid seat status: %q", value)
	}
}

// ComputeExpiresAt returns the expiry epoch for an update accepted at now.
func ComputeExpiresAt(nowEpochSeconds int64) int64 {
	return nowEpochSeconds + ExpiryWindowSeconds
}

// CurrentStatus is the read-side status including the no-information state.
type CurrentStatus string

const (
	CurrentStatusAvailable   CurrentStatus = "available"
	CurrentStatusUnavailable CurrentStatus = "unavailable"
	CurrentStatusUnknown     CurrentStatus = "unknown"
)

// SeatStatusUpdate は店舗ユーザーが報告した空席ステータス1件分の不変な事実。
// 追記のみで、更新・削除されることはない。
type SeatStatusUpdate struct {
	ID              string
	StoreID         string
	Status          SeatStatus
	ExpiresAt       int64
	CreatedAt       int64
	UpdatedByUserID string
}

// CurrentStatusResult is the reduced view of a store's update history at a
// point in time. ExpiresAt is nil exactly when CurrentStatus is unknown.
type CurrentStatusResult struct {
	CurrentStatus    CurrentStatus
	ExpiresAt        *int64
	CanMarkAvailable bool
}

// unknownResult is the no-information state shared by every expired path.
func unknownResult() CurrentStatusResult {
	return CurrentStatusResult{
		CurrentStatus:    CurrentStatusUnknown,
		ExpiresAt:        nil,
		CanMarkAvailable: true,
	}
}

// ResolveCurrentStatus reduces a store's update history into its current
// status. Only events with ExpiresAt strictly greater than now count; an
// event expiring exactly at now is already expired. Among valid events the
// greatest CreatedAt wins, ties broken by the lexicographically greatest ID.
// ResolveCurrentStatus は純粋関数で、入力順や重複に依存せず常に同じ結果を返す。
func ResolveCurrentStatus(events []SeatStatusUpdate, nowEpochSeconds int64) CurrentStatusResult {
	var latest *SeatStatusUpdate
	for i := range events {
		event := &events[i]
		if event.ExpiresAt <= nowEpochSeconds {
			continue
		}
		if latest == nil || newerThan(*event, *latest) {
			latest = event
		}
	}

	if latest == nil {
		return unknownResult()
	}

	expiresAt := latest.ExpiresAt
	if latest.Status == SeatStatusAvailable {
		return CurrentStatusResult{
			CurrentStatus:    CurrentStatusAvailable,
			ExpiresAt:        &expiresAt,
			CanMarkAvailable: false,
		}
	}

	return CurrentStatusResult{
		CurrentStatus:    CurrentStatusUnavailable,
		ExpiresAt:        &expiresAt,
		CanMarkAvailable: true,
	}
}

// newerThan は CreatedAt 降順、同時刻なら ID の辞書順降順で優先度を比較する。
func newerThan(a, b SeatStatusUpdate) bool {
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt > b.CreatedAt
	}
	return a.ID > b.ID
}
