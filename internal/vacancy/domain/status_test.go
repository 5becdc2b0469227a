package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(id, storeID string, status SeatStatus, createdAt, expiresAt int64) SeatStatusUpdate {
	return SeatStatusUpdate{
		ID:        id,
		StoreID:   storeID,
		Status:    status,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
}

func TestResolveCurrentStatus(t *testing.T) {
	tests := []struct {
		name       string
		events     []SeatStatusUpdate
		now        int64
		wantStatus CurrentStatus
		wantExpiry *int64
		wantMark   bool
	}{
		{
			name:       "no events",
			events:     nil,
			now:        1000,
			wantStatus: CurrentStatusUnknown,
			wantExpiry: nil,
			wantMark:   true,
		},
		{
			name: "expiry boundary is exclusive",
			events: []SeatStatusUpdate{
				update("a", "s1", SeatStatusAvailable, 500, 1000),
			},
			now:        1000,
			wantStatus: CurrentStatusUnknown,
			wantExpiry: nil,
			wantMark:   true,
		},
		{
			name: "one second before expiry is still valid",
			events: []SeatStatusUpdate{
				update("a", "s1", SeatStatusAvailable, 500, 1000),
			},
			now:        999,
			wantStatus: CurrentStatusAvailable,
			wantExpiry: int64Ptr(1000),
			wantMark:   false,
		},
		{
			name: "unavailable keeps mark action enabled",
			events: []SeatStatusUpdate{
				update("a", "s1", SeatStatusUnavailable, 500, 2300),
			},
			now:        1000,
			wantStatus: CurrentStatusUnavailable,
			wantExpiry: int64Ptr(2300),
			wantMark:   true,
		},
		{
			name: "latest createdAt wins regardless of input order",
			events: []SeatStatusUpdate{
				update("b", "s1", SeatStatusAvailable, 900, 2700),
				update("a", "s1", SeatStatusUnavailable, 600, 2400),
			},
			now:        1000,
			wantStatus: CurrentStatusAvailable,
			wantExpiry: int64Ptr(2700),
			wantMark:   false,
		},
		{
			name: "createdAt tie breaks on lexicographically greater id",
			events: []SeatStatusUpdate{
				update("0001", "s1", SeatStatusUnavailable, 900, 2700),
				update("0002", "s1", SeatStatusAvailable, 900, 2700),
			},
			now:        1000,
			wantStatus: CurrentStatusAvailable,
			wantExpiry: int64Ptr(2700),
			wantMark:   false,
		},
		{
			name: "expired newer event yields the older valid one",
			events: []SeatStatusUpdate{
				update("b", "s1", SeatStatusUnavailable, 900, 1000),
				update("a", "s1", SeatStatusAvailable, 600, 2400),
			},
			now:        1000,
			wantStatus: CurrentStatusAvailable,
			wantExpiry: int64Ptr(2400),
			wantMark:   false,
		},
		{
			name: "non-monotonic history does not panic",
			events: []SeatStatusUpdate{
				update("a", "s1", SeatStatusAvailable, 900, 100),
				update("b", "s1", SeatStatusUnavailable, 100, 50),
			},
			now:        1000,
			wantStatus: CurrentStatusUnknown,
			wantExpiry: nil,
			wantMark:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCurrentStatus(tt.events, tt.now)
			assert.Equal(t, tt.wantStatus, got.CurrentStatus)
			assert.Equal(t, tt.wantExpiry, got.ExpiresAt)
			assert.Equal(t, tt.wantMark, got.CanMarkAvailable)
		})
	}
}

func TestResolveCurrentStatusIsPure(t *testing.T) {
	events := []SeatStatusUpdate{
		update("a", "s1", SeatStatusAvailable, 600, 2400),
		update("b", "s1", SeatStatusUnavailable, 900, 2700),
	}

	first := ResolveCurrentStatus(events, 1000)
	second := ResolveCurrentStatus(events, 1000)
	assert.Equal(t, first, second)

	// 入力スライスを並べ替えても結果は変わらない。
	reversed := []SeatStatusUpdate{events[1], events[0]}
	assert.Equal(t, first, ResolveCurrentStatus(reversed, 1000))
}

func TestComputeExpiresAt(t *testing.T) {
	assert.Equal(t, int64(2800), ComputeExpiresAt(1000))
	assert.Equal(t, int64(3800), ComputeExpiresAt(2000))
}

func TestParseSeatStatus(t *testing.T) {
	status, err := ParseSeatStatus("available")
	require.NoError(t, err)
	assert.Equal(t, SeatStatusAvailable, status)

	status, err = ParseSeatStatus("unavailable")
	require.NoError(t, err)
	assert.Equal(t, SeatStatusUnavailable, status)

	_, err = ParseSeatStatus("closed")
	assert.Error(t, err)

	_, err = ParseSeatStatus("")
	assert.Error(t, err)
}

func int64Ptr(v int64) *int64 {
	return &v
}
