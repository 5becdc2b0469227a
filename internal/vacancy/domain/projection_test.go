package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVacancyMap(t *testing.T) {
	now := int64(1000)
	events := []SeatStatusUpdate{
		update("a", "s1", SeatStatusAvailable, 900, 2700),
		update("b", "s2", SeatStatusUnavailable, 900, 2700),
		update("c", "s3", SeatStatusAvailable, 500, 1000), // expired at now
		update("d", "outsider", SeatStatusAvailable, 900, 2700),
	}

	got := BuildVacancyMap([]string{"s1", "s2", "s3", "s4"}, events, now)

	assert.Equal(t, map[string]PublicVacancyStatus{
		"s1": PublicVacancyAvailable,
		"s2": PublicVacancyUnavailable,
		"s3": PublicVacancyUnavailable,
		"s4": PublicVacancyUnavailable,
	}, got)

	// 要求外の storeId は結果に現れない。
	_, ok := got["outsider"]
	assert.False(t, ok)
}

func TestBuildVacancyMapNeverYieldsUnknown(t *testing.T) {
	got := BuildVacancyMap([]string{"s1", "s2"}, nil, 1000)
	for id, status := range got {
		assert.Contains(t, []PublicVacancyStatus{PublicVacancyAvailable, PublicVacancyUnavailable}, status, "store %s", id)
	}
	assert.Len(t, got, 2)
}

func TestCollapseToPublic(t *testing.T) {
	assert.Equal(t, PublicVacancyAvailable, CollapseToPublic(CurrentStatusResult{CurrentStatus: CurrentStatusAvailable}))
	assert.Equal(t, PublicVacancyUnavailable, CollapseToPublic(CurrentStatusResult{CurrentStatus: CurrentStatusUnavailable}))
	assert.Equal(t, PublicVacancyUnavailable, CollapseToPublic(CurrentStatusResult{CurrentStatus: CurrentStatusUnknown}))
}
