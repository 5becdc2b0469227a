package domain

// PublicVacancyStatus is the two-value status shown to public visitors.
// "unknown" never reaches the public surface; it collapses to unavailable.
type PublicVacancyStatus string

const (
	PublicVacancyAvailable   PublicVacancyStatus = "available"
	PublicVacancyUnavailable PublicVacancyStatus = "unavailable"
)

// BuildVacancyMap reduces the update histories of many stores at once.
// storeIDs に含まれない storeId を持つイベントは対象外として無視する。
// 返却されるマップには要求されたすべての storeId が必ず含まれる。
func BuildVacancyMap(storeIDs []string, events []SeatStatusUpdate, nowEpochSeconds int64) map[string]PublicVacancyStatus {
	requested := make(map[string]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		requested[id] = struct{}{}
	}

	grouped := make(map[string][]SeatStatusUpdate)
	for _, event := range events {
		if _, ok := requested[event.StoreID]; !ok {
			continue
		}
		grouped[event.StoreID] = append(grouped[event.StoreID], event)
	}

	result := make(map[string]PublicVacancyStatus, len(storeIDs))
	for _, id := range storeIDs {
		result[id] = CollapseToPublic(ResolveCurrentStatus(grouped[id], nowEpochSeconds))
	}
	return result
}

// CollapseToPublic maps the three-way read-side status onto the public
// two-way status.
func CollapseToPublic(result CurrentStatusResult) PublicVacancyStatus {
	if result.CurrentStatus == CurrentStatusAvailable {
		return PublicVacancyAvailable
	}
	return PublicVacancyUnavailable
}
