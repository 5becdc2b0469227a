package domain

// StoreUserLink はログイン識別子と操作可能な店舗との紐付けを表す認可上の事実。
// 外部の連携テーブルで管理され、本コンテキストからは読み取りのみ行う。
type StoreUserLink struct {
	StoreID     string
	StoreUserID string
	Subject     string
}

// StoreSummary carries the display fields the shop view shows alongside the
// seat status. A missing summary is not an error; the status still renders.
type StoreSummary struct {
	StoreID       string
	Name          string
	CoverImageURL string
}
