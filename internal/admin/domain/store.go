package domain

import "time"

// Store aggregates the catalog data required for admin operations.
// 公開フラグを含む正本のカタログレコードで、空席ステータスは保持しない。
// 空席ステータスはイベントログから読み取り時に導出される。
type Store struct {
	ID             string
	Name           StoreName
	Address        string
	City           City
	Genre          Genre
	Coordinates    Coordinates
	ImageURLs      ImageURLList
	ReservationURL URL
	Description    Description
	IsPublished    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
