package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreDocument は MongoDB 上での店舗カタログスキーマを Go 構造体として表現したもの。
// vacancyStatus はここに保持しない。公開面では常にイベントログから導出する。
type StoreDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Address        string             `bson:"address,omitempty"`
	City           string             `bson:"city"`
	Genre          string             `bson:"genre"`
	Latitude       *float64           `bson:"latitude,omitempty"`
	Longitude      *float64           `bson:"longitude,omitempty"`
	ImageURLs      []string           `bson:"imageUrls,omitempty"`
	ReservationURL string             `bson:"reservationUrl"`
	Description    string             `bson:"description,omitempty"`
	IsPublished    bool               `bson:"isPublished"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// SeatStatusUpdateDocument は追記専用の空席ステータスイベント1件分。
// _id は辞書順比較可能な UUID 文字列で、リゾルバのタイブレークに使われる。
// 時刻はエポック秒の整数で保持する。
type SeatStatusUpdateDocument struct {
	ID              string `bson:"_id"`
	StoreID         string `bson:"storeId"`
	Status          string `bson:"status"`
	ExpiresAt       int64  `bson:"expiresAt"`
	CreatedAt       int64  `bson:"createdAt"`
	UpdatedByUserID string `bson:"updatedByUserId,omitempty"`
}

// StoreUserLinkDocument はログイン識別子と店舗の紐付けを表す。
type StoreUserLinkDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Subject     string             `bson:"subject"`
	StoreID     string             `bson:"storeId"`
	StoreUserID string             `bson:"storeUserId"`
	CreatedAt   time.Time          `bson:"createdAt"`
}
