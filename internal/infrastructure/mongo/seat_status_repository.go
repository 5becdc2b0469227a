package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	vacancydomain "github.com/sngm3741/akiseki-navi-services/api/internal/vacancy/domain"
)

// SeatStatusRepository implements the append-only seat-status event log.
// 挿入と絞り込み読み取りのみを提供し、更新・削除は存在しない。
type SeatStatusRepository struct {
	collection *mongo.Collection
}

// NewSeatStatusRepository creates a new Mongo-backed event log.
func NewSeatStatusRepository(db *mongo.Database, collectionName string) *SeatStatusRepository {
	return &SeatStatusRepository{collection: db.Collection(collectionName)}
}

// Insert appends exactly one status event.
func (r *SeatStatusRepository) Insert(ctx context.Context, update vacancydomain.SeatStatusUpdate) error {
	_, err := r.collection.InsertOne(ctx, SeatStatusUpdateDocument{
		ID:              update.ID,
		StoreID:         update.StoreID,
		Status:          string(update.Status),
		ExpiresAt:       update.ExpiresAt,
		CreatedAt:       update.CreatedAt,
		UpdatedByUserID: update.UpdatedByUserID,
	})
	return err
}

// ListByStoreID returns the full event history of one store.
func (r *SeatStatusRepository) ListByStoreID(ctx context.Context, storeID string) ([]vacancydomain.SeatStatusUpdate, error) {
	return r.list(ctx, bson.M{"storeId": storeID})
}

// ListByStoreIDs performs the bulk fetch used by the public projection.
// 店舗ごとのN回クエリではなく1回の $in で取得しレイテンシを抑える。
func (r *SeatStatusRepository) ListByStoreIDs(ctx context.Context, storeIDs []string) ([]vacancydomain.SeatStatusUpdate, error) {
	if len(storeIDs) == 0 {
		return []vacancydomain.SeatStatusUpdate{}, nil
	}
	return r.list(ctx, bson.M{"storeId": bson.M{"$in": storeIDs}})
}

func (r *SeatStatusRepository) list(ctx context.Context, filter bson.M) ([]vacancydomain.SeatStatusUpdate, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	updates := make([]vacancydomain.SeatStatusUpdate, 0)
	for cursor.Next(ctx) {
		var doc SeatStatusUpdateDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		updates = append(updates, vacancydomain.SeatStatusUpdate{
			ID:              doc.ID,
			StoreID:         doc.StoreID,
			Status:          vacancydomain.SeatStatus(doc.Status),
			ExpiresAt:       doc.ExpiresAt,
			CreatedAt:       doc.CreatedAt,
			UpdatedByUserID: doc.UpdatedByUserID,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}
