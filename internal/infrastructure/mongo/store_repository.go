package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sngm3741/akiseki-navi-services/api/internal/public/application"
	"github.com/sngm3741/akiseki-navi-services/api/internal/public/domain"
	shopdomain "github.com/sngm3741/akiseki-navi-services/api/internal/shop/domain"
)

// StoreRepository implements the public catalog reads and the shop summary
// lookup using MongoDB.
type StoreRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository creates a new Mongo-backed store repository.
func NewStoreRepository(db *mongo.Database, collectionName string) *StoreRepository {
	return &StoreRepository{collection: db.Collection(collectionName)}
}

// FindPublished returns published stores matching the catalog-level filter.
// VacantOnly はここでは扱わない。空席ステータスは保存値ではなく導出値のため。
func (r *StoreRepository) FindPublished(ctx context.Context, filter application.StoreFilter) ([]domain.Store, error) {
	mongoFilter := bson.M{"isPublished": true}
	if filter.City != "" {
		mongoFilter["city"] = strings.TrimSpace(filter.City)
	}
	if filter.Genre != "" {
		mongoFilter["genre"] = strings.TrimSpace(filter.Genre)
	}

	cursor, err := r.collection.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapStoreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

// FindStoreSummary resolves the display fields for the shop view.
// 非公開店舗もショップ画面には名前を出すため isPublished では絞らない。
func (r *StoreRepository) FindStoreSummary(ctx context.Context, storeID string) (*shopdomain.StoreSummary, error) {
	objectID, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, err
	}

	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}

	summary := &shopdomain.StoreSummary{
		StoreID: doc.ID.Hex(),
		Name:    doc.Name,
	}
	if len(doc.ImageURLs) > 0 {
		summary.CoverImageURL = doc.ImageURLs[0]
	}
	return summary, nil
}

func mapStoreDocument(doc StoreDocument) domain.Store {
	return domain.Store{
		ID:             doc.ID.Hex(),
		Name:           doc.Name,
		Address:        strings.TrimSpace(doc.Address),
		City:           doc.City,
		Genre:          doc.Genre,
		Latitude:       doc.Latitude,
		Longitude:      doc.Longitude,
		ImageURLs:      append([]string{}, doc.ImageURLs...),
		ReservationURL: doc.ReservationURL,
		Description:    doc.Description,
		UpdatedAt:      doc.UpdatedAt,
	}
}
