package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	shopdomain "github.com/sngm3741/akiseki-navi-services/api/internal/shop/domain"
)

// StoreLinkRepository implements the read-only identity-to-store link table.
type StoreLinkRepository struct {
	collection *mongo.Collection
}

// NewStoreLinkRepository creates a new Mongo-backed link repository.
func NewStoreLinkRepository(db *mongo.Database, collectionName string) *StoreLinkRepository {
	return &StoreLinkRepository{collection: db.Collection(collectionName)}
}

// ListLinks returns every store link held by the given login identity.
func (r *StoreLinkRepository) ListLinks(ctx context.Context, subject string) ([]shopdomain.StoreUserLink, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"subject": subject})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	links := make([]shopdomain.StoreUserLink, 0)
	for cursor.Next(ctx) {
		var doc StoreUserLinkDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		links = append(links, mapLinkDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

// FindLink resolves the link for one (identity, store) pair.
// 見つからない場合はエラーではなく nil を返し、認可判断は呼び出し元に委ねる。
func (r *StoreLinkRepository) FindLink(ctx context.Context, subject, storeID string) (*shopdomain.StoreUserLink, error) {
	var doc StoreUserLinkDocument
	err := r.collection.FindOne(ctx, bson.M{"subject": subject, "storeId": storeID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	link := mapLinkDocument(doc)
	return &link, nil
}

func mapLinkDocument(doc StoreUserLinkDocument) shopdomain.StoreUserLink {
	return shopdomain.StoreUserLink{
		StoreID:     doc.StoreID,
		StoreUserID: doc.StoreUserID,
		Subject:     doc.Subject,
	}
}
