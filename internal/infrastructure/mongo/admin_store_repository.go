package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/akiseki-navi-services/api/internal/admin/application"
	admindomain "github.com/sngm3741/akiseki-navi-services/api/internal/admin/domain"
)

// AdminStoreRepository implements application.StoreRepository using MongoDB.
type AdminStoreRepository struct {
	collection *mongo.Collection
}

// NewAdminStoreRepository creates a new Mongo-backed admin store repository.
func NewAdminStoreRepository(db *mongo.Database, collectionName string) *AdminStoreRepository {
	return &AdminStoreRepository{collection: db.Collection(collectionName)}
}

// Find returns stores matching admin search criteria, unpublished included.
func (r *AdminStoreRepository) Find(ctx context.Context, filter application.StoreFilter, paging application.Paging) ([]admindomain.Store, error) {
	mongoFilter := bson.M{}
	if filter.City != "" {
		mongoFilter["city"] = strings.TrimSpace(filter.City)
	}
	if filter.Genre != "" {
		mongoFilter["genre"] = strings.TrimSpace(filter.Genre)
	}
	if filter.Keyword != "" {
		mongoFilter["$or"] = []bson.M{
			{"name": bson.M{"$regex": filter.Keyword, "$options": "i"}},
			{"address": bson.M{"$regex": filter.Keyword, "$options": "i"}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	if paging.Limit > 0 {
		opts.SetLimit(int64(paging.Limit))
		if paging.Page > 1 {
			opts.SetSkip(int64((paging.Page - 1) * paging.Limit))
		}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stores := make([]admindomain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapAdminStoreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

// FindByID returns a single store by its identifier.
func (r *AdminStoreRepository) FindByID(ctx context.Context, id string) (*admindomain.Store, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	store := mapAdminStoreDocument(doc)
	return &store, nil
}

// Create inserts a new store document and assigns its identifier.
func (r *AdminStoreRepository) Create(ctx context.Context, store *admindomain.Store) error {
	doc := buildStoreDocument(store)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	store.ID = doc.ID.Hex()
	return nil
}

// Update replaces an existing store document.
func (r *AdminStoreRepository) Update(ctx context.Context, store *admindomain.Store) error {
	objectID, err := primitive.ObjectIDFromHex(store.ID)
	if err != nil {
		return err
	}
	doc := buildStoreDocument(store)
	doc.ID = objectID
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func buildStoreDocument(store *admindomain.Store) StoreDocument {
	return StoreDocument{
		Name:           store.Name.String(),
		Address:        store.Address,
		City:           store.City.String(),
		Genre:          store.Genre.String(),
		Latitude:       store.Coordinates.Latitude,
		Longitude:      store.Coordinates.Longitude,
		ImageURLs:      store.ImageURLs.Strings(),
		ReservationURL: store.ReservationURL.String(),
		Description:    store.Description.String(),
		IsPublished:    store.IsPublished,
		CreatedAt:      store.CreatedAt,
		UpdatedAt:      store.UpdatedAt,
	}
}

func mapAdminStoreDocument(doc StoreDocument) admindomain.Store {
	return admindomain.Store{
		ID:             doc.ID.Hex(),
		Name:           admindomain.StoreName(doc.Name),
		Address:        strings.TrimSpace(doc.Address),
		City:           admindomain.City(doc.City),
		Genre:          admindomain.Genre(doc.Genre),
		Coordinates:    admindomain.Coordinates{Latitude: doc.Latitude, Longitude: doc.Longitude},
		ImageURLs:      mapImageURLs(doc.ImageURLs),
		ReservationURL: admindomain.URL(doc.ReservationURL),
		Description:    admindomain.Description(doc.Description),
		IsPublished:    doc.IsPublished,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func mapImageURLs(urls []string) admindomain.ImageURLList {
	result := make([]admindomain.URL, 0, len(urls))
	for _, u := range urls {
		result = append(result, admindomain.URL(u))
	}
	return admindomain.ImageURLList(result)
}
