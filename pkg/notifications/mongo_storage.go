package notifications

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection is the collection MongoStorage uses unless overridden.
const DefaultCollection = "notifications"

// MongoStorage persists notifications in a MongoDB collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// MongoStorageOption configures a MongoStorage.
type MongoStorageOption func(*mongoStorageOptions)

type mongoStorageOptions struct {
	collection string
}

// WithCollection overrides the collection name.
func WithCollection(name string) MongoStorageOption {
	return func(o *mongoStorageOptions) {
		if name != "" {
			o.collection = name
		}
	}
}

// NewMongoStorage creates a storage backed by db.
func NewMongoStorage(db *mongo.Database, opts ...MongoStorageOption) *MongoStorage {
	o := mongoStorageOptions{collection: DefaultCollection}
	for _, opt := range opts {
		opt(&o)
	}
	return &MongoStorage{coll: db.Collection(o.collection)}
}

// EnsureIndexes creates the indexes the list and unread-count queries rely on.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "isRead", Value: 1}}},
	})
	if err != nil {
		return errors.Join(ErrPersistence, err)
	}
	return nil
}

func (s *MongoStorage) Create(ctx context.Context, n Notification) error {
	if n.ID == "" || n.Recipient == "" {
		return ErrInvalidNotification
	}
	_, err := s.coll.InsertOne(ctx, n)
	return err
}

func (s *MongoStorage) Find(ctx context.Context, f Filter, p Page) ([]Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if p.Skip > 0 {
		opts.SetSkip(int64(p.Skip))
	}
	if p.Limit > 0 {
		opts.SetLimit(int64(p.Limit))
	}

	cursor, err := s.coll.Find(ctx, filterDoc(f), opts)
	if err != nil {
		return nil, err
	}

	result := []Notification{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *MongoStorage) Count(ctx context.Context, f Filter) (int64, error) {
	return s.coll.CountDocuments(ctx, filterDoc(f))
}

func (s *MongoStorage) MarkRead(ctx context.Context, id, recipient string, at time.Time) (*Notification, error) {
	var n Notification
	err := s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "recipient", Value: recipient}, {Key: "isRead", Value: false}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "isRead", Value: true}, {Key: "updatedAt", Value: at}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	if err == nil {
		return &n, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// Either already read or not owned by recipient.
	err = s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "recipient", Value: recipient}}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *MongoStorage) MarkAllRead(ctx context.Context, recipient string, at time.Time) (int64, error) {
	res, err := s.coll.UpdateMany(ctx,
		bson.D{{Key: "recipient", Value: recipient}, {Key: "isRead", Value: false}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "isRead", Value: true}, {Key: "updatedAt", Value: at}}}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoStorage) Delete(ctx context.Context, id, recipient string) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}, {Key: "recipient", Value: recipient}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) DeleteAll(ctx context.Context, recipient string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.D{{Key: "recipient", Value: recipient}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func filterDoc(f Filter) bson.D {
	doc := bson.D{{Key: "recipient", Value: f.Recipient}}
	if f.UnreadOnly {
		doc = append(doc, bson.E{Key: "isRead", Value: false})
	}
	return doc
}
