package users

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection holds user documents.
const DefaultCollection = "users"

// ErrLookup wraps failures of the directory query.
var ErrLookup = errors.New("users.lookup_failed")

// MongoDirectory queries the users collection for active administrators.
// Each call hits the database.
type MongoDirectory struct {
	coll *mongo.Collection
}

// NewMongoDirectory creates a directory over db.users, or over the given collection.
func NewMongoDirectory(db *mongo.Database, collection ...string) *MongoDirectory {
	name := DefaultCollection
	if len(collection) > 0 && collection[0] != "" {
		name = collection[0]
	}
	return &MongoDirectory{coll: db.Collection(name)}
}

type idDoc struct {
	ID bson.RawValue `bson:"_id"`
}

// ActiveAdmins returns the ids of users with userType "admin" and isActive true.
// ObjectID ids are rendered as hex strings.
func (d *MongoDirectory) ActiveAdmins(ctx context.Context) ([]string, error) {
	cursor, err := d.coll.Find(ctx,
		bson.D{{Key: "userType", Value: "admin"}, {Key: "isActive", Value: true}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Join(ErrLookup, err)
	}

	var docs []idDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Join(ErrLookup, err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id, err := stringID(doc.ID)
		if err != nil {
			return nil, errors.Join(ErrLookup, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func stringID(v bson.RawValue) (string, error) {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex(), nil
	}
	if s, ok := v.StringValueOK(); ok {
		return s, nil
	}
	return "", fmt.Errorf("unsupported _id type %s", v.Type)
}

// StaticDirectory is a fixed admin list. Useful for tests and single-admin setups.
type StaticDirectory []string

// ActiveAdmins returns a copy of the list.
func (s StaticDirectory) ActiveAdmins(context.Context) ([]string, error) {
	return slices.Clone([]string(s)), nil
}
