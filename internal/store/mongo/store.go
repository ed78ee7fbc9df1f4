// Package mongo implements store.Store on top of a MongoDB database,
// one collection per resource kind. Records carry an application id
// (uuid) and a server-assigned creation timestamp; the engine's own
// _id is never decoded into record structs, so it cannot leak across
// the API boundary.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/likith1908/portfolio-api/internal/store"
)

const (
	collProfiles       = "profiles"
	collEducation      = "education"
	collExperience     = "experience"
	collProjects       = "projects"
	collSkills         = "skills"
	collCertifications = "certifications"
	collAwards         = "awards"
	collPatents        = "patents"
	collContacts       = "contacts"
)

const fieldCreatedAt = "created_at"

// Store handles MongoDB operations for every portfolio resource.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore wraps an already-connected client. The Store owns the client
// from here on; Close disconnects it.
func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{
		client: client,
		db:     client.Database(dbName),
	}
}

func (s *Store) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// listNewest returns up to store.MaxListResults documents ordered by
// descending creation timestamp.
func listNewest[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}}).
		SetLimit(store.MaxListResults)

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", coll.Name(), err)
	}

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decoding %s documents: %w", coll.Name(), err)
	}
	return out, nil
}

func findSingleton[T any](ctx context.Context, coll *mongo.Collection) (T, error) {
	var rec T
	err := coll.FindOne(ctx, bson.D{}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, store.ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("reading %s document: %w", coll.Name(), err)
	}
	return rec, nil
}

// replaceSingleton writes the sole document of a singleton collection,
// creating it when absent. The empty filter matches whatever single
// document exists.
func replaceSingleton(ctx context.Context, coll *mongo.Collection, fields map[string]any) error {
	_, err := coll.ReplaceOne(ctx, bson.D{}, bson.M(fields), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replacing %s document: %w", coll.Name(), err)
	}
	return nil
}

func insertRecord(ctx context.Context, coll *mongo.Collection, rec any) error {
	if _, err := coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("inserting %s document: %w", coll.Name(), err)
	}
	return nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, fields map[string]any) error {
	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("updating %s document: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return store.ErrNotModified
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting %s document: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
