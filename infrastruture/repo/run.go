package repo

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxRunsPerQuery = 100

// RunRepo handles the persistence of solve runs.
type RunRepo struct {
	collection *mongo.Collection
}

var _ i.RunRepo = (*RunRepo)(nil)

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index backing BySession.
func (r *RunRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return errors.New("creating run index: " + err.Error())
	}
	return nil
}

// Save inserts a run.
func (r *RunRepo) Save(ctx context.Context, run *dmn.Run) error {
	if _, err := r.collection.InsertOne(ctx, run); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("run already recorded")
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// BySession retrieves up to limit runs of a session, newest first.
func (r *RunRepo) BySession(ctx context.Context, sessionID uuid.UUID, limit int64) ([]dmn.Run, error) {
	if limit <= 0 || limit > maxRunsPerQuery {
		limit = maxRunsPerQuery
	}

	filter := bson.M{"sessionId": sessionID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	runs := make([]dmn.Run, 0)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return runs, nil
}
