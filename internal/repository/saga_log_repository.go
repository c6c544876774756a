package repository

import (
	"context"
	"time"

	"frent-client/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_saga_log_repository.go -package=mocks frent-client/internal/repository SagaLogRepository

// SagaCollection is the MongoDB collection holding the transaction journal.
const SagaCollection = "saga_log"

// SagaLogRepository defines the interface for the compound-transaction journal
type SagaLogRepository interface {
	Record(ctx context.Context, record *models.SagaRecord) error
	FindByUsername(ctx context.Context, username string, limit int) ([]models.SagaRecord, error)
	FindPartialFailures(ctx context.Context, since time.Time) ([]models.SagaRecord, error)
}

// sagaLogRepository implements SagaLogRepository using MongoDB
type sagaLogRepository struct {
	collection *mongo.Collection
}

// SagaIndexes lists the journal indexes: per-user history and the partial
// failure scan.
func SagaIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}, {Key: "startedAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "succeeded", Value: 1}, {Key: "finishedAt", Value: -1}},
		},
	}
}

// NewSagaLogRepository creates a new SagaLogRepository. Index creation is
// best effort here; cmd/index creates them and reports failures.
func NewSagaLogRepository(db *mongo.Database) SagaLogRepository {
	collection := db.Collection(SagaCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = collection.Indexes().CreateMany(ctx, SagaIndexes())

	return &sagaLogRepository{
		collection: collection,
	}
}

// Record appends a finished saga to the journal
func (r *sagaLogRepository) Record(ctx context.Context, record *models.SagaRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindByUsername returns a user's most recent sagas, newest first
func (r *sagaLogRepository) FindByUsername(ctx context.Context, username string, limit int) ([]models.SagaRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "startedAt", Value: -1}}).
		SetLimit(int64(limit))

	return r.find(ctx, bson.M{"username": username}, opts)
}

// FindPartialFailures returns failed sagas that committed at least one step,
// finished at or after since. These are the double-charge candidates.
func (r *sagaLogRepository) FindPartialFailures(ctx context.Context, since time.Time) ([]models.SagaRecord, error) {
	filter := bson.M{
		"succeeded":  false,
		"finishedAt": bson.M{"$gte": since},
		"steps":      bson.M{"$elemMatch": bson.M{"status": models.StepCommitted}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "finishedAt", Value: -1}})

	return r.find(ctx, filter, opts)
}

func (r *sagaLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.SagaRecord, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.SagaRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
