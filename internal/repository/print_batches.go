package repository

import (
	"context"
	"errors"

	"github.com/guttosm/label-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateSerial is returned when a batch carries a serial already printed.
var ErrDuplicateSerial = errors.New("serial number already printed")

// DefaultBatchListLimit caps List when the caller passes no limit.
const DefaultBatchListLimit = 50

// PrintBatchRepository stores submitted print batches.
type PrintBatchRepository struct {
	collection *mongo.Collection
}

// NewPrintBatchRepository creates a new print batch repository.
func NewPrintBatchRepository(db *MongoDB) *PrintBatchRepository {
	return &PrintBatchRepository{
		collection: db.PrintBatches,
	}
}

// Create inserts a batch. The caller assigns ID and CreatedAt.
func (r *PrintBatchRepository) Create(ctx context.Context, batch *model.PrintBatch) error {
	_, err := r.collection.InsertOne(ctx, batch)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSerial
	}
	return err
}

// Get returns one batch by ID.
func (r *PrintBatchRepository) Get(ctx context.Context, id string) (*model.PrintBatch, error) {
	var batch model.PrintBatch
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&batch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// List returns the newest batches, optionally restricted to one context key.
func (r *PrintBatchRepository) List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error) {
	filter := bson.M{}
	if contextKey != "" {
		filter["context_key"] = contextKey
	}
	if limit <= 0 {
		limit = DefaultBatchListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	batches := make([]model.PrintBatch, 0)
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}
