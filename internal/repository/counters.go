package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterDocument is the last serial counter issued for one context key.
type CounterDocument struct {
	Key       string    `bson:"_id" json:"key"`
	Seq       int64     `bson:"seq" json:"seq"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CounterRepository issues serial counters with an atomic $inc per context key.
type CounterRepository struct {
	collection *mongo.Collection
}

// NewCounterRepository creates a new counter repository.
func NewCounterRepository(db *MongoDB) *CounterRepository {
	return &CounterRepository{
		collection: db.Counters,
	}
}

// NextCounter reserves count consecutive values for key and returns the first.
// The first reservation for a key starts at 1.
func (r *CounterRepository) NextCounter(ctx context.Context, key string, count int) (int64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("counter reservation must be positive, got %d", count)
	}

	update := bson.M{
		"$inc": bson.M{"seq": int64(count)},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc CounterDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": key}, update, opts).Decode(&doc); err != nil {
		return 0, err
	}

	return doc.Seq - int64(count) + 1, nil
}

// Peek returns the last value issued for key, 0 when none was issued yet.
func (r *CounterRepository) Peek(ctx context.Context, key string) (int64, error) {
	var doc CounterDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
