// internal/repository/mongo/record_repo.go
package mongo

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// recordDocument is the stored shape: the record key is the document id.
type recordDocument struct {
	Key                  string `bson:"_id"`
	domain.WorkoutRecord `bson:",inline"`
	UpdatedAt            time.Time `bson:"updatedAt"`
}

// mongoWorkoutRecordRepository implements repository.WorkoutRecordRepository
type mongoWorkoutRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRecordRepository creates a new workout record repository.
func NewMongoWorkoutRecordRepository(db *mongo.Database) repository.WorkoutRecordRepository {
	return newMongoWorkoutRecordRepository(db)
}

func newMongoWorkoutRecordRepository(db *mongo.Database) *mongoWorkoutRecordRepository {
	return &mongoWorkoutRecordRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Get retrieves a single record by its key.
func (r *mongoWorkoutRecordRepository) Get(ctx context.Context, key string) (*domain.WorkoutRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc recordDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return &doc.WorkoutRecord, nil
}

// Put replaces (or inserts) the whole record document. Fields left empty on the record
// disappear from the stored document.
func (r *mongoWorkoutRecordRepository) Put(ctx context.Context, key string, record *domain.WorkoutRecord) error {
	if key == "" || record == nil {
		return errors.New("workout record requires a key and a record")
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := recordDocument{
		Key:           key,
		WorkoutRecord: *record,
		UpdatedAt:     time.Now().UTC(),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// Delete removes the record stored under key.
func (r *mongoWorkoutRecordRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return unavailable(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListAll returns every stored record keyed by record key.
func (r *mongoWorkoutRecordRepository) ListAll(ctx context.Context) (map[string]domain.WorkoutRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, unavailable(err)
	}
	defer cursor.Close(ctx)

	var docs []recordDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, unavailable(err)
	}

	records := make(map[string]domain.WorkoutRecord, len(docs))
	for _, d := range docs {
		records[d.Key] = d.WorkoutRecord
	}
	return records, nil
}

// ClearAll deletes every record and reports how many were removed.
func (r *mongoWorkoutRecordRepository) ClearAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, unavailable(err)
	}
	return result.DeletedCount, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Completed records drive the statistics scan
			Keys:    bson.D{{Key: "completed", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// EnsureIndexes creates the indexes of every collection used by the store.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	return EnsureWorkoutIndexes(ctx, s.mongoWorkoutRecordRepository.collection)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
}
