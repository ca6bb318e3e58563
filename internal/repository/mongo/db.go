package mongo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
	defaultTimeout = 10 * time.Second // Per-operation timeout for repository calls
)

// ConnectDB dials uri and pings the primary. The client is disconnected again when the
// ping fails.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	// Enrichment blobs are stored opaquely; nested documents decode as maps.
	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			log.Warnf("mongo disconnect after failed ping: %s", dErr)
		}
		return nil, err
	}

	return client, nil
}

// Store is the Mongo-backed repository.Store: workout records and the OAuth token
// live in separate collections of one database.
type Store struct {
	*mongoWorkoutRecordRepository
	*mongoTokenRepository
	client *mongo.Client
}

// NewStore wires both repositories on top of an already connected client.
func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		mongoWorkoutRecordRepository: newMongoWorkoutRecordRepository(db),
		mongoTokenRepository:         newMongoTokenRepository(db),
		client:                       client,
	}
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
