package mongo

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	tokenCollectionName = "oauth_tokens"
	tokenDocumentID     = "strava" // Single-user tracker: one token document
)

type tokenDocument struct {
	ID                string `bson:"_id"`
	domain.OAuthToken `bson:",inline"`
}

// mongoTokenRepository implements repository.TokenRepository using MongoDB.
type mongoTokenRepository struct {
	collection *mongo.Collection
}

// NewMongoTokenRepository creates a new instance of mongoTokenRepository.
func NewMongoTokenRepository(db *mongo.Database) repository.TokenRepository {
	return newMongoTokenRepository(db)
}

func newMongoTokenRepository(db *mongo.Database) *mongoTokenRepository {
	return &mongoTokenRepository{
		collection: db.Collection(tokenCollectionName),
	}
}

// GetToken loads the stored token document.
func (r *mongoTokenRepository) GetToken(ctx context.Context) (*domain.OAuthToken, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc tokenDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": tokenDocumentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, unavailable(err)
	}
	return &doc.OAuthToken, nil
}

// SaveToken upserts the token document.
func (r *mongoTokenRepository) SaveToken(ctx context.Context, token *domain.OAuthToken) error {
	if token == nil || token.AccessToken == "" {
		return errors.New("token requires an access token")
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	token.UpdatedAt = time.Now().UTC()
	doc := tokenDocument{ID: tokenDocumentID, OAuthToken: *token}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tokenDocumentID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// DeleteToken removes the token document. Deleting a missing token is not an error.
func (r *mongoTokenRepository) DeleteToken(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": tokenDocumentID}); err != nil {
		return unavailable(err)
	}
	return nil
}
