package repository

import (
	"alcyxob/training-tracker/internal/domain" // Import our defined domain models
	"context"
)

//go:generate mockgen -source=$GOFILE -destination=../service/repository_mocks_test.go -package=service_test

// Error constants for repository layer
var (
	ErrNotFound         = RepositoryError("not found")
	ErrStoreUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRecordRepository persists per-slot workout records keyed by domain.RecordKey.
// Implementations wrap driver and IO failures with ErrStoreUnavailable so callers can tell
// them apart from ErrNotFound. Writes are last-writer-wins per key; Get+Put is not atomic.
type WorkoutRecordRepository interface {
	Get(ctx context.Context, key string) (*domain.WorkoutRecord, error)
	Put(ctx context.Context, key string, record *domain.WorkoutRecord) error
	Delete(ctx context.Context, key string) error // ErrNotFound when the key is absent
	ListAll(ctx context.Context) (map[string]domain.WorkoutRecord, error)
	ClearAll(ctx context.Context) (int64, error) // Returns the number of records removed
}

// TokenRepository stores the single OAuth token record for the activity provider.
type TokenRepository interface {
	GetToken(ctx context.Context) (*domain.OAuthToken, error) // ErrNotFound when not connected
	SaveToken(ctx context.Context, token *domain.OAuthToken) error
	DeleteToken(ctx context.Context) error
}

// Store bundles both repositories of one backend together with its shutdown hook.
type Store interface {
	WorkoutRecordRepository
	TokenRepository
	Close(ctx context.Context) error
}
