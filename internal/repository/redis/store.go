// Package redis implements the repositories on a Redis hash (records) and a string key (token).
package redis

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	workoutsKey = "workouts"
	tokenKey    = "strava_token"
)

type Store struct {
	client      *redis.Client
	workoutsKey string
	tokenKey    string
}

// NewStore uses keyPrefix to namespace both keys, e.g. "tracker::".
func NewStore(client *redis.Client, keyPrefix string) *Store {
	return &Store{
		client:      client,
		workoutsKey: keyPrefix + workoutsKey,
		tokenKey:    keyPrefix + tokenKey,
	}
}

func (s *Store) Get(ctx context.Context, key string) (*domain.WorkoutRecord, error) {
	raw, err := s.client.HGet(ctx, s.workoutsKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}

	var rec domain.WorkoutRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", key, err)
	}
	return &rec, nil
}

func (s *Store) Put(ctx context.Context, key string, record *domain.WorkoutRecord) error {
	if key == "" || record == nil {
		return errors.New("workout record requires a key and a record")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := s.client.HSet(ctx, s.workoutsKey, key, data).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	n, err := s.client.HDel(ctx, s.workoutsKey, key).Result()
	if err != nil {
		return unavailable(err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListAll skips entries that no longer decode instead of failing the whole listing.
func (s *Store) ListAll(ctx context.Context) (map[string]domain.WorkoutRecord, error) {
	raw, err := s.client.HGetAll(ctx, s.workoutsKey).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	records := make(map[string]domain.WorkoutRecord, len(raw))
	for key, value := range raw {
		var rec domain.WorkoutRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			log.Warnf("redis store: skipping undecodable record %s: %s", key, err)
			continue
		}
		records[key] = rec
	}
	return records, nil
}

func (s *Store) ClearAll(ctx context.Context) (int64, error) {
	n, err := s.client.HLen(ctx, s.workoutsKey).Result()
	if err != nil {
		return 0, unavailable(err)
	}
	if err := s.client.Del(ctx, s.workoutsKey).Err(); err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

func (s *Store) GetToken(ctx context.Context) (*domain.OAuthToken, error) {
	raw, err := s.client.Get(ctx, s.tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}

	var tok domain.OAuthToken
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &tok, nil
}

func (s *Store) SaveToken(ctx context.Context, token *domain.OAuthToken) error {
	if token == nil || token.AccessToken == "" {
		return errors.New("token requires an access token")
	}
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.tokenKey, data, 0).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) DeleteToken(ctx context.Context) error {
	if err := s.client.Del(ctx, s.tokenKey).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) Close(_ context.Context) error {
	return s.client.Close()
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
}
