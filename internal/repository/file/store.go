// Package file implements the repositories on local JSON files. The records file keeps the
// flat {"<key>": {...}} layout so existing data files remain readable.
package file

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Store keeps all records in memory and writes the whole file through on every change.
type Store struct {
	mu        sync.Mutex
	path      string
	tokenPath string
	records   map[string]domain.WorkoutRecord
}

// Open loads the records file (a missing file is an empty store) and returns a store
// that owns it for the process lifetime.
func Open(path, tokenPath string) (*Store, error) {
	if path == "" || tokenPath == "" {
		return nil, errors.New("file store requires a records path and a token path")
	}
	s := &Store{
		path:      path,
		tokenPath: tokenPath,
		records:   make(map[string]domain.WorkoutRecord),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debugf("records file %s not found, starting empty", path)
	case err != nil:
		return nil, fmt.Errorf("read records file: %w", err)
	case len(data) > 0:
		if err := json.Unmarshal(data, &s.records); err != nil {
			return nil, fmt.Errorf("decode records file %s: %w", path, err)
		}
	}
	log.Debugf("file store opened with %d records", len(s.records))
	return s, nil
}

func (s *Store) Get(_ context.Context, key string) (*domain.WorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (s *Store) Put(_ context.Context, key string, record *domain.WorkoutRecord) error {
	if key == "" || record == nil {
		return errors.New("workout record requires a key and a record")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.records[key]
	s.records[key] = *cloneRecord(*record)
	if err := s.flush(); err != nil {
		// keep memory consistent with what is on disk
		if existed {
			s.records[key] = prev
		} else {
			delete(s.records, key)
		}
		return err
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.records[key]
	if !ok {
		return repository.ErrNotFound
	}
	delete(s.records, key)
	if err := s.flush(); err != nil {
		s.records[key] = prev
		return err
	}
	return nil
}

func (s *Store) ListAll(_ context.Context) (map[string]domain.WorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.WorkoutRecord, len(s.records))
	for k, v := range s.records {
		out[k] = *cloneRecord(v)
	}
	return out, nil
}

func (s *Store) ClearAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records
	s.records = make(map[string]domain.WorkoutRecord)
	if err := s.flush(); err != nil {
		s.records = prev
		return 0, err
	}
	return int64(len(prev)), nil
}

func (s *Store) GetToken(_ context.Context) (*domain.OAuthToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	var tok domain.OAuthToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("%w: decode token file: %w", repository.ErrStoreUnavailable, err)
	}
	return &tok, nil
}

func (s *Store) SaveToken(_ context.Context, token *domain.OAuthToken) error {
	if token == nil || token.AccessToken == "" {
		return errors.New("token requires an access token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.tokenPath, data, 0o600)
}

func (s *Store) DeleteToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.tokenPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	return nil
}

// Close is a no-op: every change is already on disk.
func (s *Store) Close(_ context.Context) error {
	return nil
}

// flush must be called with mu held.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data, 0o644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	return nil
}

// cloneRecord copies the pointer and map fields so callers never alias stored state.
func cloneRecord(r domain.WorkoutRecord) *domain.WorkoutRecord {
	c := r
	if r.OriginalMiles != nil {
		v := *r.OriginalMiles
		c.OriginalMiles = &v
	}
	if r.ModifiedMiles != nil {
		v := *r.ModifiedMiles
		c.ModifiedMiles = &v
	}
	if r.Enrichment != nil {
		c.Enrichment = make(map[string]any, len(r.Enrichment))
		for k, v := range r.Enrichment {
			c.Enrichment[k] = v
		}
	}
	return &c
}
