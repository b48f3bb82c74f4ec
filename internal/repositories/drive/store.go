package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
)

// Store keeps each collection as "<key>.json" inside one Drive folder.
type Store struct {
	api      fileAPI
	folderID string

	mu      sync.Mutex
	fileIDs map[string]string
}

// NewStore creates a Drive-backed store authorized with creds.
func NewStore(ctx context.Context, folderID string, creds Credentials) (*Store, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive folder id cannot be empty")
	}
	api, err := newDriveFiles(ctx, creds)
	if err != nil {
		return nil, err
	}
	return newStore(api, folderID), nil
}

func newStore(api fileAPI, folderID string) *Store {
	return &Store{api: api, folderID: folderID, fileIDs: make(map[string]string)}
}

var _ portsrepo.ClosableStore = (*Store)(nil)

func fileName(key string) string {
	return key + ".json"
}

func (s *Store) LoadCollection(ctx context.Context, key string, dest any) (bool, error) {
	id, err := s.lookup(ctx, key)
	if err != nil {
		return false, err
	}
	if id == "" {
		return false, nil
	}
	raw, err := s.api.Download(ctx, id)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", fileName(key), err)
	}
	return true, nil
}

// SaveCollection rewrites the collection file, creating it on first save.
func (s *Store) SaveCollection(ctx context.Context, key string, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", fileName(key), err)
	}

	id, err := s.lookup(ctx, key)
	if err != nil {
		return err
	}
	if id != "" {
		return s.api.Update(ctx, id, raw)
	}

	id, err = s.api.Create(ctx, s.folderID, fileName(key), raw)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.fileIDs[key] = id
	s.mu.Unlock()
	return nil
}

func (s *Store) lookup(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	id, ok := s.fileIDs[key]
	s.mu.Unlock()
	if ok {
		return id, nil
	}

	id, err := s.api.Find(ctx, s.folderID, fileName(key))
	if err != nil {
		return "", err
	}
	if id != "" {
		s.mu.Lock()
		s.fileIDs[key] = id
		s.mu.Unlock()
	}
	return id, nil
}

// Close is a no-op; the HTTP client has nothing to release.
func (s *Store) Close() error {
	return nil
}
