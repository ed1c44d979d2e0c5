// Package session is the session store adapter: JSON records kept under
// well-known keys for the lifetime of one client session.
//
// Malformed stored data is treated exactly like missing data. The parse error
// is logged as a warning and the caller sees "nothing stored". Storage I/O
// errors are returned.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/popx/internal/client/repositories/kv"
	"github.com/dmitrijs2005/popx/internal/logging"
)

// Well-known keys of the persisted session layout.
const (
	KeyCurrentUser     = "current-user"
	KeyRegisteredUsers = "registered-users"
)

// Store reads and writes JSON records through a kv.Repository.
type Store struct {
	repo   kv.Repository
	logger logging.Logger
}

func NewStore(repo kv.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Load decodes the record stored under key into v and reports whether one was
// found. A missing key, a JSON null and undecodable bytes all report false.
func (s *Store) Load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil || string(raw) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn(ctx, "discarding malformed session entry", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Save encodes v as JSON and stores it under key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Clear drops every stored record, registered users included.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
