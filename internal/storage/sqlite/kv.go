package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hakanduyar/goal-compass-daily/internal/storage"
)

func (s *Store) Get(key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrNotInitialized
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}
	_, err := s.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(keys ...string) error {
	if s.db == nil {
		return storage.ErrNotInitialized
	}
	if len(keys) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	if _, err := s.db.Exec("DELETE FROM kv_store WHERE key IN ("+placeholders+")", args...); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}
