package storage

import (
	"errors"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

var (
	ErrNotInitialized = errors.New("storage not initialized, run 'compass init' first")
	ErrNotFound       = errors.New("key not found")
)

// Backend is the key/value medium behind the Local Store.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key/value entries. Get returns ErrNotFound for a missing key.
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(keys ...string) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}
