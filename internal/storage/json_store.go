package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hakanduyar/goal-compass-daily/internal/models"
)

type jsonFile struct {
	Version  int               `json:"version"`
	Settings map[string]string `json:"settings"`
	Data     map[string]string `json:"data"`
}

// JSONStore keeps everything in a single JSON document.
type JSONStore struct {
	path string

	mu   sync.Mutex
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		if err := s.load(); err != nil {
			return err
		}
	} else {
		s.file = &jsonFile{Version: 1}
	}
	if s.file.Data == nil {
		s.file.Data = make(map[string]string)
	}
	if len(s.file.Settings) == 0 {
		s.file.Settings = models.SettingsToMap(models.DefaultSettings())
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		return nil
	}
	return s.load()
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	f := &jsonFile{}
	if err := json.Unmarshal(data, f); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if f.Data == nil {
		f.Data = make(map[string]string)
	}
	if f.Settings == nil {
		f.Settings = make(map[string]string)
	}
	s.file = f
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a temp file and renames it over the old one.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return "", ErrNotInitialized
	}
	v, ok := s.file.Data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *JSONStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return ErrNotInitialized
	}
	prev, had := s.file.Data[key]
	s.file.Data[key] = value
	if err := s.save(); err != nil {
		if had {
			s.file.Data[key] = prev
		} else {
			delete(s.file.Data, key)
		}
		return err
	}
	return nil
}

func (s *JSONStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return ErrNotInitialized
	}
	for _, k := range keys {
		delete(s.file.Data, k)
	}
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return models.Settings{}, ErrNotInitialized
	}
	return models.MapToSettings(s.file.Settings)
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return ErrNotInitialized
	}
	s.file.Settings = models.SettingsToMap(settings)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
