package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"leadcomposer/pkg/logging"
)

// StorageKey is the single key holding the JSON array of custom templates.
const StorageKey = "customTemplates"

// Storage is an opaque key-value persistence service.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store persists the custom template collection as a whole.
type Store struct {
	storage Storage
	logger  *logging.Logger
}

func NewStore(storage Storage, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{storage: storage, logger: logger}
}

// SaveAll overwrites the stored collection with templates.
func (s *Store) SaveAll(templates []Template) error {
	if templates == nil {
		templates = []Template{}
	}
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("failed to encode custom templates: %w", err)
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save custom templates: %w", err)
	}
	return nil
}

// LoadAll returns the stored collection. A missing, unreadable or malformed
// payload is logged and yields an empty collection; it never fails.
func (s *Store) LoadAll() []Template {
	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Warn().Err(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).Msg("falling back to no custom templates")
		return []Template{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []Template{}
	}

	var templates []Template
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		s.logger.Warn().Err(fmt.Errorf("%w: %w", ErrPersistenceRead, err)).Msg("falling back to no custom templates")
		return []Template{}
	}
	if templates == nil {
		return []Template{}
	}

	s.logger.Debug().Int("count", len(templates)).Msg("custom templates loaded")
	return templates
}
