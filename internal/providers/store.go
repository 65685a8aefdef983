package providers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"ccswitch/config/models"
	"ccswitch/config/storage"
	"ccswitch/config/validation"
)

// ProvidersFileName is the user providers document, stored next to the main
// config file.
const ProvidersFileName = "providers.json"

// Store persists user-defined providers as a single JSON document. Reads are
// best-effort: an absent or corrupted document is treated as "no user
// providers" so provider operations never block on a bad file. Writes
// propagate their errors.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store whose document lives next to the given config
// file path.
func NewStore(configPath string) *Store {
	return &Store{
		path: filepath.Join(filepath.Dir(configPath), ProvidersFileName),
	}
}

// Path returns the path of the providers document.
func (s *Store) Path() string {
	return s.path
}

// Load returns all user-defined providers. A missing document is first-run
// state and yields an empty list; a document that cannot be read, parsed or
// validated is reported and likewise yields an empty list.
func (s *Store) Load() []models.ProviderPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []models.ProviderPreset {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("cannot read user providers, continuing without them", "path", s.path, "err", err)
		}
		return []models.ProviderPreset{}
	}

	if len(data) == 0 {
		return []models.ProviderPreset{}
	}

	var doc models.UserProvidersFile
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn("user providers file is corrupted, continuing without it", "path", s.path, "err", err)
		return []models.ProviderPreset{}
	}

	validator := validation.NewValidator()
	seen := make(map[string]bool, len(doc.Providers))
	for _, p := range doc.Providers {
		if err := validator.ValidatePreset(p); err != nil {
			log.Warn("user providers file contains an invalid record, continuing without it",
				"path", s.path, "id", p.ID, "err", err)
			return []models.ProviderPreset{}
		}
		if seen[p.ID] {
			log.Warn("user providers file contains a duplicate id, continuing without it",
				"path", s.path, "id", p.ID)
			return []models.ProviderPreset{}
		}
		seen[p.ID] = true
	}

	if doc.Providers == nil {
		return []models.ProviderPreset{}
	}
	return doc.Providers
}

// Save overwrites the providers document with the given list.
func (s *Store) Save(providers []models.ProviderPreset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(providers)
}

func (s *Store) save(providers []models.ProviderPreset) error {
	if providers == nil {
		providers = []models.ProviderPreset{}
	}

	doc := models.UserProvidersFile{
		Version:   models.ProvidersVersion,
		Providers: providers,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize user providers: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create providers directory: %w", err)
	}

	if err := storage.WriteFileAtomic(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write user providers: %w", err)
	}
	return nil
}

// Upsert validates the provider, then inserts it or replaces the entry with
// the same id. Exactly one entry per id remains after the call.
func (s *Store) Upsert(provider models.ProviderPreset) error {
	if err := validation.NewValidator().ValidatePreset(provider); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	providers := s.load()
	replaced := false
	for i, existing := range providers {
		if existing.ID == provider.ID {
			providers[i] = provider
			replaced = true
			break
		}
	}
	if !replaced {
		providers = append(providers, provider)
	}
	return s.save(providers)
}

// Delete removes the provider with the given id and reports whether a removal
// occurred. An absent id is not an error.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	providers := s.load()
	kept := providers[:0]
	for _, p := range providers {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(providers) {
		return false, nil
	}
	if err := s.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the user-defined provider with the given id.
func (s *Store) Get(id string) (models.ProviderPreset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.ProviderPreset{}, false
}

// Exists reports whether a user-defined provider with the given id exists.
func (s *Store) Exists(id string) bool {
	_, ok := s.Get(id)
	return ok
}
