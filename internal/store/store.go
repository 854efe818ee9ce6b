// Package store persists the tile deck as a single YAML document. Loading
// returns a fresh category map and saving takes a snapshot, so the engine's
// in-memory tree never aliases what is on disk.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

// ErrNoDeck reports that no deck document exists yet. Callers treat this as
// "no persisted data", not as a failure.
var ErrNoDeck = errors.New("no deck document")

type document struct {
	Categories map[string]tiles.PersistedCategory `yaml:"categories"`
}

// Store reads and writes one deck document.
type Store struct {
	path string
}

// New returns a store over the document at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string { return s.path }

// DefaultPath returns the per-user deck location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tiledeck", "tiles.yaml"), nil
}

// Load reads the persisted category map. A missing document yields
// ErrNoDeck so callers can distinguish first runs from broken decks.
func (s *Store) Load() (map[string]tiles.PersistedCategory, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDeck
		}
		events.Store.LoadError(s.path, err)
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		err = fmt.Errorf("parse %s: %w", s.path, err)
		events.Store.LoadError(s.path, err)
		return nil, err
	}
	events.Store.Loaded(s.path, len(doc.Categories))
	return doc.Categories, nil
}

// Save writes the snapshot to the document path, creating the parent
// directory when missing.
func (s *Store) Save(snapshot map[string]tiles.PersistedCategory) error {
	raw, err := yaml.Marshal(document{Categories: snapshot})
	if err != nil {
		events.Store.SaveError(s.path, err)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		events.Store.SaveError(s.path, err)
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		events.Store.SaveError(s.path, err)
		return err
	}
	events.Store.Saved(s.path, len(snapshot))
	return nil
}
