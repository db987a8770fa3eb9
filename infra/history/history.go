// Package history persists the list of recently submitted video URLs.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const maxEntries = 10

// Entry is one remembered URL submission, newest first in the list.
type Entry struct {
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Store reads and writes the history file. A missing file is an empty
// history, never an error.
type Store struct {
	path string
}

// NewStore creates a store over the given JSON file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the remembered entries, newest first.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return entries, nil
}

// Add remembers a URL, moving it to the front if already present and
// dropping the oldest entry beyond the cap.
func (s *Store) Add(url, title string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	filtered := make([]Entry, 0, len(entries)+1)
	filtered = append(filtered, Entry{URL: url, Title: title, Timestamp: time.Now().UnixMilli()})
	for _, e := range entries {
		if e.URL == url {
			continue
		}
		filtered = append(filtered, e)
	}
	if len(filtered) > maxEntries {
		filtered = filtered[:maxEntries]
	}
	return s.save(filtered)
}

// Remove forgets one URL.
func (s *Store) Remove(url string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.URL == url {
			continue
		}
		filtered = append(filtered, e)
	}
	return s.save(filtered)
}

// Clear forgets everything.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func (s *Store) save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
