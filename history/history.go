// Package history persists past transcriptions in a local badger store.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/shh-cli/shh/internal/types"
)

const keyPrefix = "entry/"

// Entry is one recorded transcription.
type Entry struct {
	ID               string      `json:"id"`
	CreatedAt        time.Time   `json:"createdAt"`
	Text             string      `json:"text"`
	Style            types.Style `json:"style"`
	TargetLanguage   string      `json:"targetLanguage,omitempty"`
	DetectedLanguage string      `json:"detectedLanguage,omitempty"`
	DurationSeconds  float64     `json:"durationSeconds"`
}

// Store is a badger-backed transcription history.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the history store under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return &Store{db: db}, nil
}

// Add stores an entry. Missing ID and CreatedAt are filled in.
func (s *Store) Add(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	// Keys sort by creation time so Recent can walk backwards.
	key := fmt.Sprintf("%s%020d", keyPrefix, e.CreatedAt.UnixNano())

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
	if err != nil {
		return fmt.Errorf("store entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	var entries []Entry
	prefix := []byte(keyPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.PrefetchSize = n

		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the last possible entry key, then walk back.
		seek := append(append([]byte{}, prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(entries) < n; it.Next() {
			var e Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}
	return entries, nil
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}
