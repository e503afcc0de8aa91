package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"
)

const keyPreferences = "preferences"

// Store keeps preferences in a BadgerDB database, as JSON under one key.
type Store struct {
	db *badger.DB
}

// Open opens the store in dir, or in GetDatabaseDir when dir is empty.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = GetDatabaseDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preferences store %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences validates prefs and writes them.
func (s *Store) SavePreferences(prefs *Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences reads the stored preferences. Nothing stored yields the
// defaults, and fields missing from the stored value keep theirs. On error the
// defaults are returned with it.
func (s *Store) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, prefs); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
			}
			return nil
		})
	})
	if err == nil {
		err = prefs.Validate()
	}
	if err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// LoadDefault opens the store in dir (the platform default when empty) and
// loads the preferences. Problems are logged and the defaults used instead;
// the store is nil when it could not be opened. The caller closes the store.
func LoadDefault(dir string) (*Preferences, *Store) {
	store, err := Open(dir)
	if err != nil {
		log.Printf("Warning: Failed to open preferences store: %v", err)
		return DefaultPreferences(), nil
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		return prefs, store
	}
	log.Printf("[CONFIG] Loaded preferences")
	return prefs, store
}
