// Package store is the persistence gateway: a BoltDB-backed key/value store
// holding full invoice records keyed by invoice ID. BoltDB keeps everything
// in a single local file, so no external database process is required.
package store

import (
	"encoding/json"
	"errors"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/yourusername/invoice-studio/models"
)

const bucketName = "invoices"

// ErrNotFound is returned when a requested invoice does not exist.
var ErrNotFound = errors.New("invoice not found")

// Store wraps a BoltDB database and exposes upsert-style CRUD for invoice
// records. Values round-trip losslessly: the whole aggregate, nested records
// and item sequences included, is JSON-encoded as a single value.
type Store struct {
	db *bolt.DB
}

// New opens (or creates) a BoltDB database at the given path and ensures the
// invoices bucket exists.
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes an invoice with upsert semantics: an existing record with the
// same ID is replaced.
func (s *Store) Put(inv *models.Invoice) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(inv.ID), data)
	})
}

// Get retrieves a single invoice by ID. Returns ErrNotFound if the key does
// not exist.
func (s *Store) Get(id string) (*models.Invoice, error) {
	var inv models.Invoice

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &inv)
	})
	if err != nil {
		return nil, err
	}

	return &inv, nil
}

// Delete removes an invoice by ID. Deleting a record that does not exist is
// not an error, so deletes are safe to retry.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(id))
	})
}

// List returns all stored invoices.
func (s *Store) List() ([]models.Invoice, error) {
	var invoices []models.Invoice

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(k, v []byte) error {
			var inv models.Invoice
			if err := json.Unmarshal(v, &inv); err != nil {
				return err
			}
			invoices = append(invoices, inv)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Empty slice rather than nil so the JSON encoder emits [] instead of null.
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return invoices, nil
}
