// Package bolt implements the key-value store over an embedded bbolt
// database file.
package bolt

import (
	"context"
	"fmt"
	"path"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
)

// bucketName holds all tool-managed keys. One bucket keeps the file layout
// flat; the tools expose no bucket concept.
var bucketName = []byte("adjutant")

// Store is a file-backed key-value store. The database handle is created
// once at startup and reused across calls.
type Store struct {
	db     *bbolt.DB
	logger *common.Logger
}

// New opens (or creates) the database file and ensures the bucket exists.
// The open timeout bounds the wait on the file lock when another process
// holds it.
func New(cfg config.BoltConfig, logger *common.Logger) (*Store, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	db, err := bbolt.Open(cfg.Path, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", cfg.Path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Info().Str("path", cfg.Path).Msg("Opened bolt database")
	return &Store{db: db, logger: logger}, nil
}

// Get retrieves a value by key. An absent key is not an error.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	var value string
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			// Copy: bolt-owned memory is only valid inside the transaction.
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, found, nil
}

// Set stores a key-value pair, overwriting any existing value.
func (s *Store) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key and reports whether it existed.
func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	var existed bool
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b.Get([]byte(key)) == nil {
			return nil
		}
		existed = true
		return b.Delete([]byte(key))
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return existed, nil
}

// Keys returns the keys matching a glob pattern. Bolt iterates in byte
// order, so the result is already sorted.
func (s *Store) Keys(_ context.Context, pattern string) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, _ []byte) error {
			key := string(k)
			ok, err := path.Match(pattern, key)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if ok {
				keys = append(keys, key)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Ping verifies the database handle with an empty read transaction.
func (s *Store) Ping(_ context.Context) error {
	return s.db.View(func(tx *bbolt.Tx) error { return nil })
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
