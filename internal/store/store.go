package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"marquee/internal/domain"
)

// Bucket names
var (
	bucketFavorites   = []byte("favorites")
	bucketHistory     = []byte("history")
	bucketPreferences = []byte("preferences")
)

// Slot keys within buckets
const (
	keyList  = "list"
	keyTheme = "theme"
)

// UserDataStore implements domain.UserDataStore using BoltDB.
type UserDataStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewUserDataStore opens (or creates) the user data database under
// dataDir. An empty dataDir yields a memory-only store, useful for
// tests and ephemeral sessions.
func NewUserDataStore(dataDir string) (*UserDataStore, error) {
	if dataDir == "" {
		return &UserDataStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "marquee.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketFavorites, bucketHistory, bucketPreferences} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &UserDataStore{db: db, cache: make(map[string][]byte)}, nil
}

// Close releases the underlying database.
func (s *UserDataStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *UserDataStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *UserDataStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *UserDataStore) delete(bucket []byte, key string) error {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			return b.Delete([]byte(key))
		}
		return nil
	})
}

// === Favorites ===

func (s *UserDataStore) Favorites() ([]*domain.CatalogItem, bool) {
	var items []*domain.CatalogItem
	ok := s.get(bucketFavorites, keyList, &items)
	return items, ok
}

func (s *UserDataStore) SaveFavorites(items []*domain.CatalogItem) error {
	return s.set(bucketFavorites, keyList, items)
}

// === Search history ===

func (s *UserDataStore) History() ([]string, bool) {
	var terms []string
	ok := s.get(bucketHistory, keyList, &terms)
	return terms, ok
}

func (s *UserDataStore) SaveHistory(terms []string) error {
	return s.set(bucketHistory, keyList, terms)
}

func (s *UserDataStore) ClearHistory() error {
	return s.delete(bucketHistory, keyList)
}

// === Theme ===

func (s *UserDataStore) Theme() (string, bool) {
	var theme string
	ok := s.get(bucketPreferences, keyTheme, &theme)
	return theme, ok && theme != ""
}

func (s *UserDataStore) SaveTheme(name string) error {
	return s.set(bucketPreferences, keyTheme, name)
}
