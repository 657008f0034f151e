// Package store keeps the local caches of the CLI in a bbolt database: address nicknames,
// meeting records, redeemed receipt markers and the wallet session.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketIdentities = []byte("identities")
	bucketMeetings   = []byte("meetings")
	bucketRedeemed   = []byte("redeemed")
	bucketSession    = []byte("session")
)

// Store is a bbolt-backed cache. Values are JSON documents replaced whole on every write.
type Store struct {
	db       *bolt.DB
	validate *validator.Validate
	now      func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketIdentities, bucketMeetings, bucketRedeemed, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}

		return nil
	})
	if err != nil {
		db.Close()

		return nil, err
	}

	return &Store{
		db:       db,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
