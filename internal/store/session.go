package store

import (
	bolt "go.etcd.io/bbolt"

	"github.com/hourvault/hourvault/wallet"
)

var keySessionAddress = []byte("address")

var _ wallet.Store = &SessionStore{}

// SessionStore persists the connected wallet address between CLI invocations.
type SessionStore struct {
	s *Store
}

func (s *Store) Session() *SessionStore {
	return &SessionStore{s: s}
}

func (ss *SessionStore) LoadAddress() (string, error) {
	var address string
	err := ss.s.db.View(func(tx *bolt.Tx) error {
		address = string(tx.Bucket(bucketSession).Get(keySessionAddress))

		return nil
	})

	return address, err
}

func (ss *SessionStore) SaveAddress(address string) error {
	return ss.s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keySessionAddress, []byte(address))
	})
}

func (ss *SessionStore) ClearAddress() error {
	return ss.s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keySessionAddress)
	})
}
