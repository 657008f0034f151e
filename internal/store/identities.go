package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Identity is a local nickname for an address.
type Identity struct {
	Address     string    `json:"address"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type IdentityInput struct {
	Name        string `validate:"required,max=64"`
	Description string `validate:"max=280"`
}

// UpsertIdentity creates or replaces the nickname for address, keeping the original creation
// time.
func (s *Store) UpsertIdentity(address string, input IdentityInput) (*Identity, error) {
	address = strings.TrimSpace(address)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid identity: %w", err)
	}

	var identity Identity
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketIdentities)
		now := s.now()

		identity = Identity{
			Address:     address,
			Name:        input.Name,
			Description: input.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		var prev Identity
		if data := b.Get([]byte(address)); data != nil && decode(data, &prev) == nil && !prev.CreatedAt.IsZero() {
			identity.CreatedAt = prev.CreatedAt
		}

		data, err := encode(identity)
		if err != nil {
			return fmt.Errorf("failed to encode identity: %w", err)
		}

		return b.Put([]byte(address), data)
	})
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

func (s *Store) GetIdentity(address string) (*Identity, error) {
	var identity Identity
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketIdentities).Get([]byte(strings.TrimSpace(address)))
		if data == nil {
			return &NotFoundError{Resource: "identity", Key: address}
		}

		return decode(data, &identity)
	})
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// ListIdentities returns all identities ordered by name. Corrupt records are skipped.
func (s *Store) ListIdentities() ([]Identity, error) {
	var out []Identity
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketIdentities).ForEach(func(_, v []byte) error {
			var identity Identity
			if decode(v, &identity) == nil {
				out = append(out, identity)
			}

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	return out, nil
}

// RemoveIdentity deletes the nickname for address. Removing a missing identity is not an error.
func (s *Store) RemoveIdentity(address string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketIdentities).Delete([]byte(strings.TrimSpace(address)))
	})
}

// DisplayName returns the nickname for address, or a shortened address when there is none.
func (s *Store) DisplayName(address string) string {
	if identity, err := s.GetIdentity(address); err == nil && identity.Name != "" {
		return identity.Name
	}

	return ShortAddress(address)
}

// ShortAddress abbreviates a strkey to its first and last four characters.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}

	return address[:4] + "…" + address[len(address)-4:]
}
