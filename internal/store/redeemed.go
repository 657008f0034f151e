package store

import (
	"fmt"
	"slices"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// MarkRedeemed remembers that buyer redeemed receiptID. Marking twice is a no-op.
func (s *Store) MarkRedeemed(buyer string, receiptID uint64) error {
	buyer = strings.TrimSpace(buyer)
	if buyer == "" {
		return fmt.Errorf("buyer is required")
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRedeemed)

		ids := loadRedeemed(b, buyer)
		if slices.Contains(ids, receiptID) {
			return nil
		}
		ids = append(ids, receiptID)
		slices.Sort(ids)
		slices.Reverse(ids)

		data, err := encode(ids)
		if err != nil {
			return fmt.Errorf("failed to encode redeemed receipts: %w", err)
		}

		return b.Put([]byte(buyer), data)
	})
}

// RedeemedReceipts returns the receipts buyer redeemed, highest id first.
func (s *Store) RedeemedReceipts(buyer string) ([]uint64, error) {
	out := []uint64{}
	buyer = strings.TrimSpace(buyer)
	if buyer == "" {
		return out, nil
	}

	err := s.db.View(func(tx *bolt.Tx) error {
		if ids := loadRedeemed(tx.Bucket(bucketRedeemed), buyer); ids != nil {
			out = ids
		}

		return nil
	})

	return out, err
}

func (s *Store) IsRedeemed(buyer string, receiptID uint64) bool {
	ids, err := s.RedeemedReceipts(buyer)
	if err != nil {
		return false
	}

	return slices.Contains(ids, receiptID)
}

func loadRedeemed(b *bolt.Bucket, buyer string) []uint64 {
	data := b.Get([]byte(buyer))
	if data == nil {
		return nil
	}
	var ids []uint64
	if err := decode(data, &ids); err != nil {
		return nil
	}

	return ids
}
