package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

type MeetingRole string

const (
	RoleSeller MeetingRole = "seller"
	RoleBuyer  MeetingRole = "buyer"
)

// Meeting records a purchase of hours from the point of view of one participant.
type Meeting struct {
	ID          string      `json:"id"`
	ReceiptID   string      `json:"receiptId"`
	Seller      string      `json:"seller"`
	Buyer       string      `json:"buyer"`
	Hours       uint32      `json:"hours"`
	Description string      `json:"description,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	Role        MeetingRole `json:"role"`
}

type MeetingInput struct {
	ReceiptID   string `validate:"required"`
	Seller      string `validate:"required"`
	Buyer       string `validate:"required"`
	Hours       uint32
	Description string
	// Timestamp defaults to now.
	Timestamp time.Time
}

// RecordMeeting stores the meeting once for the seller and once for the buyer. An existing
// record for the same receipt and role is replaced.
func (s *Store) RecordMeeting(input MeetingInput) (seller, buyer Meeting, err error) {
	input.Seller = strings.TrimSpace(input.Seller)
	input.Buyer = strings.TrimSpace(input.Buyer)
	if err = s.validate.Struct(input); err != nil {
		return Meeting{}, Meeting{}, fmt.Errorf("invalid meeting: %w", err)
	}
	if input.Timestamp.IsZero() {
		input.Timestamp = s.now()
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMeetings)

		var upsertErr error
		if seller, upsertErr = upsertMeeting(b, input.Seller, RoleSeller, input); upsertErr != nil {
			return upsertErr
		}
		buyer, upsertErr = upsertMeeting(b, input.Buyer, RoleBuyer, input)

		return upsertErr
	})

	return seller, buyer, err
}

func upsertMeeting(b *bolt.Bucket, address string, role MeetingRole, input MeetingInput) (Meeting, error) {
	record := Meeting{
		ID:          uuid.NewString(),
		ReceiptID:   input.ReceiptID,
		Seller:      input.Seller,
		Buyer:       input.Buyer,
		Hours:       input.Hours,
		Description: input.Description,
		Timestamp:   input.Timestamp,
		Role:        role,
	}

	existing := loadMeetings(b, address)
	next := make([]Meeting, 0, len(existing)+1)
	next = append(next, record)
	for _, m := range existing {
		if m.ReceiptID == record.ReceiptID && m.Role == role {
			continue
		}
		next = append(next, m)
	}

	data, err := encode(next)
	if err != nil {
		return Meeting{}, fmt.Errorf("failed to encode meetings: %w", err)
	}
	if err = b.Put([]byte(address), data); err != nil {
		return Meeting{}, fmt.Errorf("failed to store meetings: %w", err)
	}

	return record, nil
}

// loadMeetings returns the records of address. A corrupt value reads as empty.
func loadMeetings(b *bolt.Bucket, address string) []Meeting {
	data := b.Get([]byte(address))
	if data == nil {
		return nil
	}
	var out []Meeting
	if err := decode(data, &out); err != nil {
		return nil
	}

	return out
}

// MeetingsFor returns the meetings of address, newest first.
func (s *Store) MeetingsFor(address string) ([]Meeting, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return []Meeting{}, nil
	}

	var out []Meeting
	err := s.db.View(func(tx *bolt.Tx) error {
		out = loadMeetings(tx.Bucket(bucketMeetings), address)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Meeting{}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}
