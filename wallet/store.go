package wallet

import "sync"

// Store persists the address of the connected wallet for the lifetime of a session.
type Store interface {
	// LoadAddress returns the saved address, or "" when there is none.
	LoadAddress() (string, error)
	SaveAddress(address string) error
	ClearAddress() error
}

var _ Store = &MemoryStore{}

// MemoryStore keeps the address for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	address string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadAddress() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.address, nil
}

func (m *MemoryStore) SaveAddress(address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.address = address

	return nil
}

func (m *MemoryStore) ClearAddress() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.address = ""

	return nil
}
