// Package wallet tracks which signing provider address, if any, the user has connected.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hourvault/hourvault/sdk"
	sdkerrors "github.com/hourvault/hourvault/sdk/errors"
)

var ErrConnectInProgress = errors.New("a connect request is already in progress")

type Option func(*Session)

// WithLogger sets the logger used when a call's context carries none.
func WithLogger(lggr sdk.Logger) Option {
	return func(s *Session) {
		s.lggr = lggr
	}
}

// Session is the wallet connection state machine. It starts in StateUnknown and moves between
// states only through CheckAvailability, Connect and Disconnect.
//
// A Session is safe for concurrent use. Observers are called outside the session lock, in
// subscription order, with the snapshot produced by the transition.
type Session struct {
	signer sdk.Signer
	store  Store
	lggr   sdk.Logger

	mu         sync.Mutex
	state      State
	address    string
	connecting bool
	lastErr    string

	subs   map[int]func(Snapshot)
	nextID int
}

func NewSession(signer sdk.Signer, store Store, opts ...Option) *Session {
	s := &Session{
		signer: signer,
		store:  store,
		subs:   map[int]func(Snapshot){},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) logger(ctx context.Context) sdk.Logger {
	if _, ok := ctx.Value(sdk.ContextLoggerValue).(sdk.Logger); !ok && s.lggr != nil {
		return s.lggr
	}

	return sdk.LoggerFrom(ctx)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) State() State {
	return s.Snapshot().State
}

// Address returns the connected address, or "" when not connected.
func (s *Session) Address() string {
	snap := s.Snapshot()
	if !snap.Connected() {
		return ""
	}

	return snap.Address
}

// RequireAddress returns the connected address or a *WalletNotConnectedError.
func (s *Session) RequireAddress() (string, error) {
	addr := s.Address()
	if addr == "" {
		return "", sdkerrors.NewWalletNotConnectedError()
	}

	return addr, nil
}

// Subscribe registers fn for state changes and returns a function that removes it.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// CheckAvailability detects the signing provider and restores a saved connection. A saved
// address is kept only if the provider still reports the same address; otherwise it is cleared.
// If the stale address cannot be cleared from the store, the in-memory state is left as it was
// and the failure is reported in LastError.
func (s *Session) CheckAvailability(ctx context.Context) Snapshot {
	lggr := s.logger(ctx)

	available, err := s.signer.IsAvailable(ctx)
	if err != nil {
		lggr.Warnf("wallet availability check failed: %v", err)
		available = false
	}
	if !available {
		return s.transition(func() {
			s.state = StateUnavailable
			s.address = ""
		})
	}

	saved, err := s.store.LoadAddress()
	if err != nil {
		lggr.Warnf("failed to load saved wallet address: %v", err)
		saved = ""
	}
	if saved == "" {
		return s.transition(func() {
			s.state = StateAvailableDisconnected
			s.address = ""
		})
	}

	current, err := s.signer.GetAddress(ctx)
	if err == nil && current == saved {
		lggr.Infof("wallet session restored for %s", saved)

		return s.transition(func() {
			s.state = StateConnected
			s.address = saved
		})
	}
	if err != nil {
		lggr.Warnf("failed to read wallet address, clearing saved session: %v", err)
	} else {
		lggr.Infof("wallet address changed from %s, clearing saved session", saved)
	}

	return s.transition(func() {
		if clearErr := s.store.ClearAddress(); clearErr != nil {
			lggr.Errorf("failed to clear saved wallet address: %v", clearErr)
			s.lastErr = fmt.Sprintf("failed to clear wallet session: %v", clearErr)

			return
		}
		s.state = StateAvailableDisconnected
		s.address = ""
	})
}

// Connect asks the provider for the user's address and persists it.
//
// It fails with *WalletUnavailableError when no provider is detected. When the provider
// refuses, the session stays in its prior state and the error is returned.
func (s *Session) Connect(ctx context.Context) (string, error) {
	if s.State() == StateUnknown {
		s.CheckAvailability(ctx)
	}

	s.mu.Lock()
	switch {
	case s.state == StateUnavailable:
		s.lastErr = sdkerrors.NewWalletUnavailableError().Error()
		s.mu.Unlock()

		return "", sdkerrors.NewWalletUnavailableError()
	case s.connecting:
		s.mu.Unlock()

		return "", ErrConnectInProgress
	}
	s.connecting = true
	s.lastErr = ""
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()
	notify(subs, snap)

	address, err := s.signer.GetAddress(ctx)
	if err == nil && address == "" {
		err = errors.New("wallet returned an empty address")
	}
	if err != nil {
		s.transition(func() {
			s.connecting = false
			s.lastErr = err.Error()
		})

		return "", fmt.Errorf("failed to connect wallet: %w", err)
	}

	var saveErr error
	s.transition(func() {
		s.connecting = false
		if saveErr = s.store.SaveAddress(address); saveErr != nil {
			s.lastErr = saveErr.Error()

			return
		}
		s.state = StateConnected
		s.address = address
	})
	if saveErr != nil {
		return "", fmt.Errorf("failed to persist wallet session: %w", saveErr)
	}
	s.logger(ctx).Infof("wallet connected: %s", address)

	return address, nil
}

// Disconnect forgets the connected address.
func (s *Session) Disconnect(ctx context.Context) error {
	var clearErr error
	s.transition(func() {
		if clearErr = s.store.ClearAddress(); clearErr != nil {
			return
		}
		s.address = ""
		s.lastErr = ""
		if s.state != StateUnavailable {
			s.state = StateAvailableDisconnected
		}
	})
	if clearErr != nil {
		return fmt.Errorf("failed to clear wallet session: %w", clearErr)
	}
	s.logger(ctx).Infof("wallet disconnected")

	return nil
}

// transition applies fn under the lock, then notifies subscribers with the resulting snapshot.
func (s *Session) transition(fn func()) Snapshot {
	s.mu.Lock()
	fn()
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)

	return snap
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:      s.state,
		Address:    s.address,
		Connecting: s.connecting,
		LastError:  s.lastErr,
	}
}

func (s *Session) subscribersLocked() []func(Snapshot) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.subs[id])
	}

	return out
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
