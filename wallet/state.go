package wallet

// State is the connection state of a wallet session.
type State int

const (
	// StateUnknown is the state before the first availability check.
	StateUnknown State = iota
	// StateUnavailable means no signing provider is installed or reachable.
	StateUnavailable
	StateAvailableDisconnected
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateUnavailable:
		return "unavailable"
	case StateAvailableDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	default:
		return "invalid"
	}
}

// Snapshot is the observable state of a session at one point in time.
type Snapshot struct {
	State      State
	Address    string
	Connecting bool
	// LastError is the message of the most recent failed connect attempt, if any.
	LastError string
}

// Available reports whether a signing provider was detected.
func (s Snapshot) Available() bool {
	return s.State == StateAvailableDisconnected || s.State == StateConnected
}

func (s Snapshot) Connected() bool {
	return s.State == StateConnected && s.Address != ""
}
