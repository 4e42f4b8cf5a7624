package models

// SyncState is a state of the client session state machine.
type SyncState int

const (
	StateCold SyncState = iota
	StateRestoring
	StateUnauthenticated
	StateAuthenticating
	StateAuthenticated
	StateSyncingOut
	StateDeleting
)

var syncStateNames = map[SyncState]string{
	StateCold:            "COLD",
	StateRestoring:       "RESTORING",
	StateUnauthenticated: "UNAUTHENTICATED",
	StateAuthenticating:  "AUTHENTICATING",
	StateAuthenticated:   "AUTHENTICATED",
	StateSyncingOut:      "SYNCING_OUT",
	StateDeleting:        "DELETING",
}

func (s SyncState) String() string {
	if name, ok := syncStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// InFlight reports whether the state represents an operation that is still
// running and must not be interleaved with another trigger.
func (s SyncState) InFlight() bool {
	switch s {
	case StateCold, StateRestoring, StateAuthenticating, StateSyncingOut, StateDeleting:
		return true
	}
	return false
}

// SyncSnapshot is a read-only copy of the coordinator state handed to the UI.
type SyncSnapshot struct {
	State       SyncState
	Identity    string
	WorkingData string

	// Stale is set when the session was resumed from the local cache without
	// a server round-trip. Cleared by the next successful login or push.
	Stale bool

	// SyncFailed is set after a push failed. The cached working data is still
	// pending and the user may retry or discard.
	SyncFailed bool

	// LastError is the error of the most recent failed operation, if any.
	LastError error
}
