package models

import "time"

// Session is the client-local view of the signed-in user, persisted as one
// composite record so that its fields always change together.
//
// Active implies Identity is non-empty. WorkingData may be ahead of the
// server copy while edits are pending a push.
type Session struct {
	Active      bool
	Identity    string
	WorkingData string
	// Token is the bearer token issued by the last successful login.
	Token     string
	UpdatedAt time.Time
}

// Valid reports whether the session satisfies the active-implies-identity
// invariant.
func (s Session) Valid() bool {
	return !s.Active || s.Identity != ""
}
