package models

import "time"

// Account is the server-side record of a registered user, keyed by Identity.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// Identity is the unique account key (an email address), case-sensitive
	// as supplied. It doubles as the primary key of the accounts table.
	Identity string `json:"identity"`

	// CredentialHash is the encoded salted hash of the account secret.
	// Never serialized.
	CredentialHash string `json:"-"`

	// WorkingData is the opaque blob the user reads and writes after
	// authentication. Empty at registration.
	WorkingData string `json:"workingData"`

	// CreatedAt is assigned by the store on creation.
	CreatedAt time.Time `json:"-"`

	// LastUpdate is set by every successful save. Nil until the first save.
	LastUpdate *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
