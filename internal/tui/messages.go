package tui

import (
	"github.com/MKhiriev/go-account-sync/models"
)

// Page names used with NavigateTo.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageEditor   = "editor"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page once the coordinator answered.
type LoginResult struct {
	Identity string
	Snapshot models.SyncSnapshot
	Err      error
}

// RegisterResult is produced by the register page.
type RegisterResult struct {
	Identity string
	Err      error
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	Identity string
}

// SignedOutNotice is delivered to the menu after logout or account deletion.
type SignedOutNotice struct {
	Message string
}

// EditorOpened is delivered to the editor when a session becomes active.
type EditorOpened struct {
	Snapshot models.SyncSnapshot
}

// operation identifies which coordinator trigger produced a snapshotMsg.
type operation int

const (
	opSave operation = iota
	opLogout
	opDiscard
	opReauth
	opDelete
)

// snapshotMsg carries the coordinator outcome of a background trigger.
type snapshotMsg struct {
	op       operation
	snapshot models.SyncSnapshot
	err      error
}

type serverStatusMsg struct {
	message string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
