package models

// CredentialsRequest is the body of /register, /login and /delete-user.
type CredentialsRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// SaveDataRequest is the body of /save-data.
type SaveDataRequest struct {
	Identity    string `json:"identity"`
	WorkingData string `json:"workingData"`
}

// UserPayload is the account view returned by a successful login.
type UserPayload struct {
	Identity    string `json:"identity"`
	WorkingData string `json:"workingData"`
}

// MessageResponse is the success body of every route except /login.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the success body of /login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
