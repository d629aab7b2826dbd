package models

// LoginResponse is the body returned on a successful admin login.
// The token is also sent in the Authorization response header.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform JSON error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
