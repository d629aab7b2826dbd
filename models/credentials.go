package models

// Credentials is the admin login request body. The panel has a single
// built-in admin account; there is no user management.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
