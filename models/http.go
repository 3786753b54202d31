package models

// RegisterRequest is the payload of the account registration endpoint.
type RegisterRequest struct {
	// Email is the address the account is registered under.
	// It is canonicalized to lowercase before any lookup or insert.
	Email string `json:"email"`

	// Password is the plaintext password to be hashed.
	// Must be at least 6 characters; never stored or logged as-is.
	Password string `json:"password"`

	// Name is an optional display name.
	// When empty, the local part of the email is used instead.
	Name string `json:"name,omitempty"`
}

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	// Email is the address the account was registered under, in any casing.
	Email string `json:"email"`

	// Password is the plaintext password to verify against the stored hash.
	Password string `json:"password"`
}
