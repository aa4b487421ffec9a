// Package models defines the request payloads the console sends to the DMA
// backend. Field names follow the backend's JSON contract exactly.
package models

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
