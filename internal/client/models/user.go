// Package models defines the data exchanged with the metrics backend.
package models

// User identifies the authenticated principal.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// Name is optional and omitted by the backend when unset.
	Name string `json:"name,omitempty"`
}

// DisplayName returns Name, falling back to Email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// AuthResponse is the session payload returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
