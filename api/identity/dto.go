// Package identity exposes agent registration and login over HTTP.
package identity

// AuthRequest represents a credentials payload for register and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents an authenticated agent and its access token.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Solved   int    `json:"solved"`
	Token    string `json:"token"`
}
