package model

import "time"

// AdminUser is an account allowed to use the admin API.
// Accounts are created by the seed command and never deleted by the server.
type AdminUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// AdminSession records a token issuance. It is kept for audit only and is
// not consulted when a token is verified.
type AdminSession struct {
	ID           int64
	UserID       int64
	SessionToken string
	ExpiresAt    time.Time
	IPAddress    string
	UserAgent    string
	CreatedAt    time.Time
}
