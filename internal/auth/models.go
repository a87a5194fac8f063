// Package auth implements the credential and session subsystem on top of
// the collection factory: local user accounts, role assignments, and the
// single active session with lazy expiry.
package auth

import "github.com/magangjo/backoffice/internal/store"

// Role values assigned via LocalUserRole records.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// LocalUser is a credential record. Email uniqueness (case-insensitive)
// is enforced at sign-up time only.
type LocalUser struct {
	store.Meta
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FullName     string `json:"full_name"`
	AvatarURL    string `json:"avatar_url"`
}

// LocalUserRole assigns a role to a user. Multiple records may exist for
// one user; the first match is authoritative.
type LocalUserRole struct {
	store.Meta
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// PublicUser is a credential record with the password hash stripped.
// This is the only user shape that ever leaves the subsystem.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Public strips the password hash from a credential record.
func (u *LocalUser) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Session is the single active session record, held under one reserved
// key outside the generic collections. A session past ExpiresAt is
// treated as absent and deleted on the next read.
type Session struct {
	User        PublicUser `json:"user"`
	AccessToken string     `json:"access_token"`
	ExpiresAt   int64      `json:"expires_at"` // epoch milliseconds
}
