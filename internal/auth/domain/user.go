package domain

import "time"

type AdminUser struct {
	ID                  string
	Username            string
	Email               string
	PasswordHash        string
	Role                string
	IsActive            bool
	FailedLoginAttempts int
	AccountLockedUntil  *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Locked reports whether the account's lockout window is still open at t.
func (u *AdminUser) Locked(t time.Time) bool {
	return u.AccountLockedUntil != nil && t.Before(*u.AccountLockedUntil)
}
