package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	GetActiveByUsername(ctx context.Context, username string) (*AdminUser, error)
	GetByID(ctx context.Context, id string) (*AdminUser, error)
	// IncrementFailedAttempts bumps the failure counter in a single UPDATE
	// and returns the new count, so concurrent attempts never lose updates.
	IncrementFailedAttempts(ctx context.Context, id string) (int, error)
	LockAccount(ctx context.Context, id string, until time.Time) error
	// ClearExpiredLock zeroes the failure counter and drops the lock once
	// its window has passed, so the next miss starts a fresh count instead
	// of re-locking immediately.
	ClearExpiredLock(ctx context.Context, id string) error
	ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error
}
