package domain

//go:generate mockgen -destination=../../mocks/mock_attack_repository.go -package=mocks github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/domain AttackRepository

import (
	"context"
	"time"
)

type AttackRepository interface {
	TotalAttacks(ctx context.Context) (int64, error)
	UniqueAttackers(ctx context.Context) (int64, error)
	AttacksSince(ctx context.Context, since time.Time) (int64, error)
	CountBySeverity(ctx context.Context, severity string) (int64, error)
	RecentAttacks(ctx context.Context, limit int) ([]AttackRecord, error)
	TopCountries(ctx context.Context, limit int) ([]CountryCount, error)
}
