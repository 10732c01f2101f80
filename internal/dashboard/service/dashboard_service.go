package service

import (
	"context"
	"fmt"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/domain"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/dto"
	"github.com/darshakkanani/Honeypot-Setup-sub001/pkg/constant"
)

// Aggregator produces a full dashboard snapshot.
type Aggregator interface {
	Snapshot(ctx context.Context) (*dto.DashboardResponse, error)
}

// CountryResolver maps a source IP to a country name and ISO code. Used to
// backfill recent attacks whose stored geolocation join came back empty.
type CountryResolver interface {
	Country(ip string) (name string, code string, err error)
}

type DashboardService struct {
	repo      domain.AttackRepository
	resolver  CountryResolver
	startedAt time.Time
}

func NewDashboardService(repo domain.AttackRepository, resolver CountryResolver, startedAt time.Time) *DashboardService {
	return &DashboardService{
		repo:      repo,
		resolver:  resolver,
		startedAt: startedAt,
	}
}

func (s *DashboardService) Snapshot(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	total, err := s.repo.TotalAttacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count attacks: %w", err)
	}

	attackers, err := s.repo.UniqueAttackers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count attackers: %w", err)
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.AttacksSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's attacks: %w", err)
	}

	critical, err := s.repo.CountBySeverity(ctx, constant.SeverityCritical)
	if err != nil {
		return nil, fmt.Errorf("failed to count critical attacks: %w", err)
	}

	recent, err := s.repo.RecentAttacks(ctx, constant.RecentAttackLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attacks: %w", err)
	}

	countries, err := s.repo.TopCountries(ctx, constant.TopCountryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top countries: %w", err)
	}

	return &dto.DashboardResponse{
		Statistics: dto.Statistics{
			TotalAttacks:    total,
			UniqueAttackers: attackers,
			AttacksToday:    today,
			CriticalAttacks: critical,
			SystemUptime:    formatUptime(now.Sub(s.startedAt)),
			ThreatLevel:     ThreatLevel(today),
		},
		RecentAttacks:  s.toAttackOutputs(recent),
		GeographicData: toCountryOutputs(countries),
		Timestamp:      now,
	}, nil
}

// ThreatLevel derives the console's headline level from the number of
// attacks seen since the start of the current day.
func ThreatLevel(attacksToday int64) string {
	switch {
	case attacksToday >= constant.ThreatCriticalThreshold:
		return constant.ThreatLevelCritical
	case attacksToday >= constant.ThreatHighThreshold:
		return constant.ThreatLevelHigh
	case attacksToday >= constant.ThreatMediumThreshold:
		return constant.ThreatLevelMedium
	default:
		return constant.ThreatLevelLow
	}
}

func (s *DashboardService) toAttackOutputs(records []domain.AttackRecord) []dto.AttackOutput {
	out := make([]dto.AttackOutput, 0, len(records))
	for _, rec := range records {
		if rec.Country == "" && s.resolver != nil {
			if name, code, err := s.resolver.Country(rec.SourceIP); err == nil {
				rec.Country = name
				rec.CountryCode = code
			}
		}
		out = append(out, dto.AttackOutput{
			ID:          rec.ID,
			SourceIP:    rec.SourceIP,
			AttackType:  rec.AttackType,
			Severity:    rec.Severity,
			TargetPort:  rec.TargetPort,
			Timestamp:   rec.Timestamp,
			Country:     rec.Country,
			CountryCode: rec.CountryCode,
		})
	}

	return out
}

func toCountryOutputs(counts []domain.CountryCount) []dto.CountryOutput {
	out := make([]dto.CountryOutput, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CountryOutput{
			Country:     c.Country,
			CountryCode: c.CountryCode,
			Count:       c.Count,
		})
	}

	return out
}

func formatUptime(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
