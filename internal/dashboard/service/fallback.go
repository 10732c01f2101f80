package service

import (
	"context"
	"log"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/dto"
)

// FallbackService wraps an Aggregator and degrades to a fixed synthetic
// payload when the live aggregation fails. The dashboard is a display
// surface: availability wins over correctness here, so the failure is
// logged and swallowed rather than surfaced to the caller.
type FallbackService struct {
	primary Aggregator
}

func NewFallbackService(primary Aggregator) *FallbackService {
	return &FallbackService{primary: primary}
}

func (s *FallbackService) Snapshot(ctx context.Context) (*dto.DashboardResponse, error) {
	resp, err := s.primary.Snapshot(ctx)
	if err != nil {
		log.Printf("dashboard aggregation unavailable, serving fallback data: %v", err)
		return fallbackSnapshot(time.Now()), nil
	}

	return resp, nil
}

// fallbackSnapshot returns the canned demo payload. The timestamp is the
// call time; everything else is fixed so the substitution is recognizable.
func fallbackSnapshot(now time.Time) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Statistics: dto.Statistics{
			TotalAttacks:    1247,
			UniqueAttackers: 89,
			AttacksToday:    156,
			CriticalAttacks: 23,
			SystemUptime:    "99.9%",
			ThreatLevel:     ThreatLevel(156),
		},
		RecentAttacks: []dto.AttackOutput{
			{
				ID:          "demo-1",
				SourceIP:    "203.0.113.42",
				AttackType:  "SSH_BRUTE_FORCE",
				Severity:    "HIGH",
				TargetPort:  22,
				Timestamp:   now.Add(-5 * time.Minute),
				Country:     "China",
				CountryCode: "CN",
			},
			{
				ID:          "demo-2",
				SourceIP:    "198.51.100.17",
				AttackType:  "SQL_INJECTION",
				Severity:    "CRITICAL",
				TargetPort:  80,
				Timestamp:   now.Add(-12 * time.Minute),
				Country:     "Russia",
				CountryCode: "RU",
			},
			{
				ID:          "demo-3",
				SourceIP:    "192.0.2.201",
				AttackType:  "PORT_SCAN",
				Severity:    "MEDIUM",
				TargetPort:  443,
				Timestamp:   now.Add(-27 * time.Minute),
				Country:     "United States",
				CountryCode: "US",
			},
		},
		GeographicData: []dto.CountryOutput{
			{Country: "China", CountryCode: "CN", Count: 412},
			{Country: "Russia", CountryCode: "RU", Count: 287},
			{Country: "United States", CountryCode: "US", Count: 163},
			{Country: "Brazil", CountryCode: "BR", Count: 98},
			{Country: "India", CountryCode: "IN", Count: 74},
		},
		Timestamp: now,
	}
}
