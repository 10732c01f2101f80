package dto

import "time"

type Statistics struct {
	TotalAttacks    int64  `json:"total_attacks"`
	UniqueAttackers int64  `json:"unique_attackers"`
	AttacksToday    int64  `json:"attacks_today"`
	CriticalAttacks int64  `json:"critical_attacks"`
	SystemUptime    string `json:"system_uptime"`
	ThreatLevel     string `json:"threat_level"`
}

type AttackOutput struct {
	ID          string    `json:"id"`
	SourceIP    string    `json:"source_ip"`
	AttackType  string    `json:"attack_type"`
	Severity    string    `json:"severity"`
	TargetPort  int       `json:"target_port"`
	Timestamp   time.Time `json:"timestamp"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code"`
}

type CountryOutput struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Count       int64  `json:"count"`
}

type DashboardResponse struct {
	Statistics     Statistics      `json:"statistics"`
	RecentAttacks  []AttackOutput  `json:"recent_attacks"`
	GeographicData []CountryOutput `json:"geographic_data"`
	Timestamp      time.Time       `json:"timestamp"`
}
