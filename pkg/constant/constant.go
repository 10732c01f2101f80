package constant

const (
	RoleAdmin = "admin"

	// Threat level cutoffs applied to the attacks-seen-today count.
	ThreatCriticalThreshold = 100
	ThreatHighThreshold     = 50
	ThreatMediumThreshold   = 20

	ThreatLevelCritical = "CRITICAL"
	ThreatLevelHigh     = "HIGH"
	ThreatLevelMedium   = "MEDIUM"
	ThreatLevelLow      = "LOW"

	SeverityCritical = "CRITICAL"

	RecentAttackLimit = 10
	TopCountryLimit   = 10
)
