package domain

import "time"

// AttackRecord is an intrusion event captured by the sensor engine,
// joined with whatever geolocation the enrichment pipeline stored for
// its source address. The console only ever reads these.
type AttackRecord struct {
	ID          string
	SourceIP    string
	AttackType  string
	Severity    string
	TargetPort  int
	Timestamp   time.Time
	Country     string
	CountryCode string
}

type CountryCount struct {
	Country     string
	CountryCode string
	Count       int64
}
