package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	JWTSecret          string
	TokenExpiryHours   int
	LockoutMaxAttempts int
	LockoutDurationMin int
	GeoIPDBPath        string
}

// Load reads configuration from the environment. JWT_SECRET and DB_URL are
// required: a missing signing secret must abort startup rather than fall
// back to a guessable default.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		TokenExpiryHours:   getEnvAsInt("TOKEN_EXPIRY_HOURS", 24),
		LockoutMaxAttempts: getEnvAsInt("LOCKOUT_MAX_ATTEMPTS", 5),
		LockoutDurationMin: getEnvAsInt("LOCKOUT_DURATION_MIN", 15),
		GeoIPDBPath:        getEnv("GEOIP_DB_PATH", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
