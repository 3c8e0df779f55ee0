package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds all process configuration. It is built once at startup
// and passed explicitly to the components that need it.
type Settings struct {
	DatabasePath string

	SecretKey                string
	Algorithm                string
	AccessTokenExpireMinutes int

	Host  string
	Port  int
	Debug bool
}

func Load() Settings {
	return Settings{
		DatabasePath:             getEnv("DATABASE_PATH", "skillconnect.db"),
		SecretKey:                getEnv("SECRET_KEY", "your-secret-key-change-this-in-production"),
		Algorithm:                getEnv("ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 1440),
		Host:                     getEnv("HOST", "0.0.0.0"),
		Port:                     getEnvAsInt("PORT", 8000),
		Debug:                    getEnvAsBool("DEBUG", true),
	}
}

func (s Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s Settings) TokenLifetime() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
