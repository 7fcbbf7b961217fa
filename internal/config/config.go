package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the process configuration for the lead-capture service. It is
// built once at startup and injected into the components that need it;
// nothing reads the environment after Load returns.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	CORSAllowedOrigins []string

	// Per-IP rate limit on the intake route. Zero disables the limiter.
	RateLimitPerSecond float64
	RateLimitBurst     int

	// Google Sheets sink. The service account is a base64-encoded JSON
	// credential blob; both values are required for lead intake to work.
	GoogleServiceAccount string
	GoogleSheetID        string
	SheetAppendRange     string

	// Source tag written for rows that arrive without one.
	LeadSource string

	// Optional studio notification email. Empty NotifyEmail disables it.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	NotifyEmail       string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins:   splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),
		RateLimitPerSecond:   getEnvAsFloat("RATE_LIMIT_PER_SECOND", 1),
		RateLimitBurst:       getEnvAsInt("RATE_LIMIT_BURST", 5),
		GoogleServiceAccount: getEnv("GOOGLE_SERVICE_ACCOUNT", ""),
		GoogleSheetID:        getEnv("GOOGLE_SHEET_ID", ""),
		SheetAppendRange:     getEnv("SHEET_APPEND_RANGE", "Leads!A1"),
		LeadSource:           getEnv("LEAD_SOURCE", "Website"),
		SendGridAPIKey:       getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail:    getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:     getEnv("SENDGRID_FROM_NAME", "Laxportraits Studio"),
		NotifyEmail:          getEnv("NOTIFY_EMAIL", ""),
	}
}

// Validate reports whether the sink configuration is complete. A failing
// config does not stop the server; lead intake fails closed per request
// instead, so the rest of the site keeps working.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.GoogleServiceAccount) == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT")
	}
	if strings.TrimSpace(c.GoogleSheetID) == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required values: %s", strings.Join(missing, ", "))
	}
	if c.NotifyEmail != "" && c.SendGridAPIKey == "" {
		return errors.New("config: NOTIFY_EMAIL is set but SENDGRID_API_KEY is empty")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
