package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a local .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	BASE_CURRENCY=ILS
//	CUTOFF_DATE=2025-07-15
//	SYNTHETIC_START_DATE=2024-01-01
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Telemetry TelemetryConfig // Repository generation and normalization settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// TelemetryConfig bounds and normalizes the generated fleet data.
//
// Fields:
//   - BaseCurrency: currency every cross-station financial sum is
//     normalized into before aggregation.
//   - CutoffDate: latest calendar date any generated record may carry;
//     models "current simulated time".
//   - SyntheticStart: first date of synthetically generated series.
type TelemetryConfig struct {
	BaseCurrency   string
	CutoffDate     time.Time
	SyntheticStart time.Time
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig() and read everywhere else.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file, if present.
//  3. Environment variables.
//
// Fatal exit: validateConfig() terminates the process when a required value
// is missing or a date cannot be parsed.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BASE_CURRENCY", "ILS")
	viper.SetDefault("CUTOFF_DATE", "2025-07-15")
	viper.SetDefault("SYNTHETIC_START_DATE", "2024-01-01")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Telemetry: TelemetryConfig{
			BaseCurrency:   viper.GetString("BASE_CURRENCY"),
			CutoffDate:     mustDate("CUTOFF_DATE"),
			SyntheticStart: mustDate("SYNTHETIC_START_DATE"),
		},
	}

	validateConfig()
}

// mustDate parses a YYYY-MM-DD viper key, terminating on malformed input.
func mustDate(key string) time.Time {
	raw := viper.GetString(key)
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Fatalf("invalid %s %q: expected YYYY-MM-DD", key, raw)
	}
	return d.UTC()
}

// validateConfig ensures required variables are present and coherent, and
// terminates the application if they are not.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Telemetry.BaseCurrency == "" {
		missing = append(missing, "BASE_CURRENCY")
	}
	if AppConfig.Telemetry.CutoffDate.IsZero() {
		missing = append(missing, "CUTOFF_DATE")
	}
	if AppConfig.Telemetry.SyntheticStart.IsZero() {
		missing = append(missing, "SYNTHETIC_START_DATE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}

	if AppConfig.Telemetry.SyntheticStart.After(AppConfig.Telemetry.CutoffDate) {
		log.Fatalf("SYNTHETIC_START_DATE %s is after CUTOFF_DATE %s",
			AppConfig.Telemetry.SyntheticStart.Format("2006-01-02"),
			AppConfig.Telemetry.CutoffDate.Format("2006-01-02"))
	}
}
