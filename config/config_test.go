package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded and dates parsed.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("BASE_CURRENCY")
	_ = os.Unsetenv("CUTOFF_DATE")
	_ = os.Unsetenv("SYNTHETIC_START_DATE")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Telemetry.BaseCurrency != "ILS" {
		t.Fatalf("expected default BASE_CURRENCY=ILS, got %q", AppConfig.Telemetry.BaseCurrency)
	}
	wantCutoff := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	if !AppConfig.Telemetry.CutoffDate.Equal(wantCutoff) {
		t.Fatalf("unexpected default cutoff: %v", AppConfig.Telemetry.CutoffDate)
	}
	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !AppConfig.Telemetry.SyntheticStart.Equal(wantStart) {
		t.Fatalf("unexpected default synthetic start: %v", AppConfig.Telemetry.SyntheticStart)
	}
}

// TestLoadConfig_EnvOverride verifies environment variables take precedence
// over defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BASE_CURRENCY", "USD")
	t.Setenv("CUTOFF_DATE", "2025-01-31")
	t.Setenv("SYNTHETIC_START_DATE", "2023-06-01")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("expected SERVER_PORT override, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Telemetry.BaseCurrency != "USD" {
		t.Fatalf("expected BASE_CURRENCY override, got %q", AppConfig.Telemetry.BaseCurrency)
	}
	if got := AppConfig.Telemetry.CutoffDate.Format("2006-01-02"); got != "2025-01-31" {
		t.Fatalf("expected cutoff override, got %s", got)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}

// TestMustDate_Fatal asserts the process exits when a date variable is malformed.
func TestMustDate_Fatal(t *testing.T) {
	if os.Getenv("RUN_DATE_FATAL") == "1" {
		LoadConfig()
		t.Fatalf("LoadConfig should have exited on malformed date")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestMustDate_Fatal")
	cmd.Env = append(os.Environ(), "RUN_DATE_FATAL=1", "CUTOFF_DATE=not-a-date")
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
