// Package config loads the gateway's environment-driven configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config aggregates every environment knob the gateway reads. The Google
// service-account key may be supplied inline (hosted deployments) or as a
// file path (local development); the inline value wins.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	GoogleCredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON"`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`

	DialogflowProjectID string `env:"DIALOGFLOW_PROJECT_ID"`
	LanguageCode        string `env:"DIALOGFLOW_LANGUAGE_CODE" envDefault:"en"`

	SpreadsheetID string `env:"SPREADSHEET_ID"`
	SheetRange    string `env:"SHEET_RANGE" envDefault:"Sheet1"`

	ComplaintIDPrefix string `env:"COMPLAINT_ID_PREFIX" envDefault:"CYB"`
	TerminalIntent    string `env:"TERMINAL_INTENT" envDefault:"SubmitComplaint"`
	IntentKeyword     string `env:"INTENT_KEYWORD" envDefault:"complaint"`

	TimeoutSeconds int `env:"NLU_TIMEOUT_SECONDS" envDefault:"30"`

	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Addr normalizes PORT into a listen address. Bare ports become ":<port>";
// values already containing a colon (":8080", "127.0.0.1:8080") pass
// through.
func (c *Config) Addr() (string, error) {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.Contains(port, ":") {
		return port, nil
	}
	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}
	return ":" + port, nil
}

// CredentialsJSON returns the raw service-account key.
func (c *Config) CredentialsJSON() ([]byte, error) {
	if v := strings.TrimSpace(c.GoogleCredentialsJSON); v != "" {
		return []byte(v), nil
	}
	data, err := os.ReadFile(c.GoogleCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return data, nil
}

// Timeout bounds every outbound call to the NLU service and record store.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
