package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.LanguageCode != "en" {
		t.Fatalf("unexpected default language: %q", cfg.LanguageCode)
	}
	if cfg.ComplaintIDPrefix != "CYB" {
		t.Fatalf("unexpected default prefix: %q", cfg.ComplaintIDPrefix)
	}
	if cfg.TerminalIntent != "SubmitComplaint" || cfg.IntentKeyword != "complaint" {
		t.Fatalf("unexpected intent defaults: %q / %q", cfg.TerminalIntent, cfg.IntentKeyword)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Fatalf("unexpected default timeout: %d", cfg.TimeoutSeconds)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DIALOGFLOW_PROJECT_ID", "demo-project")
	t.Setenv("NLU_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("PORT override ignored: %q", cfg.Port)
	}
	if cfg.DialogflowProjectID != "demo-project" {
		t.Fatalf("project override ignored: %q", cfg.DialogflowProjectID)
	}
	if cfg.Timeout().Seconds() != 5 {
		t.Fatalf("timeout override ignored: %v", cfg.Timeout())
	}
}

func TestAddrNormalization(t *testing.T) {
	cases := []struct {
		port    string
		want    string
		wantErr bool
	}{
		{port: "8080", want: ":8080"},
		{port: "", want: ":8080"},
		{port: ":9090", want: ":9090"},
		{port: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{port: "80 80", wantErr: true},
	}

	for _, tc := range cases {
		cfg := &Config{Port: tc.port}
		got, err := cfg.Addr()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("port %q: expected error", tc.port)
			}
			continue
		}
		if err != nil {
			t.Fatalf("port %q: unexpected error %v", tc.port, err)
		}
		if got != tc.want {
			t.Fatalf("port %q: got %q want %q", tc.port, got, tc.want)
		}
	}
}

func TestCredentialsJSONPrefersInline(t *testing.T) {
	cfg := &Config{
		GoogleCredentialsJSON: `{"type":"service_account"}`,
		GoogleCredentialsFile: "does-not-exist.json",
	}

	data, err := cfg.CredentialsJSON()
	if err != nil {
		t.Fatalf("CredentialsJSON err: %v", err)
	}
	if string(data) != `{"type":"service_account"}` {
		t.Fatalf("inline credentials not used: %s", data)
	}
}

func TestCredentialsJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account","project_id":"p"}`), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	cfg := &Config{GoogleCredentialsFile: path}
	data, err := cfg.CredentialsJSON()
	if err != nil {
		t.Fatalf("CredentialsJSON err: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected file contents")
	}

	cfg = &Config{GoogleCredentialsFile: filepath.Join(t.TempDir(), "missing.json")}
	if _, err := cfg.CredentialsJSON(); err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}
