package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.ServerURL == "" {
		t.Error("expected server_url to be set")
	}
	if cfg.GetDealCount() != 4 {
		t.Errorf("expected default deal_count 4, got %d", cfg.GetDealCount())
	}
	if cfg.GetDefaultView() != "deck" {
		t.Errorf("expected default view deck, got %s", cfg.GetDefaultView())
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := &Config{Timeout: "30s"}
	if d := cfg.TimeoutDuration(); d != 30*time.Second {
		t.Errorf("expected 30s, got %v", d)
	}

	cfg.Timeout = "invalid"
	if d := cfg.TimeoutDuration(); d != 15*time.Second {
		t.Errorf("expected 15s default for invalid timeout, got %v", d)
	}
}

func TestRetentionDuration(t *testing.T) {
	tests := []struct {
		input    string
		wantDays int
	}{
		{"90d", 90},
		{"30d", 30},
		{"720h", 30},
		{"", 90},        // default
		{"invalid", 90}, // fallback to default
	}
	for _, tt := range tests {
		cfg := &Config{Retention: tt.input}
		got := cfg.RetentionDuration()
		wantHours := float64(tt.wantDays * 24)
		if got.Hours() != wantHours {
			t.Errorf("RetentionDuration(%q) = %v, want %dd", tt.input, got, tt.wantDays)
		}
	}
}

func TestGetDealCountDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDealCount(); got != 4 {
		t.Errorf("expected default deal count 4, got %d", got)
	}
}

func TestGetDealCountCustom(t *testing.T) {
	cfg := &Config{DealCount: 8}
	if got := cfg.GetDealCount(); got != 8 {
		t.Errorf("expected deal count 8, got %d", got)
	}
}

func TestAgentDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.AgentInputType(); got != "article" {
		t.Errorf("expected default input type article, got %s", got)
	}
	if got := cfg.AgentMaxResults(); got != 5 {
		t.Errorf("expected default max results 5, got %d", got)
	}
}

func TestAgentCustom(t *testing.T) {
	cfg := &Config{Agent: &AgentConfig{InputType: "podcast", MaxResults: 7}}
	if got := cfg.AgentInputType(); got != "podcast" {
		t.Errorf("expected podcast, got %s", got)
	}
	if got := cfg.AgentMaxResults(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestServerEnvOverride(t *testing.T) {
	cfg := &Config{ServerURL: "http://localhost:8000"}
	t.Setenv("READRABBIT_SERVER", "https://readrabbit.example.com")
	if got := cfg.Server(); got != "https://readrabbit.example.com" {
		t.Errorf("expected env override, got %s", got)
	}

	t.Setenv("READRABBIT_SERVER", "")
	if got := cfg.Server(); got != "http://localhost:8000" {
		t.Errorf("expected config value, got %s", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `server_url: http://backend.local:9000
deal_count: 6
default_view: list
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL != "http://backend.local:9000" {
		t.Errorf("expected custom server_url, got %s", cfg.ServerURL)
	}
	if cfg.DealCount != 6 {
		t.Errorf("expected deal_count 6, got %d", cfg.DealCount)
	}
	if cfg.DefaultView != "list" {
		t.Errorf("expected default_view list, got %s", cfg.DefaultView)
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerURL == "" {
		t.Error("expected default server_url when config doesn't exist")
	}
}

func TestValidateBadScheme(t *testing.T) {
	cfg := &Config{ServerURL: "file:///etc/passwd"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for file:// server_url")
	}
}

func TestValidateBadView(t *testing.T) {
	cfg := &Config{DefaultView: "grid"}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestValidateBadInputType(t *testing.T) {
	cfg := &Config{Agent: &AgentConfig{InputType: "video"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown input type")
	}
}

func TestValidateAcceptsHTTPS(t *testing.T) {
	cfg := &Config{ServerURL: "https://readrabbit.example.com"}
	if err := validate(cfg); err != nil {
		t.Errorf("unexpected error for https server_url: %v", err)
	}
}
