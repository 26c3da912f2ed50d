package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		ServerURL: "http://myhost:9090",
		APIToken:  "tok_abc123",
		SellerID:  "v42",
	}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	path := filepath.Join(tmp, ".config", "rutero", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("server_url = %q, want %q", loaded.ServerURL, cfg.ServerURL)
	}
	if loaded.APIToken != cfg.APIToken {
		t.Errorf("api_token = %q, want %q", loaded.APIToken, cfg.APIToken)
	}
	if loaded.SellerID != cfg.SellerID {
		t.Errorf("seller_id = %q, want %q", loaded.SellerID, cfg.SellerID)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.ServerURL != "" || cfg.APIToken != "" || cfg.SellerID != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestGetServerURLFromEnv(t *testing.T) {
	t.Setenv("RUTERO_SERVER_URL", "http://custom:1234")
	t.Setenv("HOME", t.TempDir())

	url := getServerURL()
	if url != "http://custom:1234" {
		t.Errorf("url = %q, want %q", url, "http://custom:1234")
	}
}

func TestGetServerURLDefault(t *testing.T) {
	t.Setenv("RUTERO_SERVER_URL", "")
	t.Setenv("HOME", t.TempDir())

	url := getServerURL()
	if url != "http://localhost:8080" {
		t.Errorf("url = %q, want %q", url, "http://localhost:8080")
	}
}

func TestGetSellerIDFromEnv(t *testing.T) {
	t.Setenv("RUTERO_SELLER_ID", "v7")
	t.Setenv("HOME", t.TempDir())

	if got := getSellerID(); got != "v7" {
		t.Errorf("seller = %q, want v7", got)
	}
}

func TestGetSellerIDFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RUTERO_SELLER_ID", "")

	if err := saveConfig(CLIConfig{SellerID: "v9"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := getSellerID(); got != "v9" {
		t.Errorf("seller = %q, want v9", got)
	}
}

func TestGetAPITokenEmpty(t *testing.T) {
	t.Setenv("RUTERO_API_TOKEN", "")
	t.Setenv("HOME", t.TempDir())

	if got := getAPIToken(); got != "" {
		t.Errorf("token = %q, want empty", got)
	}
}

func TestLogoutClearsCredentials(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := CLIConfig{APIToken: "tok_test", SellerID: "v1", ServerURL: "http://myhost:9090"}
	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := runLogout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.APIToken != "" || loaded.SellerID != "" {
		t.Errorf("credentials not cleared: %+v", loaded)
	}
	// Server URL should be preserved
	if loaded.ServerURL != "http://myhost:9090" {
		t.Errorf("server_url = %q, want preserved after logout", loaded.ServerURL)
	}
}

func TestLogoutWhenNotLoggedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := runLogout(); err != nil {
		t.Fatalf("logout with no config: %v", err)
	}
}
