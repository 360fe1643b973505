package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	want := DefaultSettings()
	if len(s.UserCurrencies) != len(want.UserCurrencies) || s.UserCurrencies[0] != "USD" {
		t.Errorf("UserCurrencies = %v", s.UserCurrencies)
	}
	if s.Cashback.Policy != "supplied" || s.Cashback.RateBps != 100 {
		t.Errorf("Cashback = %+v", s.Cashback)
	}
}

func TestLoadSettings_FullFile(t *testing.T) {
	path := writeSettings(t, `
user_currencies: [GBP]
user_stocks: [NVDA]
cashback:
  policy: flat
  rate_bps: 250
`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if len(s.UserCurrencies) != 1 || s.UserCurrencies[0] != "GBP" {
		t.Errorf("UserCurrencies = %v", s.UserCurrencies)
	}
	if len(s.UserStocks) != 1 || s.UserStocks[0] != "NVDA" {
		t.Errorf("UserStocks = %v", s.UserStocks)
	}
	if s.Cashback.Policy != "flat" || s.Cashback.RateBps != 250 {
		t.Errorf("Cashback = %+v", s.Cashback)
	}
}

func TestLoadSettings_PartialFileFillsDefaults(t *testing.T) {
	path := writeSettings(t, "user_currencies: [CHF]\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if len(s.UserCurrencies) != 1 || s.UserCurrencies[0] != "CHF" {
		t.Errorf("UserCurrencies = %v", s.UserCurrencies)
	}
	if len(s.UserStocks) == 0 {
		t.Error("UserStocks should fall back to defaults")
	}
	if s.Cashback.Policy != "supplied" {
		t.Errorf("Cashback.Policy = %q, want supplied", s.Cashback.Policy)
	}
}

func TestLoadSettings_InvalidPolicy(t *testing.T) {
	path := writeSettings(t, "cashback:\n  policy: generous\n")

	if _, err := LoadSettings(path); err == nil {
		t.Error("unknown cashback policy should be an error")
	}
}

func TestLoadSettings_MalformedYAML(t *testing.T) {
	path := writeSettings(t, "user_currencies: [unclosed\n")

	if _, err := LoadSettings(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}
