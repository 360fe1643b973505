package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the per-user settings file: which currencies and stocks the
// report tracks, and the cashback policy. A missing file yields defaults.
type Settings struct {
	UserCurrencies []string `yaml:"user_currencies"`
	UserStocks     []string `yaml:"user_stocks"`
	Cashback       Cashback `yaml:"cashback"`
}

// Cashback selects the per-card cashback policy: "supplied" sums the
// cashback carried on records (falling back to the flat rate for cards
// without any), "flat" always applies RateBps to total spend.
type Cashback struct {
	Policy  string `yaml:"policy"`
	RateBps int64  `yaml:"rate_bps"`
}

// DefaultSettings tracks the majors the original report shipped with.
func DefaultSettings() Settings {
	return Settings{
		UserCurrencies: []string{"USD", "EUR"},
		UserStocks:     []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"},
		Cashback:       Cashback{Policy: "supplied", RateBps: 100},
	}
}

// LoadSettings reads the YAML settings file. A missing file is not an
// error; defaults apply. Unset fields are filled from the defaults too.
func LoadSettings(path string) (Settings, error) {
	defaults := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings file: %w", err)
	}

	if s.UserCurrencies == nil {
		s.UserCurrencies = defaults.UserCurrencies
	}
	if s.UserStocks == nil {
		s.UserStocks = defaults.UserStocks
	}
	if s.Cashback.Policy == "" {
		s.Cashback.Policy = defaults.Cashback.Policy
	}
	if s.Cashback.RateBps == 0 {
		s.Cashback.RateBps = defaults.Cashback.RateBps
	}

	if s.Cashback.Policy != "supplied" && s.Cashback.Policy != "flat" {
		return Settings{}, fmt.Errorf("invalid cashback policy %q: must be 'supplied' or 'flat'", s.Cashback.Policy)
	}
	return s, nil
}
