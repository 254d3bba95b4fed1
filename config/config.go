// Package config reads the optional YAML configuration of networth.
//
// Every setting has a default, so a missing configuration file is not an
// error. Command line flags override what the file says.
//
//	browser: firefox
//	summaryAccounts: [Checking, Savings]
//	graphAccounts: [Checking, BTC]
//	redact: false
//	redactMap:
//	  Checking: Bank
//	rounding: cents
//	minAssetWorth: 10
//	palette: ~/.Xresources
//	colours: [0, 7, 1, 2, 3]
//	dateYearDigits: 2
//	dateMonthDigit: false
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/robinvdvleuten/networth/report"
)

// FileName is the name of the configuration file inside the user config
// directory.
const FileName = "networth.yaml"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config holds every setting of the summary and graph commands.
type Config struct {
	// Browser is the program the rendered graph is opened with. Empty uses
	// the platform's default handler.
	Browser string `yaml:"browser"`
	// GraphAccounts lists the accounts and assets to draw.
	GraphAccounts []string `yaml:"graphAccounts,omitempty" validate:"dive,required"`
	// SummaryAccounts restricts and orders the account listing of the summary.
	SummaryAccounts []string `yaml:"summaryAccounts,omitempty" validate:"dive,required"`
	// Redact hides absolute valuations.
	Redact bool `yaml:"redact"`
	// RedactMap renames accounts in the summary.
	RedactMap map[string]string `yaml:"redactMap,omitempty"`
	// Rounding is one of the report.Rounding* modes.
	Rounding string `yaml:"rounding" validate:"oneof=none whole cents"`
	// MinAssetWorth hides holdings worth less than this.
	MinAssetWorth float64 `yaml:"minAssetWorth" validate:"min=0"`
	// Palette is a file to read graph colours from.
	Palette string `yaml:"palette,omitempty"`
	// Colours are the palette lines used for background, foreground and
	// the series, in that order.
	Colours []int `yaml:"colours,omitempty" validate:"dive,min=0"`
	// DateYearDigits is how many digits of the year graph labels show.
	DateYearDigits int `yaml:"dateYearDigits" validate:"min=0,max=4"`
	// DateMonthDigit shows months as numbers instead of names.
	DateMonthDigit bool `yaml:"dateMonthDigit"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Browser:        "firefox",
		Rounding:       report.RoundingCents,
		DateYearDigits: 4,
	}
}

// DefaultPath returns the configuration file in the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "networth", FileName)
}

// Read reads and validates filename. Settings missing from the file keep
// their default.
func Read(filename string) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	decoder := yaml.NewDecoder(strings.NewReader(string(buf)))
	decoder.KnownFields(true) // Disallow unknown fields
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't decode YAML from configuration file '%s': %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration file '%s': %w", filename, err)
	}
	return cfg, nil
}

// Load is like Read but returns the defaults when filename does not exist.
func Load(filename string) (*Config, error) {
	cfg, err := Read(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks every setting.
func (cfg *Config) Validate() error {
	return validate.Struct(cfg)
}

// Write serialises the configuration to filename, creating its directory.
func (cfg *Config) Write(filename string) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	return os.WriteFile(filename, buf, 0644)
}
