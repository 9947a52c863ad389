// Package config loads and validates runtime configuration from the
// environment. Missing values fall back to defaults; invalid values fail
// fast at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the portfolio API.
type Config struct {
	Port              int    // HTTP listen port
	CORSOrigin        string // Access-Control-Allow-Origin value
	ContactRecipient  string // Address contact submissions are logged for
	ValidateResponses bool   // Check responses against the JSON Schema contracts
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              8080,
		CORSOrigin:        "*",
		ContactRecipient:  "anilkumar80459@gmail.com",
		ValidateResponses: true,
	}

	if s := os.Getenv("PORT"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("PORT must be an integer, got %q", s)
		}
		cfg.Port = v
	}

	if s := os.Getenv("CORS_ORIGIN"); s != "" {
		cfg.CORSOrigin = s
	}

	if s := os.Getenv("CONTACT_RECIPIENT"); s != "" {
		cfg.ContactRecipient = s
	}

	if s := os.Getenv("VALIDATE_RESPONSES"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("VALIDATE_RESPONSES must be a boolean, got %q", s)
		}
		cfg.ValidateResponses = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.CORSOrigin == "" {
		return fmt.Errorf("config error: CORS origin must not be empty")
	}
	return nil
}
