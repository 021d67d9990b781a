// Package config loads service configuration from a YAML file with
// environment-variable overrides for scalar fields.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/mwe/pkg/mwe/internalerr"
)

// Language describes one language's dictionary sources.
type Language struct {
	Code       string `yaml:"code"`
	Dictionary string `yaml:"dictionary"`
	Overrides  string `yaml:"overrides"`
}

// Config is the full service configuration.
type Config struct {
	ListenAddr          string     `yaml:"listen_addr"`
	APIPrefix           string     `yaml:"api_prefix"`
	CORSOrigins         []string   `yaml:"cors_origins"`
	MaxExpressionLength int        `yaml:"max_expression_length"`
	DefaultLanguage     string     `yaml:"default_language"`
	Languages           []Language `yaml:"languages"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:          ":8080",
		APIPrefix:           "/api/v1",
		CORSOrigins:         []string{"*"},
		MaxExpressionLength: 10,
		DefaultLanguage:     "portuguese",
	}
}

// Load reads a YAML configuration file, fills unset fields with defaults
// and applies environment overrides. An empty path or a missing file
// yields the defaults; malformed YAML is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.fillDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.ListenAddr == "" {
		c.ListenAddr = def.ListenAddr
	}
	if c.APIPrefix == "" {
		c.APIPrefix = def.APIPrefix
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = def.CORSOrigins
	}
	if c.MaxExpressionLength <= 0 {
		c.MaxExpressionLength = def.MaxExpressionLength
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = def.DefaultLanguage
	}
}

// applyEnv overrides scalar fields from the environment:
// MWE_LISTEN_ADDR, MWE_API_PREFIX, MWE_CORS_ORIGINS (comma-separated),
// MWE_MAX_LENGTH, MWE_DEFAULT_LANGUAGE.
func (c *Config) applyEnv() {
	if v := os.Getenv("MWE_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("MWE_API_PREFIX"); v != "" {
		c.APIPrefix = v
	}
	if v := os.Getenv("MWE_CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitCSV(v)
	}
	if v := os.Getenv("MWE_MAX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxExpressionLength = n
		}
	}
	if v := os.Getenv("MWE_DEFAULT_LANGUAGE"); v != "" {
		c.DefaultLanguage = v
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
