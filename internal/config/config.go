package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/futureself/internal/llm"
)

// Config holds all futureself configuration.
type Config struct {
	DBPath   string `toml:"db_path"`
	LogLevel string `toml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `toml:"log_format"`

	Simulation SimulationConfig `toml:"simulation"`
	LLM        LLMSection       `toml:"llm"`
	Archive    ArchiveConfig    `toml:"archive"`
}

type SimulationConfig struct {
	// BaseYear labels the first projection point; 0 means the current year.
	BaseYear int `toml:"base_year"`
}

type LLMSection struct {
	Enabled    bool   `toml:"enabled"`
	LogCalls   bool   `toml:"log_calls"`
	Provider   string `toml:"provider"`
	Endpoint   string `toml:"endpoint"`
	Model      string `toml:"model"`
	APIKeyEnv  string `toml:"api_key_env"`
	TimeoutMs  int    `toml:"timeout_ms"`
	MaxRetries int    `toml:"max_retries"`
}

type ArchiveConfig struct {
	Compress bool `toml:"compress"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	l := llm.DefaultConfig()
	return Config{
		DBPath:    "~/.futureself/futureself.db",
		LogLevel:  "warn",
		LogFormat: "text",
		Simulation: SimulationConfig{
			BaseYear: 2024,
		},
		LLM: LLMSection{
			Enabled:    l.Enabled,
			LogCalls:   l.LogCalls,
			Provider:   string(l.Provider),
			Endpoint:   l.Endpoint,
			Model:      l.Model,
			APIKeyEnv:  l.APIKeyEnv,
			TimeoutMs:  l.TimeoutMs,
			MaxRetries: l.MaxRetries,
		},
		Archive: ArchiveConfig{
			Compress: true,
		},
	}
}

// Load reads config from the standard path, falling back to defaults, then
// applies environment overrides.
func Load() (Config, error) {
	return LoadFrom(configPaths()...)
}

// LoadFrom decodes the first existing file in paths over the defaults.
func LoadFrom(paths ...string) (Config, error) {
	cfg := DefaultConfig()

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	cfg.DBPath = expandHome(cfg.DBPath)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("FUTURESELF_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FUTURESELF_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FUTURESELF_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("FUTURESELF_BASE_YEAR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("FUTURESELF_BASE_YEAR: invalid year %q", v)
		}
		cfg.Simulation.BaseYear = n
	}
	return nil
}

// ResolvedBaseYear returns the configured base year, or the current year when
// it is unset.
func (c Config) ResolvedBaseYear(now time.Time) int {
	if c.Simulation.BaseYear > 0 {
		return c.Simulation.BaseYear
	}
	return now.Year()
}

// LLMConfig converts the [llm] section, then applies FUTURESELF_LLM_* overrides.
func (c Config) LLMConfig() llm.LLMConfig {
	out := llm.DefaultConfig()
	out.Enabled = c.LLM.Enabled
	out.LogCalls = c.LLM.LogCalls
	if c.LLM.Provider != "" {
		out.Provider = llm.Provider(strings.ToLower(c.LLM.Provider))
	}
	if c.LLM.Endpoint != "" {
		out.Endpoint = c.LLM.Endpoint
	}
	if c.LLM.Model != "" {
		out.Model = c.LLM.Model
	}
	if c.LLM.APIKeyEnv != "" {
		out.APIKeyEnv = c.LLM.APIKeyEnv
	}
	if c.LLM.TimeoutMs > 0 {
		out.TimeoutMs = c.LLM.TimeoutMs
	}
	if c.LLM.MaxRetries >= 0 {
		out.MaxRetries = c.LLM.MaxRetries
	}
	llm.ApplyEnv(&out)
	return out
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "futureself", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "futureself", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
