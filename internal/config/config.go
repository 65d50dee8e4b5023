// Package config loads the application configuration from an optional YAML
// file with environment-variable overrides. Precedence is defaults, then
// file, then environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pvaidya/recheck/internal/llm"
)

// Config is the top-level application configuration.
type Config struct {
	// DBPath overrides the default local store location.
	DBPath string `yaml:"db_path"`

	Gateway   GatewayConfig   `yaml:"gateway"`
	Queue     QueueConfig     `yaml:"queue"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	LLM       LLMConfig       `yaml:"llm"`
}

// GatewayConfig configures the classification gateway. When URL is set the
// workers call a remote gateway; otherwise classification runs in-process.
type GatewayConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// QueueConfig tunes the analysis workers.
type QueueConfig struct {
	BatchSize            int `yaml:"batch_size"`
	MaxAttempts          int `yaml:"max_attempts"`
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds"`
}

// ReconcileConfig configures the push to the central reporting store.
type ReconcileConfig struct {
	ReportingURL   string `yaml:"reporting_url"`
	Schedule       string `yaml:"schedule"`
	BatchSize      int    `yaml:"batch_size"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LLMConfig mirrors the llm package configuration in YAML form.
type LLMConfig struct {
	Provider        string `yaml:"provider"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	OpenAIModel     string `yaml:"openai_model"`
	OpenAIBaseURL   string `yaml:"openai_base_url"`
	GeminiAPIKey    string `yaml:"gemini_api_key"`
	GeminiModel     string `yaml:"gemini_model"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gateway: GatewayConfig{
			ListenAddr:     ":8791",
			TimeoutSeconds: 60,
		},
		Queue: QueueConfig{
			BatchSize:            8,
			MaxAttempts:          3,
			SweepIntervalSeconds: 60,
		},
		Reconcile: ReconcileConfig{
			Schedule:       "*/15 * * * *",
			BatchSize:      100,
			TimeoutSeconds: 30,
		},
	}
}

// DefaultPath returns the config file location: $RECHECK_CONFIG if set,
// otherwise ~/.config/recheck/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("RECHECK_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "recheck", "config.yaml")
}

// Load reads the configuration. An explicit path must exist; the default
// path is optional. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults plus env apply.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envOverride(&cfg.DBPath, "RECHECK_DB")
	envOverride(&cfg.Gateway.ListenAddr, "RECHECK_LISTEN_ADDR")
	envOverride(&cfg.Gateway.URL, "RECHECK_GATEWAY_URL")
	envOverrideInt(&cfg.Queue.BatchSize, "RECHECK_QUEUE_BATCH_SIZE")
	envOverrideInt(&cfg.Queue.MaxAttempts, "RECHECK_QUEUE_MAX_ATTEMPTS")
	envOverride(&cfg.Reconcile.ReportingURL, "RECHECK_REPORTING_URL")
	envOverride(&cfg.Reconcile.Schedule, "RECHECK_SYNC_SCHEDULE")
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

// LLMConfig resolves the provider configuration: llm defaults, then the
// YAML llm section, then RECHECK_* environment variables.
func (c Config) LLMConfig() llm.Config {
	out := llm.DefaultConfig()

	if c.LLM.Provider != "" {
		out.Provider = c.LLM.Provider
	}
	if c.LLM.AnthropicAPIKey != "" {
		out.Anthropic.APIKey = c.LLM.AnthropicAPIKey
	}
	if c.LLM.AnthropicModel != "" {
		out.Anthropic.Model = c.LLM.AnthropicModel
	}
	if c.LLM.OpenAIAPIKey != "" {
		out.OpenAI.APIKey = c.LLM.OpenAIAPIKey
	}
	if c.LLM.OpenAIModel != "" {
		out.OpenAI.Model = c.LLM.OpenAIModel
	}
	if c.LLM.OpenAIBaseURL != "" {
		out.OpenAI.BaseURL = c.LLM.OpenAIBaseURL
	}
	if c.LLM.GeminiAPIKey != "" {
		out.Gemini.APIKey = c.LLM.GeminiAPIKey
	}
	if c.LLM.GeminiModel != "" {
		out.Gemini.Model = c.LLM.GeminiModel
	}

	return llm.ApplyEnv(out)
}

// GatewayTimeout returns the gateway client timeout as a duration.
func (c Config) GatewayTimeout() time.Duration {
	return time.Duration(c.Gateway.TimeoutSeconds) * time.Second
}

// ReportingTimeout returns the reporting client timeout as a duration.
func (c Config) ReportingTimeout() time.Duration {
	return time.Duration(c.Reconcile.TimeoutSeconds) * time.Second
}

// SweepInterval returns the queue recovery sweep interval as a duration.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.Queue.SweepIntervalSeconds) * time.Second
}
