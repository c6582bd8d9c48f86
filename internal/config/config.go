package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	AlphaVantage struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"alphavantage"`
	News struct {
		Provider string `yaml:"provider"`
	} `yaml:"news"`
	Finnhub struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"finnhub"`
	LLM struct {
		Provider        string `yaml:"provider"`
		OpenAIAPIKey    string `yaml:"openai_api_key"`
		AnthropicAPIKey string `yaml:"anthropic_api_key"`
	} `yaml:"llm"`
	Session struct {
		RedisURL   string        `yaml:"redis_url"`
		CookieName string        `yaml:"cookie_name"`
		TTL        time.Duration `yaml:"ttl"`
	} `yaml:"session"`
	Tracing struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"tracing"`
}

const (
	ProviderOpenAI       = "openai"
	ProviderAnthropic    = "anthropic"
	ProviderAlphaVantage = "alphavantage"
	ProviderFinnhub      = "finnhub"
)

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, v)
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("NEWS_PROVIDER"); v != "" {
		cfg.News.Provider = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.AnthropicAPIKey = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Session.RedisURL = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = ttl
		}
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		cfg.Tracing.Enabled = v == "true"
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if cfg.News.Provider == "" {
		cfg.News.Provider = ProviderAlphaVantage
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = ProviderOpenAI
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session_id"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	switch c.News.Provider {
	case ProviderAlphaVantage, ProviderFinnhub:
	default:
		return fmt.Errorf("unknown news provider %q", c.News.Provider)
	}
	return nil
}

// NewsAPIKey returns the credential for the selected news provider.
func (c *Config) NewsAPIKey() string {
	if c.News.Provider == ProviderFinnhub {
		return c.Finnhub.APIKey
	}
	return c.AlphaVantage.APIKey
}
