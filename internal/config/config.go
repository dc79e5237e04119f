package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin     int `toml:"login_rate_limit_allowed_per_min"`
	AssistantRateLimitAllowedPerMin int `toml:"assistant_rate_limit_allowed_per_min"`

	QuotesCsvPath string `toml:"quotes_csv_path"`

	// Timezone is the fixed IANA zone used for bucketing workout
	// logs into calendar days, regardless of the server host zone.
	Timezone string `toml:"timezone"`

	// AssistantModels is the ordered fallback chain of language models
	// tried by the assistant, first to last.
	AssistantModels    []string `toml:"assistant_models"`
	TranscriptionModel string   `toml:"transcription_model"`
	SuggestionsTTLMins int      `toml:"suggestions_ttl_mins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func Load(env string, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode toml config file %s: %w", path, err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Berlin"
	}
	if len(cfg.AssistantModels) == 0 {
		cfg.AssistantModels = []string{"gpt-4o-mini", "gpt-4o", "gpt-3.5-turbo"}
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = "whisper-1"
	}
	if cfg.SuggestionsTTLMins <= 0 {
		cfg.SuggestionsTTLMins = 30
	}
	if cfg.LoginRateLimitAllowedPerMin <= 0 {
		cfg.LoginRateLimitAllowedPerMin = 15
	}
	if cfg.AssistantRateLimitAllowedPerMin <= 0 {
		cfg.AssistantRateLimitAllowedPerMin = 30
	}
	if cfg.QuotesCsvPath == "" {
		cfg.QuotesCsvPath = "./assets/quotes.csv"
	}

	return cfg, nil
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development == nil {
			return nil, fmt.Errorf("development config section missing")
		}
		t.Development.Environment = "development"
		return t.Development, nil
	case "prod", "production":
		if t.Production == nil {
			return nil, fmt.Errorf("production config section missing")
		}
		t.Production.Environment = "production"
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}
