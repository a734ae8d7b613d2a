// Package config loads application configuration from file and environment
// and owns the global logger setup.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Ingest  IngestConfig  `yaml:"ingest" mapstructure:"ingest"`
	Scorer  ScorerConfig  `yaml:"scorer" mapstructure:"scorer"`
	Geocode GeocodeConfig `yaml:"geocode" mapstructure:"geocode"`
	Chat    ChatConfig    `yaml:"chat" mapstructure:"chat"`
	Jobs    JobsConfig    `yaml:"jobs" mapstructure:"jobs"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// IngestConfig configures dataset ingestion.
//
// The source behavior for contacts with no contact_score column is a
// pseudo-random default in [1,100]. That non-determinism is deliberate but
// debatable, so it sits behind ContactScoreDefault: "random" reproduces the
// source behavior (seeded by Seed), "fixed" assigns FixedContactScore to
// every missing value instead.
type IngestConfig struct {
	ContactScoreDefault string `yaml:"contact_score_default" mapstructure:"contact_score_default"` // "random" or "fixed"
	FixedContactScore   int    `yaml:"fixed_contact_score" mapstructure:"fixed_contact_score"`
	Seed                uint64 `yaml:"seed" mapstructure:"seed"` // 0 = non-deterministic seed
}

// ScorerConfig holds the sales-fit scoring weights and thresholds.
type ScorerConfig struct {
	// Company size points.
	SizeIdealMin      int `yaml:"size_ideal_min" mapstructure:"size_ideal_min"`
	SizeIdealMax      int `yaml:"size_ideal_max" mapstructure:"size_ideal_max"`
	SizeIdealPoints   int `yaml:"size_ideal_points" mapstructure:"size_ideal_points"`
	SizeNearMin       int `yaml:"size_near_min" mapstructure:"size_near_min"`
	SizeNearMax       int `yaml:"size_near_max" mapstructure:"size_near_max"`
	SizeNearPoints    int `yaml:"size_near_points" mapstructure:"size_near_points"`
	SizeOutlierPoints int `yaml:"size_outlier_points" mapstructure:"size_outlier_points"`

	// Per-contact decision-maker points (uncapped before the final clamp).
	DecisionMakerPoints int `yaml:"decision_maker_points" mapstructure:"decision_maker_points"`

	// Email completeness points, scaled by the fraction of contacts with email.
	EmailCompletenessPoints int `yaml:"email_completeness_points" mapstructure:"email_completeness_points"`

	// Industry affinity: case-insensitive substring keywords.
	IndustryKeywords []string `yaml:"industry_keywords" mapstructure:"industry_keywords"`
	IndustryPoints   int      `yaml:"industry_points" mapstructure:"industry_points"`

	// Geography: exact country matches.
	GeographyCountries []string `yaml:"geography_countries" mapstructure:"geography_countries"`
	GeographyPoints    int      `yaml:"geography_points" mapstructure:"geography_points"`

	// MaxScore caps the composite score.
	MaxScore int `yaml:"max_score" mapstructure:"max_score"`

	// Priority classification thresholds, evaluated High then Medium.
	HighMinScore            int `yaml:"high_min_score" mapstructure:"high_min_score"`
	HighMinDecisionMakers   int `yaml:"high_min_decision_makers" mapstructure:"high_min_decision_makers"`
	MediumMinScore          int `yaml:"medium_min_score" mapstructure:"medium_min_score"`
	MediumMinDecisionMakers int `yaml:"medium_min_decision_makers" mapstructure:"medium_min_decision_makers"`
}

// GeocodeConfig configures the geocoding collaborator.
type GeocodeConfig struct {
	Key     string  `yaml:"key" mapstructure:"key"`
	BaseURL string  `yaml:"base_url" mapstructure:"base_url"`
	Rate    float64 `yaml:"rate" mapstructure:"rate"` // requests per second
	Burst   int     `yaml:"burst" mapstructure:"burst"`
}

// ChatConfig configures the LLM chat collaborator.
type ChatConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// JobsConfig configures the job-board collaborator.
type JobsConfig struct {
	AppID   string `yaml:"app_id" mapstructure:"app_id"`
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Country string `yaml:"country" mapstructure:"country"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("ingest.contact_score_default", "random")
	v.SetDefault("ingest.fixed_contact_score", 50)
	v.SetDefault("ingest.seed", 0)
	v.SetDefault("scorer.size_ideal_min", 50)
	v.SetDefault("scorer.size_ideal_max", 500)
	v.SetDefault("scorer.size_ideal_points", 30)
	v.SetDefault("scorer.size_near_min", 10)
	v.SetDefault("scorer.size_near_max", 1000)
	v.SetDefault("scorer.size_near_points", 20)
	v.SetDefault("scorer.size_outlier_points", 10)
	v.SetDefault("scorer.decision_maker_points", 15)
	v.SetDefault("scorer.email_completeness_points", 20)
	v.SetDefault("scorer.industry_keywords", []string{
		"technology", "software", "saas", "tech", "digital", "it", "information",
	})
	v.SetDefault("scorer.industry_points", 15)
	v.SetDefault("scorer.geography_countries", []string{"United States", "USA"})
	v.SetDefault("scorer.geography_points", 10)
	v.SetDefault("scorer.max_score", 100)
	v.SetDefault("scorer.high_min_score", 70)
	v.SetDefault("scorer.high_min_decision_makers", 2)
	v.SetDefault("scorer.medium_min_score", 50)
	v.SetDefault("scorer.medium_min_decision_makers", 1)
	v.SetDefault("geocode.base_url", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("geocode.rate", 10)
	v.SetDefault("geocode.burst", 5)
	v.SetDefault("chat.model", "claude-haiku-4-5-20251001")
	v.SetDefault("chat.max_tokens", 1024)
	v.SetDefault("jobs.base_url", "https://api.adzuna.com/v1/api/jobs")
	v.SetDefault("jobs.country", "us")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
