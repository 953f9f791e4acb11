package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Decide/internal/criteria"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

type Config struct {
	Server   ServerConfig      `yaml:"server"`
	Database DatabaseConfig    `yaml:"database"`
	Hermes   HermesConfig      `yaml:"hermes"`
	Criteria []CriterionConfig `yaml:"criteria" validate:"required,min=1,dive"`
	Weights  WeightsConfig     `yaml:"weights"`
	Upload   UploadConfig      `yaml:"upload"`
	Logging  LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port" validate:"min=1,max=65535"`
	MetricsPort        int    `yaml:"metrics_port" validate:"min=1,max=65535"`
	AdminToken         string `yaml:"admin_token"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute" validate:"min=1"`
}

// DatabaseConfig enables evaluation history when URL is set.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// HermesConfig enables evaluation events when URL is set.
type HermesConfig struct {
	URL string `yaml:"url"`
}

type CriterionConfig struct {
	Name     string `yaml:"name" validate:"required"`
	Polarity string `yaml:"polarity" validate:"required"`
}

// WeightsConfig is the rule on raw weight totals. RequiredTotal 0 disables it.
type WeightsConfig struct {
	RequiredTotal float64 `yaml:"required_total" validate:"gte=0"`
	Tolerance     float64 `yaml:"tolerance" validate:"gte=0"`
}

type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" validate:"min=1"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

var validate = validator.New()

// Registry builds the criteria registry from the configured list.
func (c *Config) Registry() (*criteria.Registry, error) {
	list := make([]criteria.Criterion, len(c.Criteria))
	for j, cc := range c.Criteria {
		p, err := criteria.ParsePolarity(cc.Polarity)
		if err != nil {
			return nil, fmt.Errorf("criterion %q: %w", cc.Name, err)
		}
		list[j] = criteria.Criterion{Name: cc.Name, Polarity: p}
	}
	return criteria.New(list...)
}

func (c *Config) WeightPolicy() mcda.WeightPolicy {
	return mcda.WeightPolicy{
		RequiredTotal: c.Weights.RequiredTotal,
		Tolerance:     c.Weights.Tolerance,
	}
}

// LogLevel maps the configured level name to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaults() *Config {
	reg := criteria.Default()
	list := make([]CriterionConfig, reg.Len())
	for j, c := range reg.All() {
		list[j] = CriterionConfig{Name: c.Name, Polarity: string(c.Polarity)}
	}
	policy := mcda.DefaultWeightPolicy()

	return &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Criteria: list,
		Weights: WeightsConfig{
			RequiredTotal: policy.RequiredTotal,
			Tolerance:     policy.Tolerance,
		},
		Upload: UploadConfig{
			MaxBytes: 10 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the criteria list forms a valid registry.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Registry(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DECIDE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("DECIDE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("DECIDE_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("DECIDE_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DECIDE_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("DECIDE_WEIGHT_TOTAL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Weights.RequiredTotal = f
		}
	}
	if v := os.Getenv("DECIDE_WEIGHT_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Weights.Tolerance = f
		}
	}
	if v := os.Getenv("DECIDE_UPLOAD_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Upload.MaxBytes = n
		}
	}
	if v := os.Getenv("DECIDE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("DECIDE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
}
