// Package config loads service configuration from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ContactsModeHTTP = "http"
	ContactsModeSES  = "ses"
	ContactsModeMock = "mock"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	AWS      AWSConfig      `mapstructure:"aws"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Wizard   WizardConfig   `mapstructure:"wizard"`
	Contacts ContactsConfig `mapstructure:"contacts"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint           string `mapstructure:"endpoint"`
	QuotesTable        string `mapstructure:"quotes_table"`
	ConsultationsTable string `mapstructure:"consultations_table"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type WizardConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// ContactsConfig selects where consultation requests are handed off.
type ContactsConfig struct {
	Mode      string        `mapstructure:"mode"`
	Endpoint  string        `mapstructure:"endpoint"`
	Token     string        `mapstructure:"token"`
	Timeout   time.Duration `mapstructure:"timeout"`
	FromEmail string        `mapstructure:"from_email"`
	ToEmail   string        `mapstructure:"to_email"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type PricingConfig struct {
	RangeBand float64 `mapstructure:"range_band"`
}

// env names that do not follow the SECTION_KEY convention.
var envAliases = map[string]string{
	"aws.access_key_id":            "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":        "AWS_SECRET_ACCESS_KEY",
	"dynamodb.quotes_table":        "QUOTES_TABLE",
	"dynamodb.consultations_table": "CONSULTATIONS_TABLE",
	"wizard.session_ttl":           "WIZARD_SESSION_TTL",
	"pricing.range_band":           "PRICING_RANGE_BAND",
	"catalog.path":                 "CATALOG_PATH",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.quotes_table", "quotes")
	v.SetDefault("dynamodb.consultations_table", "consultations")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("wizard.session_ttl", "30m")
	v.SetDefault("contacts.mode", ContactsModeMock)
	v.SetDefault("contacts.endpoint", "")
	v.SetDefault("contacts.token", "")
	v.SetDefault("contacts.timeout", "10s")
	v.SetDefault("contacts.from_email", "")
	v.SetDefault("contacts.to_email", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("pricing.range_band", 0.15)
}

// Load builds the configuration. path may point at a YAML file; when empty,
// config.yaml is looked up in ./configs and the working directory and is
// optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Contacts.Mode = strings.ToLower(strings.TrimSpace(cfg.Contacts.Mode))

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port <= 0 {
		return fmt.Errorf("http.port must be positive")
	}
	if cfg.Wizard.SessionTTL <= 0 {
		return fmt.Errorf("wizard.session_ttl must be positive")
	}
	if cfg.Pricing.RangeBand < 0 || cfg.Pricing.RangeBand >= 1 {
		return fmt.Errorf("pricing.range_band must be in [0, 1)")
	}
	switch cfg.Contacts.Mode {
	case ContactsModeMock:
	case ContactsModeHTTP:
		if cfg.Contacts.Endpoint == "" {
			return fmt.Errorf("contacts.endpoint is required in http mode")
		}
	case ContactsModeSES:
		if cfg.Contacts.FromEmail == "" || cfg.Contacts.ToEmail == "" {
			return fmt.Errorf("contacts.from_email and contacts.to_email are required in ses mode")
		}
	default:
		return fmt.Errorf("unknown contacts.mode %q", cfg.Contacts.Mode)
	}
	return nil
}
