package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Log       LogConfig
	Report    ReportConfig
	Telemetry TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// ReportConfig selects the strategies used to compute the report
type ReportConfig struct {
	RevenueStrategy string
	BonusStrategy   string
	Bonus           BonusConfig
}

// BonusConfig holds the bonus rates used by the built-in bonus strategies.
// Rates are fractions of profit.
type BonusConfig struct {
	FirstRate   float64 // rank 0
	PodiumRate  float64 // ranks 1 and 2
	DefaultRate float64 // everyone else
	LastRate    float64 // last place
	FlatRate    float64 // flat_rate strategy
}

// TelemetryConfig holds OpenTelemetry trace export settings
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string // OTLP gRPC endpoint, host:port
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// Load reads configuration from config files and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with SALES_ prefix (e.g., SALES_REPORT_BONUS_STRATEGY)
// 2. The config file at path, or config.toml in the working directory when path is empty
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// Config file not found is OK, we'll use defaults and env vars
		}
	}

	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Report: ReportConfig{
			RevenueStrategy: v.GetString("report.revenue_strategy"),
			BonusStrategy:   v.GetString("report.bonus_strategy"),
			Bonus: BonusConfig{
				FirstRate:   v.GetFloat64("report.bonus.first_rate"),
				PodiumRate:  v.GetFloat64("report.bonus.podium_rate"),
				DefaultRate: v.GetFloat64("report.bonus.default_rate"),
				LastRate:    v.GetFloat64("report.bonus.last_rate"),
				FlatRate:    v.GetFloat64("report.bonus.flat_rate"),
			},
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers built-in values. Zero is a meaningful rate, so
// defaults go through viper instead of being filled in for empty fields.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sales-bonus")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("report.revenue_strategy", "discount")
	v.SetDefault("report.bonus_strategy", "profit_rank")
	v.SetDefault("report.bonus.first_rate", 0.15)
	v.SetDefault("report.bonus.podium_rate", 0.10)
	v.SetDefault("report.bonus.default_rate", 0.05)
	v.SetDefault("report.bonus.last_rate", 0.0)
	v.SetDefault("report.bonus.flat_rate", 0.05)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.collector_endpoint", "localhost:4317")
	v.SetDefault("telemetry.sampling_ratio", 1.0)
	v.SetDefault("telemetry.service_name", "sales-bonus")
	v.SetDefault("telemetry.insecure", true)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console', got '%s'", c.Log.Format)
	}
	if strings.TrimSpace(c.Report.RevenueStrategy) == "" {
		return fmt.Errorf("report.revenue_strategy cannot be empty")
	}
	if strings.TrimSpace(c.Report.BonusStrategy) == "" {
		return fmt.Errorf("report.bonus_strategy cannot be empty")
	}

	rates := []struct {
		key   string
		value float64
	}{
		{"report.bonus.first_rate", c.Report.Bonus.FirstRate},
		{"report.bonus.podium_rate", c.Report.Bonus.PodiumRate},
		{"report.bonus.default_rate", c.Report.Bonus.DefaultRate},
		{"report.bonus.last_rate", c.Report.Bonus.LastRate},
		{"report.bonus.flat_rate", c.Report.Bonus.FlatRate},
	}
	for _, r := range rates {
		if r.value < 0.0 || r.value > 1.0 {
			return fmt.Errorf("%s must be between 0.0 and 1.0, got %f", r.key, r.value)
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	if c.Telemetry.Enabled && c.Telemetry.CollectorEndpoint == "" {
		return fmt.Errorf("telemetry.collector_endpoint is required when telemetry is enabled")
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
