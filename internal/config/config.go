// Package config loads and validates fraudlens configuration from YAML
// files with environment variable overrides.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/zero-day-ai/fraudlens/internal/export"
	"github.com/zero-day-ai/fraudlens/internal/fraud"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// envPrefix namespaces environment overrides, e.g. FRAUDLENS_LOG_LEVEL.
const envPrefix = "FRAUDLENS"

// configKeys lists every key in the configuration tree. Viper's Unmarshal
// does not consult AutomaticEnv for keys it has never seen, so each key is
// bound explicitly before decoding to make env-only overrides take effect.
var configKeys = []string{
	"log_level",
	"thresholds.large_amount",
	"thresholds.critical_amount",
	"thresholds.laundering_amount",
	"thresholds.rapid_window",
	"thresholds.min_rapid_transfers",
	"thresholds.rapid_total_amount",
	"thresholds.min_shared_users",
	"thresholds.high_avg_risk",
	"thresholds.takeover_report_score",
	"thresholds.takeover_critical_score",
	"thresholds.offshore_bank",
	"thresholds.high_risk_user_score",
	"thresholds.network_high_score",
	"thresholds.network_critical_score",
	"neo4j.uri",
	"neo4j.username",
	"neo4j.password",
	"neo4j.database",
	"neo4j.pool_size",
	"neo4j.connection_timeout",
	"tracing.enabled",
	"tracing.endpoint",
	"tracing.insecure",
}

// Config is the top-level configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`

	// Thresholds tunes the detection engine.
	Thresholds fraud.Thresholds `yaml:"thresholds" json:"thresholds" mapstructure:"thresholds"`

	// Neo4j configures the optional graph export target.
	Neo4j export.Config `yaml:"neo4j" json:"neo4j" mapstructure:"neo4j"`

	// Tracing configures OpenTelemetry span export.
	Tracing TracingConfig `yaml:"tracing" json:"tracing" mapstructure:"tracing"`
}

// TracingConfig controls span export. Disabled means a no-op tracer with
// zero overhead.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" json:"endpoint" mapstructure:"endpoint"`
	Insecure bool   `yaml:"insecure" json:"insecure" mapstructure:"insecure"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Thresholds: fraud.DefaultThresholds(),
		Neo4j:      export.DefaultConfig(),
		Tracing: TracingConfig{
			Enabled:  false,
			Endpoint: "localhost:4317",
			Insecure: true,
		},
	}
}

// Load reads configuration from the given YAML file, layered over the
// defaults, with FRAUDLENS_* environment variables taking precedence.
// An empty path loads defaults plus environment only.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to bind environment variable", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to read config file", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, types.WrapError(types.CONFIG_PARSE_FAILED, "failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the whole configuration tree. Export settings are only
// validated when something will use them, so detection-only runs do not
// require Neo4j credentials.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return types.NewErrorf(types.CONFIG_VALIDATION_FAILED, "invalid log level %q", c.LogLevel)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return types.WrapError(types.CONFIG_VALIDATION_FAILED, "invalid thresholds", err)
	}
	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "tracing enabled without an endpoint")
	}
	return nil
}
