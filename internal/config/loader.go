package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "GENAPP"

// newViper builds a pre-configured Viper instance with the service's standard
// settings: YAML file type, GENAPP_ env prefix, automatic env binding, and a
// key replacer that maps "." → "_" so that nested keys like "database.host"
// resolve to "GENAPP_DATABASE_HOST".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeys(v)
	return v
}

// envKeys lists every configuration key recognised by the service.  Viper's
// Unmarshal only considers keys it already knows about, so each key must be
// bound explicitly for GENAPP_* environment overrides to take effect.
var envKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.shutdown_timeout",
	"database.host", "database.port", "database.user", "database.password",
	"database.db_name", "database.ssl_mode", "database.max_conns",
	"database.min_conns", "database.conn_max_lifetime", "database.migration_path",
	"redis.addr", "redis.password", "redis.db", "redis.dial_timeout",
	"redis.read_timeout", "redis.write_timeout", "redis.key_prefix",
	"kafka.brokers", "kafka.batch_timeout", "kafka.write_timeout", "kafka.max_retries",
	"minio.endpoint", "minio.access_key", "minio.secret_key", "minio.bucket",
	"minio.use_ssl", "minio.presign_expiry",
	"holiday.feed_url", "holiday.division", "holiday.cache_ttl", "holiday.fetch_timeout",
	"notify.base_url", "notify.api_key", "notify.timeout",
	"deadline.response_window_days", "deadline.end_of_business_hour",
	"deadline.judicial_order_days",
	"log.level", "log.format", "log.output_paths",
}

func bindEnvKeys(v *viper.Viper) {
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}
}

// Load reads the YAML file at configPath, merges any GENAPP_* environment
// variable overrides, applies service defaults for unset fields, and
// validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from GENAPP_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  Intended for
// hot-reloading non-critical settings such as log level; callers are
// responsible for applying only the safe subset of changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// A changed file that fails to parse or validate does not trigger onChange.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; callers should call Load first for error reporting.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// Intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
