// Package config defines all configuration structures for the GenApp-Engine
// service.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the case store.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the holiday-feed cache.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// KafkaConfig holds the decision-event publisher parameters.
type KafkaConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
}

// MinIOConfig holds object-storage parameters for order documents.
type MinIOConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	Bucket        string        `mapstructure:"bucket"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// HolidayConfig holds the bank-holiday feed parameters.
type HolidayConfig struct {
	FeedURL      string        `mapstructure:"feed_url"`
	Division     string        `mapstructure:"division"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// NotifyConfig holds the templated-email gateway client parameters.
type NotifyConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DeadlineConfig holds the deadline-calculation tunables.
type DeadlineConfig struct {
	// ResponseWindowDays is the default number of working days granted for an
	// applicant response when a judge uncloaks an application.
	ResponseWindowDays int `mapstructure:"response_window_days"`

	// EndOfBusinessHour is the hour-of-day (24h clock) that applicant-response
	// deadlines are fixed to.
	EndOfBusinessHour int `mapstructure:"end_of_business_hour"`

	// JudicialOrderDays is the default calendar-day offset for deadlines set
	// by a judicial order.
	JudicialOrderDays int `mapstructure:"judicial_order_days"`
}

// TemplatesConfig carries the notification template identifiers, one per
// decision/role/party-type combination.  Every field must be populated in a
// deployed environment; ValidateTemplates enforces this at startup.
type TemplatesConfig struct {
	WrittenRepsConcurrentApplicant string `mapstructure:"written_reps_concurrent_applicant"`
	WrittenRepsConcurrentRespondent string `mapstructure:"written_reps_concurrent_respondent"`
	WrittenRepsSequentialApplicant string `mapstructure:"written_reps_sequential_applicant"`
	WrittenRepsSequentialRespondent string `mapstructure:"written_reps_sequential_respondent"`
	HearingListedApplicant          string `mapstructure:"hearing_listed_applicant"`
	HearingListedRespondent         string `mapstructure:"hearing_listed_respondent"`
	OrderMadeApplicant              string `mapstructure:"order_made_applicant"`
	OrderMadeRespondent             string `mapstructure:"order_made_respondent"`
	DismissedApplicant              string `mapstructure:"dismissed_applicant"`
	DismissedRespondent             string `mapstructure:"dismissed_respondent"`
	DirectionsApplicant             string `mapstructure:"directions_applicant"`
	DirectionsRespondent            string `mapstructure:"directions_respondent"`
	MoreInfoApplicant               string `mapstructure:"more_info_applicant"`
	MoreInfoRespondent              string `mapstructure:"more_info_respondent"`
	UncloakApplicant                string `mapstructure:"uncloak_applicant"`
	UncloakRespondent               string `mapstructure:"uncloak_respondent"`
	LipApplicant                    string `mapstructure:"lip_applicant"`
	LipRespondent                   string `mapstructure:"lip_respondent"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the service.  Every
// infrastructure component and application service reads its settings from
// the relevant sub-struct.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Holiday   HolidayConfig   `mapstructure:"holiday"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Deadline  DeadlineConfig  `mapstructure:"deadline"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Log       LogConfig       `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the service.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers must contain at least one broker address")
	}

	if c.Holiday.FeedURL == "" {
		return fmt.Errorf("config: holiday.feed_url is required")
	}
	if c.Holiday.Division == "" {
		return fmt.Errorf("config: holiday.division is required")
	}

	if c.Deadline.ResponseWindowDays < 1 {
		return fmt.Errorf("config: deadline.response_window_days must be ≥ 1, got %d", c.Deadline.ResponseWindowDays)
	}
	if c.Deadline.EndOfBusinessHour < 0 || c.Deadline.EndOfBusinessHour > 23 {
		return fmt.Errorf("config: deadline.end_of_business_hour %d is out of range [0, 23]", c.Deadline.EndOfBusinessHour)
	}
	if c.Deadline.JudicialOrderDays < 1 {
		return fmt.Errorf("config: deadline.judicial_order_days must be ≥ 1, got %d", c.Deadline.JudicialOrderDays)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

// ValidateTemplates verifies that every template identifier is populated.
// Kept separate from Validate so that offline tooling (deadline computation,
// dry-run planning against a local snapshot) can run without a full template
// registry configured.
func (c *Config) ValidateTemplates() error {
	checks := []struct {
		key, value string
	}{
		{"written_reps_concurrent_applicant", c.Templates.WrittenRepsConcurrentApplicant},
		{"written_reps_concurrent_respondent", c.Templates.WrittenRepsConcurrentRespondent},
		{"written_reps_sequential_applicant", c.Templates.WrittenRepsSequentialApplicant},
		{"written_reps_sequential_respondent", c.Templates.WrittenRepsSequentialRespondent},
		{"hearing_listed_applicant", c.Templates.HearingListedApplicant},
		{"hearing_listed_respondent", c.Templates.HearingListedRespondent},
		{"order_made_applicant", c.Templates.OrderMadeApplicant},
		{"order_made_respondent", c.Templates.OrderMadeRespondent},
		{"dismissed_applicant", c.Templates.DismissedApplicant},
		{"dismissed_respondent", c.Templates.DismissedRespondent},
		{"directions_applicant", c.Templates.DirectionsApplicant},
		{"directions_respondent", c.Templates.DirectionsRespondent},
		{"more_info_applicant", c.Templates.MoreInfoApplicant},
		{"more_info_respondent", c.Templates.MoreInfoRespondent},
		{"uncloak_applicant", c.Templates.UncloakApplicant},
		{"uncloak_respondent", c.Templates.UncloakRespondent},
		{"lip_applicant", c.Templates.LipApplicant},
		{"lip_respondent", c.Templates.LipRespondent},
	}
	for _, check := range checks {
		if check.value == "" {
			return fmt.Errorf("config: templates.%s is required", check.key)
		}
	}
	return nil
}
