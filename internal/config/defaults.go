// Package config provides configuration loading, defaults, and validation for
// the GenApp-Engine service.
package config

import "time"

// Default value constants.
const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "genapp"
	DefaultDBMaxConns = 25

	DefaultRedisAddr = "localhost:6379"

	DefaultKafkaBroker = "localhost:9092"

	DefaultMinIOEndpoint = "localhost:9000"
	DefaultMinIOBucket   = "ga-documents"

	DefaultHolidayFeedURL  = "https://www.gov.uk/bank-holidays.json"
	DefaultHolidayDivision = "england-and-wales"

	DefaultResponseWindowDays = 5
	DefaultEndOfBusinessHour  = 16
	DefaultJudicialOrderDays  = 7

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  It must be called after unmarshalling and
// before Validate so that optional-but-defaulted fields are never seen as
// missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = "migrations"
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "genapp"
	}

	// ── Kafka ─────────────────────────────────────────────────────────────────
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.BatchTimeout == 0 {
		cfg.Kafka.BatchTimeout = time.Second
	}
	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 10 * time.Second
	}

	// ── MinIO ─────────────────────────────────────────────────────────────────
	if cfg.MinIO.Endpoint == "" {
		cfg.MinIO.Endpoint = DefaultMinIOEndpoint
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = DefaultMinIOBucket
	}
	if cfg.MinIO.PresignExpiry == 0 {
		cfg.MinIO.PresignExpiry = 15 * time.Minute
	}

	// ── Holiday feed ──────────────────────────────────────────────────────────
	if cfg.Holiday.FeedURL == "" {
		cfg.Holiday.FeedURL = DefaultHolidayFeedURL
	}
	if cfg.Holiday.Division == "" {
		cfg.Holiday.Division = DefaultHolidayDivision
	}
	if cfg.Holiday.CacheTTL == 0 {
		cfg.Holiday.CacheTTL = 24 * time.Hour
	}
	if cfg.Holiday.FetchTimeout == 0 {
		cfg.Holiday.FetchTimeout = 10 * time.Second
	}

	// ── Notify gateway ────────────────────────────────────────────────────────
	if cfg.Notify.Timeout == 0 {
		cfg.Notify.Timeout = 10 * time.Second
	}

	// ── Deadlines ─────────────────────────────────────────────────────────────
	if cfg.Deadline.ResponseWindowDays == 0 {
		cfg.Deadline.ResponseWindowDays = DefaultResponseWindowDays
	}
	if cfg.Deadline.EndOfBusinessHour == 0 {
		cfg.Deadline.EndOfBusinessHour = DefaultEndOfBusinessHour
	}
	if cfg.Deadline.JudicialOrderDays == 0 {
		cfg.Deadline.JudicialOrderDays = DefaultJudicialOrderDays
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
