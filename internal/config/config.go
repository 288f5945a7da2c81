package config

import (
	"time"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Cron       CronConfig       `yaml:"cron"`
	Escalation EscalationConfig `yaml:"escalation"`
	Retention  RetentionConfig  `yaml:"retention"`
	Messaging  MessagingConfig  `yaml:"messaging"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TriggerRateLimit caps requests per minute per client on the cron and
	// internal routes. Zero disables the limit.
	TriggerRateLimit int `yaml:"trigger_rate_limit" env:"SERVER_TRIGGER_RATE_LIMIT" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CronConfig holds settings shared by the scheduled job triggers.
// An empty Secret disables the HTTP triggers: they answer 500.
type CronConfig struct {
	Secret     string `yaml:"secret"      env:"CRON_SECRET"`
	BatchLimit int    `yaml:"batch_limit" env:"CRON_BATCH_LIMIT" env-default:"500"`
}

// EscalationConfig holds dedup windows and the SLA look-ahead.
type EscalationConfig struct {
	OverdueDedupWindow       time.Duration `yaml:"overdue_dedup_window"        env:"ESCALATION_OVERDUE_DEDUP_WINDOW"        env-default:"1h"`
	SLADedupWindow           time.Duration `yaml:"sla_dedup_window"            env:"ESCALATION_SLA_DEDUP_WINDOW"            env-default:"4h"`
	InspectionDueDedupWindow time.Duration `yaml:"inspection_due_dedup_window" env:"ESCALATION_INSPECTION_DUE_DEDUP_WINDOW" env-default:"4h"`
	SLAWindow                time.Duration `yaml:"sla_window"                  env:"ESCALATION_SLA_WINDOW"                  env-default:"4h"`
}

// RetentionConfig holds the cleanup thresholds.
type RetentionConfig struct {
	SpaceRetentionDays   int           `yaml:"space_retention_days"   env:"RETENTION_SPACE_DAYS"             env-default:"30"`
	InspectionStaleAfter time.Duration `yaml:"inspection_stale_after" env:"RETENTION_INSPECTION_STALE_AFTER" env-default:"4h"`
}

// MessagingConfig holds the SMS/WhatsApp provider credentials.
type MessagingConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"MESSAGING_ENABLED"        env-default:"false"`
	BaseURL       string        `yaml:"base_url"       env:"MESSAGING_BASE_URL"       env-default:"https://api.twilio.com"`
	AccountSID    string        `yaml:"account_sid"    env:"MESSAGING_ACCOUNT_SID"`
	AuthToken     string        `yaml:"auth_token"     env:"MESSAGING_AUTH_TOKEN"`
	SMSFrom       string        `yaml:"sms_from"       env:"MESSAGING_SMS_FROM"`
	WhatsAppFrom  string        `yaml:"whatsapp_from"  env:"MESSAGING_WHATSAPP_FROM"`
	DefaultRegion string        `yaml:"default_region" env:"MESSAGING_DEFAULT_REGION" env-default:"US"`
	Timeout       time.Duration `yaml:"timeout"        env:"MESSAGING_TIMEOUT"        env-default:"10s"`
}

// TelemetryConfig holds tracing settings.
// Exporter is one of none, stdout, otlphttp or otlpgrpc.
type TelemetryConfig struct {
	ServiceName string  `yaml:"service_name" env:"TELEMETRY_SERVICE_NAME" env-default:"facility-backend"`
	Exporter    string  `yaml:"exporter"     env:"TELEMETRY_EXPORTER"     env-default:"none"`
	Endpoint    string  `yaml:"endpoint"     env:"TELEMETRY_ENDPOINT"`
	Insecure    bool    `yaml:"insecure"     env:"TELEMETRY_INSECURE"     env-default:"true"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TELEMETRY_SAMPLE_RATIO" env-default:"1"`
}

// EscalationPolicy converts the escalation and cron sections into the
// policy consumed by the escalation jobs.
func (c Config) EscalationPolicy() domain.EscalationPolicy {
	return domain.EscalationPolicy{
		OverdueDedupWindow:       c.Escalation.OverdueDedupWindow,
		SLADedupWindow:           c.Escalation.SLADedupWindow,
		InspectionDueDedupWindow: c.Escalation.InspectionDueDedupWindow,
		SLAWindow:                c.Escalation.SLAWindow,
		BatchLimit:               c.Cron.BatchLimit,
	}
}

// RetentionPolicy converts the retention section into a domain policy.
func (c RetentionConfig) RetentionPolicy() domain.RetentionPolicy {
	return domain.RetentionPolicy{
		SpaceRetention:       time.Duration(c.SpaceRetentionDays) * 24 * time.Hour,
		InspectionStaleAfter: c.InspectionStaleAfter,
	}
}
