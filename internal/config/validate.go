package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Cron.BatchLimit < 0 {
		return fmt.Errorf("cron.batch_limit must be >= 0 (got %d)", c.Cron.BatchLimit)
	}

	if err := c.Escalation.validate(); err != nil {
		return fmt.Errorf("escalation: %w", err)
	}

	if err := c.Retention.validate(); err != nil {
		return fmt.Errorf("retention: %w", err)
	}

	if err := c.Messaging.validate(); err != nil {
		return fmt.Errorf("messaging: %w", err)
	}

	if err := c.Telemetry.validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	if c.Server.TriggerRateLimit < 0 {
		return fmt.Errorf("server.trigger_rate_limit must be >= 0 (got %d)", c.Server.TriggerRateLimit)
	}

	return nil
}

func (e *EscalationConfig) validate() error {
	if e.OverdueDedupWindow <= 0 {
		return fmt.Errorf("overdue_dedup_window must be > 0 (got %v)", e.OverdueDedupWindow)
	}
	if e.SLADedupWindow <= 0 {
		return fmt.Errorf("sla_dedup_window must be > 0 (got %v)", e.SLADedupWindow)
	}
	if e.InspectionDueDedupWindow <= 0 {
		return fmt.Errorf("inspection_due_dedup_window must be > 0 (got %v)", e.InspectionDueDedupWindow)
	}
	if e.SLAWindow <= 0 {
		return fmt.Errorf("sla_window must be > 0 (got %v)", e.SLAWindow)
	}
	return nil
}

func (r *RetentionConfig) validate() error {
	if r.SpaceRetentionDays <= 0 {
		return fmt.Errorf("space_retention_days must be > 0 (got %d)", r.SpaceRetentionDays)
	}
	if r.InspectionStaleAfter <= 0 {
		return fmt.Errorf("inspection_stale_after must be > 0 (got %v)", r.InspectionStaleAfter)
	}
	return nil
}

// validate checks credentials only when messaging is enabled; a disabled
// provider means in-app delivery only.
func (m *MessagingConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if m.AccountSID == "" || m.AuthToken == "" {
		return fmt.Errorf("account_sid and auth_token are required when messaging is enabled")
	}
	if m.SMSFrom == "" {
		return fmt.Errorf("sms_from is required when messaging is enabled")
	}
	if len(m.DefaultRegion) != 2 || strings.ToUpper(m.DefaultRegion) != m.DefaultRegion {
		return fmt.Errorf("default_region must be a two-letter upper-case region code (got %q)", m.DefaultRegion)
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", m.Timeout)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	switch strings.ToLower(t.Exporter) {
	case "", "none", "stdout", "otlphttp", "otlpgrpc":
	default:
		return fmt.Errorf("exporter must be one of none, stdout, otlphttp, otlpgrpc (got %q)", t.Exporter)
	}
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		return fmt.Errorf("sample_ratio must be within [0, 1] (got %v)", t.SampleRatio)
	}
	return nil
}
