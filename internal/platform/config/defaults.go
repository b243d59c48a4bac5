package config

const (
	defaultServerPort = 8080

	defaultAuditRetention   = 100
	defaultSessionRetention = 50
	defaultMaxPageSize      = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.audit_retention":   defaultAuditRetention,
		"store.session_retention": defaultSessionRetention,
		"store.max_page_size":     defaultMaxPageSize,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
