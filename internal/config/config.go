package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Tasks     TasksConfig     `mapstructure:"tasks" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// TasksConfig contains settings of the task engine.
type TasksConfig struct {
	// DefaultPriority is applied to tasks created without a priority.
	DefaultPriority string `mapstructure:"default_priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	// SeedStaff loads the reference staff roster at startup.
	SeedStaff bool `mapstructure:"seed_staff"`
}

// TelemetryConfig contains tracing settings. Metrics are always exposed.
type TelemetryConfig struct {
	// OTelEndpoint is an OTLP HTTP endpoint (host:port). Empty disables export.
	OTelEndpoint string `mapstructure:"otel_endpoint" validate:"omitempty,hostname_port"`
	ServiceName  string `mapstructure:"service_name" validate:"required"`
}
