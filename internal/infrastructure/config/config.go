package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Gray Logic Panel.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Panel   PanelConfig   `yaml:"panel"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Logging LoggingConfig `yaml:"logging"`
}

// PanelConfig contains panel identity and screen behaviour settings.
type PanelConfig struct {
	// ID identifies this panel on the bus (e.g., "panel-kitchen").
	// It is also used in the panel's MQTT topic namespace.
	ID string `yaml:"id"`

	// Name is the human-readable panel name shown in diagnostics.
	Name string `yaml:"name"`

	// DefaultScreen is the screen activated at startup. When empty, the
	// first registered screen is used.
	DefaultScreen string `yaml:"default_screen"`

	// TickIntervalMS is the cadence of the periodic screen update, in
	// milliseconds.
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// DestroyOnDeactivate tears down a screen's visual subtree whenever
	// the panel switches away from it. Saves memory on constrained
	// hardware at the cost of rebuilding the subtree on every return.
	DestroyOnDeactivate bool `yaml:"destroy_on_deactivate"`

	// HeartbeatIntervalS is the presence heartbeat cadence, in seconds.
	HeartbeatIntervalS int `yaml:"heartbeat_interval_s"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	TLS  bool   `yaml:"tls"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: GRAYPANEL_SECTION_KEY
// For example: GRAYPANEL_PANEL_ID, GRAYPANEL_MQTT_HOST
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			ID:                 "panel-001",
			Name:               "Gray Logic Panel",
			TickIntervalMS:     1000,
			HeartbeatIntervalS: 30,
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host: "localhost",
				Port: 1883,
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: GRAYPANEL_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Panel
	if v := os.Getenv("GRAYPANEL_PANEL_ID"); v != "" {
		cfg.Panel.ID = v
	}
	if v := os.Getenv("GRAYPANEL_PANEL_DEFAULT_SCREEN"); v != "" {
		cfg.Panel.DefaultScreen = v
	}

	// MQTT
	if v := os.Getenv("GRAYPANEL_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("GRAYPANEL_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("GRAYPANEL_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// Logging
	if v := os.Getenv("GRAYPANEL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Panel validation
	if c.Panel.ID == "" {
		errs = append(errs, "panel.id is required")
	}
	if c.Panel.TickIntervalMS < 1 {
		errs = append(errs, "panel.tick_interval_ms must be positive")
	}
	if c.Panel.HeartbeatIntervalS < 1 {
		errs = append(errs, "panel.heartbeat_interval_s must be positive")
	}

	// MQTT validation
	if c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required")
	}
	if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetTickInterval returns the screen update cadence as a Duration.
func (c *Config) GetTickInterval() time.Duration {
	return time.Duration(c.Panel.TickIntervalMS) * time.Millisecond
}

// GetHeartbeatInterval returns the presence heartbeat cadence as a Duration.
func (c *Config) GetHeartbeatInterval() time.Duration {
	return time.Duration(c.Panel.HeartbeatIntervalS) * time.Second
}
