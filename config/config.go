package config

import (
	"fmt"
	"time"

	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/operator"
	"github.com/kbukum/golinq/validation"
)

// Config is the complete configuration of the linq command.
type Config struct {
	Name        string          `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string          `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging"`
	Engine      EngineConfig    `yaml:"engine" mapstructure:"engine"`
	Server      ServerConfig    `yaml:"server" mapstructure:"server"`
	Telemetry   TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// EngineConfig controls query behaviour.
type EngineConfig struct {
	// SequenceEqual is "positional" or "set".
	SequenceEqual string `yaml:"sequence_equal" mapstructure:"sequence_equal" validate:"omitempty,oneof=positional set"`
	// TraceDrains records a span per drain when telemetry is enabled.
	TraceDrains bool `yaml:"trace_drains" mapstructure:"trace_drains"`
}

// SequenceEqualMode parses SequenceEqual.
func (c EngineConfig) SequenceEqualMode() (operator.SequenceEqualMode, error) {
	return operator.ParseSequenceEqualMode(c.SequenceEqual)
}

// ServerConfig configures the HTTP plan endpoint.
type ServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port" validate:"min=0,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout" validate:"gte=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes" validate:"gte=0"`
}

// Addr returns host:port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TelemetryConfig configures OTLP export.
type TelemetryConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "golinq"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()

	if c.Engine.SequenceEqual == "" {
		c.Engine.SequenceEqual = operator.SequenceEqualPositional.String()
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}

	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
