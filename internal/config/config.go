package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EncoderConfig identifies the encoder input lines and the decoding
// resolution.
type EncoderConfig struct {
	PinA      int    `yaml:"pin_a"`      // encoder line A (BCM)
	PinB      int    `yaml:"pin_b"`      // encoder line B (BCM)
	ButtonPin int    `yaml:"button_pin"` // push-button line, 0 = no button
	Mode      string `yaml:"mode"`       // "full" or "half" step resolution
}

// ButtonConfig holds the button timing thresholds.
type ButtonConfig struct {
	DebounceMs int `yaml:"debounce_ms"` // minimum press dwell before a release counts
	HoldMs     int `yaml:"hold_ms"`     // hold duration that fires a held event
}

// MQTTConfig holds broker settings. An empty broker disables publishing.
type MQTTConfig struct {
	Broker      string `yaml:"broker"` // e.g. tcp://localhost:1883
	ClientID    string `yaml:"client_id"`
	TopicPrefix string `yaml:"topic_prefix"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
}

// DefaultsConfig contains generic daemon parameters.
type DefaultsConfig struct {
	PollIntervalUs int    `yaml:"poll_interval_us"` // sampling period; must stay well below the fastest rotation
	DebugLevel     int    `yaml:"debug_level"`      // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
	GPIODriver     string `yaml:"gpio_driver"`      // "mock", "rpio" or "gpiocdev"
}

// Config aggregates all daemon configuration.
type Config struct {
	Encoder  EncoderConfig  `yaml:"encoder"`
	Button   ButtonConfig   `yaml:"button"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Load reads a YAML file and returns the validated configuration with
// defaults applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	if cfg.Encoder.PinA <= 0 || cfg.Encoder.PinB <= 0 {
		return nil, fmt.Errorf("encoder.pin_a and encoder.pin_b are required")
	}
	if cfg.Encoder.PinA == cfg.Encoder.PinB {
		return nil, fmt.Errorf("encoder.pin_a and encoder.pin_b must differ")
	}
	if cfg.Encoder.ButtonPin < 0 {
		return nil, fmt.Errorf("encoder.button_pin must be >= 0, got %d", cfg.Encoder.ButtonPin)
	}
	if cfg.Encoder.ButtonPin != 0 &&
		(cfg.Encoder.ButtonPin == cfg.Encoder.PinA || cfg.Encoder.ButtonPin == cfg.Encoder.PinB) {
		return nil, fmt.Errorf("encoder.button_pin must differ from the encoder lines")
	}
	if cfg.Encoder.Mode == "" {
		cfg.Encoder.Mode = "full"
	}
	if cfg.Encoder.Mode != "full" && cfg.Encoder.Mode != "half" {
		return nil, fmt.Errorf("encoder.mode must be %q or %q, got %q", "full", "half", cfg.Encoder.Mode)
	}

	if cfg.Button.DebounceMs < 0 {
		return nil, fmt.Errorf("button.debounce_ms must be >= 0, got %d", cfg.Button.DebounceMs)
	}
	if cfg.Button.DebounceMs == 0 {
		cfg.Button.DebounceMs = 50 // reasonable default
	}
	if cfg.Button.HoldMs < 0 {
		return nil, fmt.Errorf("button.hold_ms must be >= 0, got %d", cfg.Button.HoldMs)
	}
	if cfg.Button.HoldMs == 0 {
		cfg.Button.HoldMs = 1000 // reasonable default (1s)
	}

	if cfg.Defaults.PollIntervalUs < 0 {
		return nil, fmt.Errorf("defaults.poll_interval_us must be >= 0, got %d", cfg.Defaults.PollIntervalUs)
	}
	if cfg.Defaults.PollIntervalUs == 0 {
		cfg.Defaults.PollIntervalUs = 1000 // 1ms sampling
	}
	if cfg.Defaults.DebugLevel < 0 || cfg.Defaults.DebugLevel > 4 {
		return nil, fmt.Errorf("defaults.debug_level must be between 0 and 4, got %d", cfg.Defaults.DebugLevel)
	}
	switch cfg.Defaults.GPIODriver {
	case "":
		cfg.Defaults.GPIODriver = "mock"
	case "mock", "rpio", "gpiocdev":
	default:
		return nil, fmt.Errorf("defaults.gpio_driver must be %q, %q or %q, got %q",
			"mock", "rpio", "gpiocdev", cfg.Defaults.GPIODriver)
	}

	if cfg.MQTT.Broker != "" && cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "rotaryd"
	}

	return &cfg, nil
}

// HalfStep returns true when half-step resolution is configured.
func (c *Config) HalfStep() bool {
	return c.Encoder.Mode == "half"
}

// Debounce returns the press-release minimum dwell time.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Button.DebounceMs) * time.Millisecond
}

// Hold returns the press-and-hold threshold.
func (c *Config) Hold() time.Duration {
	return time.Duration(c.Button.HoldMs) * time.Millisecond
}

// PollInterval returns the sampling period of the polling loop.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Defaults.PollIntervalUs) * time.Microsecond
}
