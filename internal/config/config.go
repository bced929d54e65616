// Package config loads the mediator configuration from YAML or TOML.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mj1618/kakao-a11y/internal/ime"
	"github.com/mj1618/kakao-a11y/internal/logging"
	"github.com/mj1618/kakao-a11y/internal/overlay"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "KAKAO_A11Y_LOG_LEVEL"

// ProtocolConfig controls window-level protocol selection.
type ProtocolConfig struct {
	UIAClasses []string `yaml:"uia_classes" toml:"uia_classes" json:"uia_classes"`
}

// GuardConfig controls the guarded remote accessor.
type GuardConfig struct {
	SlowCall time.Duration `yaml:"slow_call" toml:"slow_call" json:"slow_call"`
}

// IMEConfig designates the field whose composition reports are suppressed.
type IMEConfig struct {
	Field  string `yaml:"field"  toml:"field"  json:"field"`
	Locale string `yaml:"locale" toml:"locale" json:"locale"`
}

// Config is the full mediator configuration.
type Config struct {
	Classes  overlay.Rules  `yaml:"classes"  toml:"classes"  json:"classes"`
	Protocol ProtocolConfig `yaml:"protocol" toml:"protocol" json:"protocol"`
	Guard    GuardConfig    `yaml:"guard"    toml:"guard"    json:"guard"`
	IME      IMEConfig      `yaml:"ime"      toml:"ime"      json:"ime"`
	Log      logging.Config `yaml:"log"      toml:"log"      json:"log"`
}

// DefaultConfig returns the configuration for the KakaoTalk desktop client.
func DefaultConfig() *Config {
	rules := overlay.DefaultRules()
	return &Config{
		Classes: rules,
		Protocol: ProtocolConfig{
			UIAClasses: []string{rules.ListClass},
		},
		Guard: GuardConfig{
			SlowCall: 500 * time.Millisecond,
		},
		IME: IMEConfig{
			Locale: "ko",
		},
		Log: logging.DefaultConfig(),
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the configuration for values the mediator cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Classes.ListClass == "" {
		errs = append(errs, errors.New("classes.list_class is empty"))
	}
	if c.Classes.MenuClass == "" {
		errs = append(errs, errors.New("classes.menu_class is empty"))
	}
	if c.Classes.MessageEditClass == "" {
		errs = append(errs, errors.New("classes.message_edit_class is empty"))
	}
	if c.Classes.MessageInputID <= 0 {
		errs = append(errs, fmt.Errorf("classes.message_input_id must be positive, got %d", c.Classes.MessageInputID))
	}
	if c.Guard.SlowCall < 0 {
		errs = append(errs, errors.New("guard.slow_call must not be negative"))
	}
	if _, err := c.IMEPolicy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// IMEPolicy builds the composition-suppression policy.
func (c *Config) IMEPolicy() (ime.Policy, error) {
	return ime.NewPolicy(c.IME.Field, c.IME.Locale)
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Load reads, overrides and validates the configuration at path. An empty
// path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFromFile reads and parses a config file based on its extension.
func loadConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (use .yaml, .toml, or .json)", filepath.Ext(path))
	}
	return cfg, nil
}
