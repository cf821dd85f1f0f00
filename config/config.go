// Package config loads the demo configuration: logging, controller timing and
// per-editor toolbars.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/iw2rmb/richbind/surface"
)

//go:embed config.yaml
var defaults []byte

type (
	TimingConfig struct {
		InitDelay  time.Duration `yaml:"init_delay" validate:"gte=0,lte=1s"`
		EchoWindow time.Duration `yaml:"echo_window" validate:"gte=0,lte=10s"`
	}

	EditorConfig struct {
		Placeholder string   `yaml:"placeholder"`
		Headers     []int    `yaml:"headers" validate:"max=6,dive,min=1,max=6"`
		Formats     []string `yaml:"formats" validate:"dive,format"`
	}

	EditorsConfig struct {
		Description EditorConfig `yaml:"description"`
		Notes       EditorConfig `yaml:"notes"`
	}

	Config struct {
		Logging LoggingConfig `yaml:"logging"`
		Timing  TimingConfig  `yaml:"timing"`
		Editors EditorsConfig `yaml:"editors"`
	}
)

// Defaults returns the embedded configuration.
func Defaults() []byte { return bytes.Clone(defaults) }

func decode(data []byte, cfg *Config) error {
	// Only fields we define are accepted.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

// Load reads the configuration file at path over the embedded defaults and
// validates the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := decode(defaults, cfg); err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		_, err := surface.ParseFormat(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks cfg against its field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Toolbar converts the editor settings. Format names are validated by Load.
func (e EditorConfig) Toolbar() surface.Toolbar {
	var tb surface.Toolbar
	for _, h := range e.Headers {
		tb.Headers = append(tb.Headers, surface.HeaderLevel(h))
	}
	for _, name := range e.Formats {
		if f, err := surface.ParseFormat(name); err == nil {
			tb.Formats |= f
		}
	}
	return tb
}

// Dump renders cfg as YAML that Load accepts.
func Dump(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}
