package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	GenerationConfig struct {
		Workers        int    `yaml:"workers" validate:"gte=0,lte=1024"`
		IncludeAdHoc   bool   `yaml:"include_adhoc"`
		HeaderTemplate string `yaml:"header_template"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Generation GenerationConfig `yaml:"generation"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	HeaderTemplateFieldName TemplateFieldName = "header_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(HeaderTemplateFieldName)),
)

// decode applies data on top of cfg. Unknown fields are errors so typos in
// configuration files do not go unnoticed.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

func check(cfg *Config) error {
	if err := gencfg.Sanitize(cfg); err != nil {
		return fmt.Errorf("failed to sanitize configuration: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfiguration expands embedded configuration template, applies the
// file at path on top of it when path is not empty and validates the
// result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}

	cfg := &Config{}
	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}

	if len(path) > 0 {
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}

	if err := check(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
