package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c.yamlView()); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// yamlDocument mirrors Config with a human-readable debounce.
type yamlDocument struct {
	Specification string       `yaml:"specification,omitempty"`
	Format        OutputFormat `yaml:"format,omitempty"`
	Output        string       `yaml:"output,omitempty"`
	Jobs          int          `yaml:"jobs,omitempty"`
	Debounce      string       `yaml:"debounce,omitempty"`
	Color         ColorMode    `yaml:"color,omitempty"`
}

func (c *Config) yamlView() yamlDocument {
	doc := yamlDocument{
		Specification: c.Specification,
		Format:        c.Format,
		Output:        c.Output,
		Jobs:          c.Jobs,
		Color:         c.Color,
	}
	if c.Debounce > 0 {
		doc.Debounce = c.Debounce.String()
	}
	return doc
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are errors.
// Durations are written as Go duration strings such as "750ms".
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return cfg, nil
}
