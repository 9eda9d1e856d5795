package configloader

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yaklabco/gospec/pkg/config"
)

// envVarPrefix is the prefix for all gospec environment variables.
const envVarPrefix = "GOSPEC_"

// envSetters apply one environment variable (without prefix) to the config.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envSetters = map[string]func(cfg *config.Config, value string) error{
	"SPECIFICATION": func(cfg *config.Config, value string) error {
		cfg.Specification = value
		return nil
	},
	"FORMAT": func(cfg *config.Config, value string) error {
		cfg.Format = config.OutputFormat(value)
		return nil
	},
	"OUTPUT": func(cfg *config.Config, value string) error {
		cfg.Output = value
		return nil
	},
	"COLOR": func(cfg *config.Config, value string) error {
		cfg.Color = config.ColorMode(value)
		return nil
	},
	"JOBS": func(cfg *config.Config, value string) error {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		cfg.Jobs = jobs
		return nil
	},
	"DEBOUNCE": func(cfg *config.Config, value string) error {
		debounce, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q (expected e.g. 500ms)", value)
		}
		cfg.Debounce = debounce
		return nil
	},
}

// LoadFromEnv applies GOSPEC_* environment variable overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for suffix, set := range envSetters {
		value := getenv(envVarPrefix + suffix)
		if value == "" {
			continue
		}
		if err := set(cfg, value); err != nil {
			return fmt.Errorf("%s%s: %w", envVarPrefix, suffix, err)
		}
	}

	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOSPEC_SPECIFICATION": "Path to the Specification.toml manifest",
		"GOSPEC_FORMAT":        "Output format: markdown or respec",
		"GOSPEC_OUTPUT":        "Output file path",
		"GOSPEC_COLOR":         "Colorize output: auto, always or never",
		"GOSPEC_JOBS":          "Number of files extracted in parallel (0 = auto)",
		"GOSPEC_DEBOUNCE":      "Watch mode debounce, e.g. 500ms",
	}
}
