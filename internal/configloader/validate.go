package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gospec/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the invalid field (e.g. "format").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the problem.
	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Validate checks a configuration and returns the first error found.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		return &ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: markdown, respec", cfg.Format),
		}
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		return &ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		}
	}

	if cfg.Jobs < 0 {
		return &ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		}
	}

	if cfg.Debounce < 0 {
		return &ValidationError{
			Field:   "debounce",
			Value:   cfg.Debounce,
			Message: "debounce must not be negative",
		}
	}

	if strings.TrimSpace(cfg.Specification) == "" {
		return &ValidationError{
			Field:   "specification",
			Message: "manifest path must not be empty",
		}
	}

	return nil
}

// merge overlays the non-zero fields of override onto base.
func merge(base, override *config.Config) *config.Config {
	if override == nil {
		return base
	}

	out := *base
	if override.Specification != "" {
		out.Specification = override.Specification
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Output != "" {
		out.Output = override.Output
	}
	if override.Jobs != 0 {
		out.Jobs = override.Jobs
	}
	if override.Debounce != 0 {
		out.Debounce = override.Debounce
	}
	if override.Color != "" {
		out.Color = override.Color
	}

	return &out
}
