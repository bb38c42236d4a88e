package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/calc/format"
)

// FieldError is a validation failure of one dotted configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate collects every field error of cfg.
func Validate(cfg *Config) error {
	var errs []FieldError

	switch cfg.Parser.TrailingInput {
	case TrailingInputError, TrailingInputAllow:
	default:
		errs = append(errs, FieldError{
			Field:   "parser.trailing_input",
			Message: fmt.Sprintf("must be %q or %q, got %q", TrailingInputError, TrailingInputAllow, cfg.Parser.TrailingInput),
		})
	}

	if !slices.Contains(format.Names, cfg.Output.Format) {
		errs = append(errs, FieldError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(format.Names, ", "), cfg.Output.Format),
		})
	}

	if cfg.Log.Verbosity < 0 {
		errs = append(errs, FieldError{Field: "log.verbosity", Message: "must not be negative"})
	}

	if cfg.Watch.Debounce < 0 {
		errs = append(errs, FieldError{Field: "watch.debounce", Message: "must not be negative"})
	}
	for i, ext := range cfg.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("must start with '.', got %q", ext),
			})
		}
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
