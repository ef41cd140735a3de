package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var validationErrorMessages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				validationErrorMessages = append(validationErrorMessages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(validationErrorMessages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}

	return validateTrackerReferences(&cfg.TrackerConfig)
}

// validateTrackerReferences checks cross-references the struct tags cannot express:
// discovery rules must point at a configured tracked file and must not produce
// a snapshot name that collides with a static one.
func validateTrackerReferences(tc *TrackerConfig) error {
	names := make(map[string]bool, len(tc.TrackedFiles))
	for _, tf := range tc.TrackedFiles {
		if names[tf.Name] {
			return fmt.Errorf("configuration validation failed: duplicate tracked file name '%s'", tf.Name)
		}
		names[tf.Name] = true
	}

	discovered := make(map[string]bool, len(tc.DiscoveryRules))
	for _, rule := range tc.DiscoveryRules {
		if !names[rule.Source] {
			return fmt.Errorf("configuration validation failed: discovery rule '%s' references unknown source '%s'", rule.Key, rule.Source)
		}
		if names[rule.Name] || discovered[rule.Name] {
			return fmt.Errorf("configuration validation failed: discovery rule '%s' produces duplicate file name '%s'", rule.Key, rule.Name)
		}
		discovered[rule.Name] = true
	}
	return nil
}
