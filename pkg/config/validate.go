package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-netcentrality/pkg/logging"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := logging.LookupLevel(fl.Field().String())
		return ok
	})
}

// Validate checks field constraints and cross-field rules. All failures are
// reported, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		errs = append(errs, formatValidationErrors(err)...)
	}

	if strings.TrimSpace(c.Input.Source) == "" {
		errs = append(errs, errors.New("Input.Source: field is required"))
	}
	if strings.HasPrefix(c.Input.Source, "s3://") {
		rest := strings.TrimPrefix(c.Input.Source, "s3://")
		if bucket, key, ok := strings.Cut(rest, "/"); !ok || bucket == "" || key == "" {
			errs = append(errs, fmt.Errorf("Input.Source: %q must be s3://bucket/key", c.Input.Source))
		}
	}
	if c.Output.Compress && c.Output.Path == "" {
		errs = append(errs, errors.New("Output.Compress: requires Output.Path"))
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, errs[0])
	default:
		return fmt.Errorf("%w: %d errors: %v", ErrInvalidConfig, len(errs), errors.Join(errs...))
	}
}

// formatValidationErrors converts validator errors to a more user-friendly format
func formatValidationErrors(err error) []error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []error{err}
	}

	out := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		param := e.Param()

		switch e.Tag() {
		case "required":
			out = append(out, fmt.Errorf("%s: field is required", field))
		case "gte", "min":
			out = append(out, fmt.Errorf("%s: must be at least %s", field, param))
		case "lte", "max":
			out = append(out, fmt.Errorf("%s: must not exceed %s", field, param))
		case "gt":
			out = append(out, fmt.Errorf("%s: must be greater than %s", field, param))
		case "loglevel":
			out = append(out, fmt.Errorf("%s: %q is not one of debug, info, warn, error", field, e.Value()))
		default:
			out = append(out, fmt.Errorf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return out
}
