package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	oerrors "github.com/restscope/cli/internal/errors"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Is makes ValidationErrors match errors.ErrValidation.
func (e ValidationErrors) Is(target error) bool {
	return target == oerrors.ErrValidation
}

// Validate checks cfg against its struct constraints.
func Validate(cfg *Config) error {
	return validateStruct(cfg, "")
}

// validateStruct runs struct tag validation and reports fields by their json
// path, prefixed with prefix.
func validateStruct(s interface{}, prefix string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		errs = append(errs, ValidationError{
			Field:   prefix + field,
			Message: formatFieldError(fe),
		})
	}
	return errs
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// ValidateFile strictly decodes and validates the configuration file at path.
// Unknown keys and mistyped values are reported as validation errors.
func ValidateFile(path string) (*Config, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, oerrors.NewNotFoundError("configuration file not found", expanded,
				"Run 'restscope config init' to create a default configuration.")
		case os.IsPermission(err):
			return nil, oerrors.NewPermissionError("cannot read configuration file", expanded, "")
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration file is not valid",
			Location: expanded,
			Context:  map[string]string{"Cause": err.Error()},
			Hint:     "Check the file for unknown keys or values of the wrong type.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
