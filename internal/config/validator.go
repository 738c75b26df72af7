package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their environment variable names so
// errors point at what the user has to change.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration values against their rules
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf(ErrFmtInvalidConfig, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		rule := e.Tag()
		if e.Param() != "" {
			rule += "=" + e.Param()
		}
		msgs = append(msgs, fmt.Sprintf(ErrFmtFieldRule, e.Field(), rule, e.Value()))
	}
	return fmt.Errorf(ErrFmtInvalidConfig, strings.Join(msgs, "; "))
}

// Warnings returns non-critical issues with the configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if dir := filepath.Dir(c.SaveFile); !dirExists(dir) {
		warnings = append(warnings, fmt.Sprintf(WarnFmtSaveDirMissing, dir))
	}

	if c.MetricsFile != "" {
		if dir := filepath.Dir(c.MetricsFile); !dirExists(dir) {
			warnings = append(warnings, fmt.Sprintf(WarnFmtMetricsDirMissing, dir))
		}
	}

	if c.LogDir == "" {
		warnings = append(warnings, WarnLogDirEmpty)
	}

	return warnings
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
