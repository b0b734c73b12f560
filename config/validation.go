package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the service needs at runtime is present and well formed
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.OpenAIAPIKey == "" {
		errs = append(errs, ValidationError{
			Field:   "OPENAI_API_KEY",
			Message: "required (set OPENAI_API_KEY, OPENAI_API_KEY_FILE or the openai_api_key secret)",
		})
	}

	if u, err := url.Parse(cfg.OpenAIAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "OPENAI_API_URL", Message: "must be an absolute URL"})
	}

	if cfg.OpenAITimeout < 0 {
		errs = append(errs, ValidationError{Field: "OPENAI_TIMEOUT", Message: "must not be negative"})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must be a port number"})
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: err.Error()})
	}

	if len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
	}

	return nil
}
