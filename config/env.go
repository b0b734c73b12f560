package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}

	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	case "development", "dev":
		return Development
	default:
		return Development // Default to development
	}
}

// IsDevelopment returns true if e is the development environment
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsTest returns true if e is the test environment
func (e Environment) IsTest() bool {
	return e == Test
}

// IsCI returns true if e is the CI environment
func (e Environment) IsCI() bool {
	return e == CI
}

// IsProduction returns true if e is the production environment
func (e Environment) IsProduction() bool {
	return e == Production
}
