// Package redmineclient provides the main entry point for creating Redmine API clients
package redmineclient

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/redmine-go/redmine/internal/client"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// Environment variables read by FromEnv.
const (
	EnvURL    = "REDMINE_URL"
	EnvAPIKey = "REDMINE_API_KEY"
)

// New creates a new Redmine API client.
func New(config *redmine.Config) (redmine.Client, error) {
	if config == nil {
		return nil, redmine.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, redmine.ErrBaseURLRequired
	}

	// Normalize the base URL; a missing scheme means HTTPS.
	baseURL := config.BaseURL
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	redmineClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return redmineClient, nil
}

// NewWithAPIKey creates a new client from a base URL and API key.
func NewWithAPIKey(baseURL, apiKey string) (redmine.Client, error) {
	return New(&redmine.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// FromEnv creates a new client from the REDMINE_URL and REDMINE_API_KEY
// environment variables.
func FromEnv() (redmine.Client, error) {
	env := viper.New()
	env.AutomaticEnv()

	baseURL := env.GetString(EnvURL)
	if baseURL == "" {
		return nil, &redmine.ConfigError{Name: EnvURL}
	}

	apiKey := env.GetString(EnvAPIKey)
	if apiKey == "" {
		return nil, &redmine.ConfigError{Name: EnvAPIKey}
	}

	return New(&redmine.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}
