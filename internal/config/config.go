// Package config handles credential and endpoint configuration for falconmcp.
package config

import (
	"os"
	"strings"

	apierrors "github.com/diogo/falconmcp/internal/errors"
)

// Environment variables read by Load.
const (
	EnvClientID     = "FALCON_CLIENT_ID"
	EnvClientSecret = "FALCON_CLIENT_SECRET"
	EnvBaseURL      = "FALCON_BASE_URL"
	EnvCloud        = "FALCON_CLOUD"
)

// DefaultCloud is used when neither FALCON_BASE_URL nor FALCON_CLOUD is set.
const DefaultCloud = "us-1"

// cloudEndpoints maps region aliases to API base URLs.
var cloudEndpoints = map[string]string{
	"us-1":     "https://api.crowdstrike.com",
	"us-2":     "https://api.us-2.crowdstrike.com",
	"eu-1":     "https://api.eu-1.crowdstrike.com",
	"us-gov-1": "https://api.laggar.gcw.crowdstrike.com",
}

// Config holds the credentials and base endpoint for the Falcon API.
// It is populated once at process start and immutable afterwards.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// Load reads configuration from the environment. An explicit FALCON_BASE_URL
// takes precedence over the FALCON_CLOUD region alias. Credentials are
// validated eagerly so a misconfigured process fails at startup rather than
// on the first tool call.
func Load() (*Config, error) {
	cfg := &Config{
		ClientID:     strings.TrimSpace(os.Getenv(EnvClientID)),
		ClientSecret: strings.TrimSpace(os.Getenv(EnvClientSecret)),
	}

	if base := strings.TrimSpace(os.Getenv(EnvBaseURL)); base != "" {
		cfg.BaseURL = strings.TrimRight(base, "/")
	} else {
		cloud := strings.TrimSpace(os.Getenv(EnvCloud))
		if cloud == "" {
			cloud = DefaultCloud
		}
		base, ok := cloudEndpoints[strings.ToLower(cloud)]
		if !ok {
			return nil, apierrors.NewConfigError(EnvCloud, "unknown cloud region "+cloud)
		}
		cfg.BaseURL = base
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required credentials are present.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return apierrors.NewConfigError(EnvClientID, "client identifier is not set")
	}
	if c.ClientSecret == "" {
		return apierrors.NewConfigError(EnvClientSecret, "client secret is not set")
	}
	if c.BaseURL == "" {
		return apierrors.NewConfigError(EnvBaseURL, "base endpoint is not set")
	}
	return nil
}

// Clouds returns the known region aliases, for help output.
func Clouds() []string {
	return []string{"us-1", "us-2", "eu-1", "us-gov-1"}
}
