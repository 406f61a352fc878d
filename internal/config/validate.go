package config

import (
	"fmt"
	"net/url"
)

// ValidCollisions contains the accepted collision policies.
var ValidCollisions = map[string]bool{
	"rename":    true,
	"reject":    true,
	"overwrite": true,
}

// Validate checks the configuration for common errors and returns a detailed error if validation fails.
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative")
	}

	if !ValidCollisions[c.Export.Collisions] {
		return fmt.Errorf("export.collisions must be one of rename, reject, overwrite, got %q", c.Export.Collisions)
	}

	if c.Upload.Enabled {
		if err := c.validateUpload(); err != nil {
			return fmt.Errorf("upload validation failed: %w", err)
		}
	}

	if c.Metrics.PushgatewayURL != "" {
		if err := validateURL(c.Metrics.PushgatewayURL); err != nil {
			return fmt.Errorf("metrics.pushgateway_url: %w", err)
		}
	}

	return nil
}

func (c *Config) validateUpload() error {
	if c.Upload.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.Upload.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Upload.Endpoint != "" {
		if err := validateURL(c.Upload.Endpoint); err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
	}
	if (c.Upload.AccessKey == "") != (c.Upload.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	if c.Upload.Retries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	if c.Upload.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host: %q", raw)
	}
	return nil
}
