package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvOutputDir      = "SURVEYKIT_OUTPUT_DIR"
	EnvCollisions     = "SURVEYKIT_COLLISIONS"
	EnvS3Endpoint     = "SURVEYKIT_S3_ENDPOINT"
	EnvS3Region       = "SURVEYKIT_S3_REGION"
	EnvS3Bucket       = "SURVEYKIT_S3_BUCKET"
	EnvS3AccessKey    = "SURVEYKIT_S3_ACCESS_KEY"
	EnvS3SecretKey    = "SURVEYKIT_S3_SECRET_KEY"
	EnvUploadRetries  = "SURVEYKIT_UPLOAD_RETRIES"
	EnvUploadTimeout  = "SURVEYKIT_UPLOAD_TIMEOUT"
	EnvPushgatewayURL = "SURVEYKIT_PUSHGATEWAY_URL"
)

// DefaultPath returns $XDG_CONFIG_HOME/surveykit/config.yaml, falling back to
// the user config directory of the platform.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "surveykit", "config.yaml")
}

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Load returns the configuration at path, or the defaults when path is empty
// and no file exists at DefaultPath. Environment overrides are applied last.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		loaded, err := LoadFile(path)
		switch {
		case err == nil:
			cfg = loaded
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SURVEYKIT_* environment variables. Setting
// any S3 variable enables the upload. Invalid numbers and durations are
// ignored.
func (c *Config) ApplyEnv() {
	setString(&c.Export.OutputDir, EnvOutputDir)
	setString(&c.Export.Collisions, EnvCollisions)
	endpoint := setString(&c.Upload.Endpoint, EnvS3Endpoint)
	region := setString(&c.Upload.Region, EnvS3Region)
	bucket := setString(&c.Upload.Bucket, EnvS3Bucket)
	if endpoint || region || bucket {
		c.Upload.Enabled = true
	}
	setString(&c.Upload.AccessKey, EnvS3AccessKey)
	setString(&c.Upload.SecretKey, EnvS3SecretKey)
	c.Upload.Retries = parseInt(EnvUploadRetries, c.Upload.Retries)
	c.Upload.Timeout = parseDuration(EnvUploadTimeout, c.Upload.Timeout)
	setString(&c.Metrics.PushgatewayURL, EnvPushgatewayURL)
}

func setString(dst *string, envVar string) bool {
	val := os.Getenv(envVar)
	if val == "" {
		return false
	}
	*dst = val
	return true
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
