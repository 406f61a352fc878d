package config

import "time"

// Config is the surveykit tool configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Export  ExportConfig  `yaml:"export"`
	Upload  UploadConfig  `yaml:"upload"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig controls the logr logger.
type LogConfig struct {
	// Verbosity enables V-levels up to this value.
	Verbosity int `yaml:"verbosity"`
	// File receives log output. The interactive editor logs nowhere without it.
	File string `yaml:"file"`
}

// ExportConfig controls archive generation.
type ExportConfig struct {
	// OutputDir is the directory archives are written to.
	OutputDir string `yaml:"output_dir"`
	// Collisions is the policy for distinct images sharing a file name:
	// rename, reject or overwrite.
	Collisions string `yaml:"collisions"`
}

// UploadConfig describes the S3-compatible bucket archives are uploaded to.
type UploadConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	// Retries is the number of retries after a failed upload attempt.
	Retries int `yaml:"retries"`
	// Timeout bounds a whole upload including retries.
	Timeout time.Duration `yaml:"timeout"`
	// PathStyle addresses buckets as endpoint/bucket, as MinIO expects.
	PathStyle bool `yaml:"path_style"`
	// CreateBucket creates a missing bucket before the first upload.
	CreateBucket bool `yaml:"create_bucket"`
}

// MetricsConfig describes the optional pushgateway.
type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url"`
	Job            string `yaml:"job"`
}

// Defaults
const (
	DefaultOutputDir     = "."
	DefaultCollisions    = "rename"
	DefaultUploadRetries = 3
	DefaultUploadTimeout = 2 * time.Minute
	DefaultMetricsJob    = "surveykit"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = DefaultOutputDir
	}
	if c.Export.Collisions == "" {
		c.Export.Collisions = DefaultCollisions
	}
	if c.Upload.Retries == 0 {
		c.Upload.Retries = DefaultUploadRetries
	}
	if c.Upload.Timeout == 0 {
		c.Upload.Timeout = DefaultUploadTimeout
	}
	if c.Metrics.Job == "" {
		c.Metrics.Job = DefaultMetricsJob
	}
}
