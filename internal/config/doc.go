// Package config defines the tool configuration of surveykit.
//
// The [Config] struct controls logging, where exported archives go, the
// optional S3-compatible upload of each archive, and the optional
// pushgateway for export metrics. It is read from a YAML file, then
// SURVEYKIT_* environment variables override individual fields. Command
// line flags override both and are applied by the CLI.
package config
