// Package metrics records export and upload metrics.
//
// surveykit is a short-lived CLI, so metrics live on a package [Registry]
// instead of being scraped. When a pushgateway is configured the CLI pushes
// the registry once before exiting, see [Push].
package metrics
