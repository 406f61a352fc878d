// Package logging builds the logr.Logger used across surveykit.
//
// The root logger is created once by the CLI and travels in the context;
// packages obtain it with [FromContext] and add their component name with
// WithName. Nothing logs through a global.
package logging
