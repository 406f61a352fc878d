// Package survey defines the survey document edited by surveykit.
//
// A [Document] holds survey metadata and at most [MaxSteps] ordered steps.
// Each [Step] carries a type-specific [StepBody]: checkbox and ordering steps
// hold options, text steps a star count, score steps a maximum score. Values
// in this package are treated as immutable snapshots; the editor package
// produces new snapshots instead of modifying existing ones.
//
// Identities for steps and options come from an injected [IDGenerator] so
// tests can use deterministic ids.
package survey
