// Package editor implements the operations an author applies to a survey.
//
// An [Editor] owns the current [State]: the document and the selected step.
// Each operation replaces the state with a new value; snapshots returned by
// [Editor.Snapshot] are never modified afterwards. Invalid indexes and unknown
// ids are absorbed as no-ops and logged at V(1).
//
// The editor also owns the attachment registry. Whenever an image is replaced
// or dropped from the document, its display URL is revoked.
package editor
