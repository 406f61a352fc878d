// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - DocumentBuilder: Fluent builder for survey documents with deterministic ids
//   - PNG, GIF: In-memory image fixtures accepted by the attachment package
//   - WriteImage: Writes an image fixture to a temporary directory
//
// Usage:
//
//	doc := testing.NewDocumentBuilder().
//	    WithTitle("Wine Quiz").
//	    WithStep(survey.KindCheckbox, "Which wines?", "Red", "White").
//	    Build()
package testing
