// Package preview projects a survey document into what a respondent or the
// author sees.
//
// [Project] is a pure function from a document to a [View]. The live view is
// the compact summary shown next to the editor; the final view carries one
// widget per step. [Render] draws a view as terminal text and [Marshal]
// encodes it for tooling.
package preview
