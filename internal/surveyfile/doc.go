// Package surveyfile loads survey definition files.
//
// A definition is a YAML document describing the header and steps of a
// survey. Image paths are resolved relative to the definition file. Loading
// replays the definition through an editor, so defaults and invariants are
// the editor's. Definitions are input only; nothing is ever written back.
package surveyfile
