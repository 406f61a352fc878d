package editor

import (
	"github.com/go-logr/logr"

	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/survey"
)

// State is a snapshot of an editing session.
type State struct {
	Doc    survey.Document
	Active int // index of the selected step, 0 when there are no steps
}

// ActiveStep returns the selected step, if any.
func (s State) ActiveStep() (survey.Step, bool) {
	return s.Doc.Step(s.Active)
}

// Editor applies edit operations to a survey document.
// It is not safe for concurrent use; hand snapshots to other goroutines.
type Editor struct {
	gen   survey.IDGenerator
	reg   *attachment.Registry
	log   logr.Logger
	state State
}

// Option configures an Editor.
type Option func(*Editor)

// WithGenerator sets the id generator. The default issues UUIDs.
func WithGenerator(gen survey.IDGenerator) Option {
	return func(e *Editor) {
		e.gen = gen
	}
}

// WithRegistry sets the registry issuing display URLs.
func WithRegistry(reg *attachment.Registry) Option {
	return func(e *Editor) {
		e.reg = reg
	}
}

// WithLogger sets the logger receiving ignored edits.
func WithLogger(log logr.Logger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

// WithDocument starts the session from doc instead of the fresh document.
func WithDocument(doc survey.Document) Option {
	return func(e *Editor) {
		e.state.Doc = doc
		e.state.Doc.Steps = append([]survey.Step(nil), doc.Steps...)
		if e.state.Doc.Steps == nil {
			e.state.Doc.Steps = []survey.Step{}
		}
	}
}

// New returns an editor holding the fresh document with step 0 selected.
func New(opts ...Option) *Editor {
	e := &Editor{log: logr.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	if e.gen == nil {
		e.gen = survey.UUIDGenerator{}
	}
	if e.reg == nil {
		e.reg = attachment.NewRegistry()
	}
	if e.state.Doc.Steps == nil {
		e.state.Doc = survey.NewDocument(e.gen)
	}
	e.log = e.log.WithName("editor")
	return e
}

// Snapshot returns the current state.
func (e *Editor) Snapshot() State {
	return e.state
}

// Registry returns the registry holding the session's display URLs.
func (e *Editor) Registry() *attachment.Registry {
	return e.reg
}

// Close revokes every outstanding display URL. The editor must not be used
// afterwards.
func (e *Editor) Close() {
	e.reg.RevokeAll()
}

func (e *Editor) ignore(op, reason string, kv ...any) {
	e.log.V(1).Info("edit ignored", append([]any{"op", op, "reason", reason}, kv...)...)
}

func (e *Editor) release(imgs ...*attachment.Image) {
	for _, img := range imgs {
		e.reg.Release(img)
	}
}
