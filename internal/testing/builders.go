package testing

import (
	"slices"

	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/survey"
)

// DocumentBuilder provides a fluent interface for constructing test documents.
// Each method returns a new builder (immutable) for chaining. All builders
// derived from the same root share one id generator and one registry, so ids
// and display URLs never repeat.
type DocumentBuilder struct {
	gen *survey.CounterGenerator
	reg *attachment.Registry
	doc survey.Document
}

// NewDocumentBuilder creates a builder for an empty document with no steps.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{
		gen: survey.NewCounterGenerator("id-"),
		reg: attachment.NewRegistry(),
	}
}

// Generator returns the id generator shared by the builder chain.
func (b *DocumentBuilder) Generator() *survey.CounterGenerator {
	return b.gen
}

// Registry returns the registry that issued the display URLs of the document.
func (b *DocumentBuilder) Registry() *attachment.Registry {
	return b.reg
}

// WithTitle sets the survey title.
func (b *DocumentBuilder) WithTitle(title string) *DocumentBuilder {
	nb := b.clone()
	nb.doc.Meta.Title = title
	return nb
}

// WithDescription sets the survey description.
func (b *DocumentBuilder) WithDescription(desc string) *DocumentBuilder {
	nb := b.clone()
	nb.doc.Meta.Description = desc
	return nb
}

// WithVinoks sets the reward descriptor.
func (b *DocumentBuilder) WithVinoks(vinoks string) *DocumentBuilder {
	nb := b.clone()
	nb.doc.Meta.Vinoks = vinoks
	return nb
}

// WithMetaImage attaches f as the survey image.
func (b *DocumentBuilder) WithMetaImage(f *attachment.File) *DocumentBuilder {
	nb := b.clone()
	nb.doc.Meta.Image = nb.reg.Attach(f)
	return nb
}

// WithStep appends a step of kind with the given question. For option-bearing
// kinds the option titles replace the default blank options; passing no
// titles keeps the defaults.
func (b *DocumentBuilder) WithStep(kind survey.StepKind, question string, titles ...string) *DocumentBuilder {
	nb := b.clone()
	step := survey.NewStep(nb.gen, kind)
	step.Question = question
	if kind.HasOptions() && len(titles) > 0 {
		opts := make([]survey.Option, len(titles))
		for i, title := range titles {
			opts[i] = survey.NewOption(nb.gen)
			opts[i].Title = title
		}
		step = step.WithOptions(opts)
	}
	nb.doc.Steps = append(nb.doc.Steps, step)
	return nb
}

// WithOptionImage attaches f to the option at optIndex of the step at
// stepIndex. Out-of-range indexes leave the document unchanged.
func (b *DocumentBuilder) WithOptionImage(stepIndex, optIndex int, f *attachment.File) *DocumentBuilder {
	nb := b.clone()
	step, ok := nb.doc.Step(stepIndex)
	if !ok || optIndex < 0 || optIndex >= len(step.Options()) {
		return nb
	}
	opts := slices.Clone(step.Options())
	opts[optIndex].Image = nb.reg.Attach(f)
	nb.doc.Steps[stepIndex] = step.WithOptions(opts)
	return nb
}

// Build returns the constructed document.
func (b *DocumentBuilder) Build() survey.Document {
	return b.clone().doc
}

func (b *DocumentBuilder) clone() *DocumentBuilder {
	return &DocumentBuilder{
		gen: b.gen,
		reg: b.reg,
		doc: survey.Document{
			Meta:  b.doc.Meta,
			Steps: slices.Clone(b.doc.Steps),
		},
	}
}
