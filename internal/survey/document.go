package survey

import "github.com/imamik/surveykit/internal/attachment"

// MaxSteps is the maximum number of steps a survey can hold.
const MaxSteps = 4

// Meta is the survey header.
type Meta struct {
	Title       string
	Description string
	Vinoks      string            // reward descriptor, free text
	Image       *attachment.Image // nil when no image is attached
}

// Document is the survey being edited.
type Document struct {
	Meta  Meta
	Steps []Step
}

// NewDocument returns the document a fresh editing session starts with:
// one step of each kind in the order CHECKBOX, ORDERING, SCORE, TEXT.
func NewDocument(gen IDGenerator) Document {
	return Document{
		Steps: []Step{
			NewStep(gen, KindCheckbox),
			NewStep(gen, KindOrdering),
			NewStep(gen, KindScore),
			NewStep(gen, KindText),
		},
	}
}

// Full reports whether no further step can be added.
func (d Document) Full() bool {
	return len(d.Steps) >= MaxSteps
}

// Step returns the step at index and whether index is valid.
func (d Document) Step(index int) (Step, bool) {
	if index < 0 || index >= len(d.Steps) {
		return Step{}, false
	}
	return d.Steps[index], true
}

// AttachmentRef locates an attached image inside a document.
type AttachmentRef struct {
	StepIndex int    // -1 for the metadata image
	OptionID  string // empty for the metadata image
	Image     *attachment.Image
}

// Attachments lists every attached image: the metadata image first, then
// option images in step and option order.
func (d Document) Attachments() []AttachmentRef {
	var refs []AttachmentRef
	if d.Meta.Image != nil {
		refs = append(refs, AttachmentRef{StepIndex: -1, Image: d.Meta.Image})
	}
	for i, s := range d.Steps {
		for _, o := range s.Options() {
			if o.Image != nil {
				refs = append(refs, AttachmentRef{StepIndex: i, OptionID: o.ID, Image: o.Image})
			}
		}
	}
	return refs
}
