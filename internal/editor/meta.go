package editor

import (
	"github.com/imamik/surveykit/internal/attachment"
)

// MetaField names an editable text field of the survey header.
type MetaField string

const (
	FieldTitle       MetaField = "title"
	FieldDescription MetaField = "description"
	FieldVinoks      MetaField = "vinoks"
)

// SetMetaField sets a header text field. Unknown fields are ignored.
func (e *Editor) SetMetaField(field MetaField, value string) {
	meta := e.state.Doc.Meta
	switch field {
	case FieldTitle:
		meta.Title = value
	case FieldDescription:
		meta.Description = value
	case FieldVinoks:
		meta.Vinoks = value
	default:
		e.ignore("setMetaField", "unknown field", "field", field)
		return
	}
	e.state.Doc.Meta = meta
}

// SetMetaImage attaches f as the survey image, revoking the URL of the image
// it replaces.
func (e *Editor) SetMetaImage(f *attachment.File) {
	if f == nil {
		e.ignore("setMetaImage", "no file")
		return
	}
	prev := e.state.Doc.Meta.Image
	e.state.Doc.Meta.Image = e.reg.Attach(f)
	e.release(prev)
}

// ClearMetaImage detaches the survey image.
func (e *Editor) ClearMetaImage() {
	prev := e.state.Doc.Meta.Image
	if prev == nil {
		e.ignore("clearMetaImage", "no image")
		return
	}
	e.state.Doc.Meta.Image = nil
	e.release(prev)
}
