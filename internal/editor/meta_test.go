package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	surveytest "github.com/imamik/surveykit/internal/testing"
)

func TestSetMetaField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field MetaField
		value string
		get   func(*Editor) string
	}{
		{field: FieldTitle, value: "Wine Quiz", get: func(e *Editor) string { return e.Snapshot().Doc.Meta.Title }},
		{field: FieldDescription, value: "Taste and tell", get: func(e *Editor) string { return e.Snapshot().Doc.Meta.Description }},
		{field: FieldVinoks, value: "10", get: func(e *Editor) string { return e.Snapshot().Doc.Meta.Vinoks }},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			t.Parallel()
			ed := newTestEditor(t)
			ed.SetMetaField(tt.field, tt.value)
			assert.Equal(t, tt.value, tt.get(ed))
		})
	}
}

func TestSetMetaField_UnknownIsNoop(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	before := ed.Snapshot()

	ed.SetMetaField(MetaField("author"), "me")

	assert.Equal(t, before, ed.Snapshot())
}

func TestSetMetaImage_TwiceKeepsOneURL(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	reg := ed.Registry()

	ed.SetMetaImage(surveytest.PNG("first.png", "1"))
	first := ed.Snapshot().Doc.Meta.Image
	ed.SetMetaImage(surveytest.PNG("second.png", "2"))
	second := ed.Snapshot().Doc.Meta.Image

	assert.Equal(t, 1, reg.Active())
	_, ok := reg.Resolve(first.URL)
	assert.False(t, ok, "first url revoked")
	f, ok := reg.Resolve(second.URL)
	require.True(t, ok)
	assert.Equal(t, "second.png", f.Name)
}

func TestSetMetaImage_NilIsNoop(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	ed.SetMetaImage(nil)

	assert.Nil(t, ed.Snapshot().Doc.Meta.Image)
	assert.Equal(t, 0, ed.Registry().Active())
}

func TestClearMetaImage(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(t)
	ed.SetMetaImage(surveytest.PNG("cover.png", "c"))
	require.Equal(t, 1, ed.Registry().Active())

	ed.ClearMetaImage()
	assert.Nil(t, ed.Snapshot().Doc.Meta.Image)
	assert.Equal(t, 0, ed.Registry().Active())

	ed.ClearMetaImage()
	assert.Nil(t, ed.Snapshot().Doc.Meta.Image)
}
