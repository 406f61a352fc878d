package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStepKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    StepKind
		wantErr bool
	}{
		{name: "upper case", input: "CHECKBOX", want: KindCheckbox},
		{name: "lower case", input: "ordering", want: KindOrdering},
		{name: "mixed case with spaces", input: "  Score ", want: KindScore},
		{name: "text", input: "text", want: KindText},
		{name: "unknown", input: "SLIDER", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseStepKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStepKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepKind_HasOptions(t *testing.T) {
	t.Parallel()

	assert.True(t, KindCheckbox.HasOptions())
	assert.True(t, KindOrdering.HasOptions())
	assert.False(t, KindText.HasOptions())
	assert.False(t, KindScore.HasOptions())
}

func TestStepKind_Next(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindOrdering, KindCheckbox.Next())
	assert.Equal(t, KindText, KindOrdering.Next())
	assert.Equal(t, KindScore, KindText.Next())
	assert.Equal(t, KindCheckbox, KindScore.Next(), "wraps around")
	assert.Equal(t, KindCheckbox, StepKind("bogus").Next())
}
