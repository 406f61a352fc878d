package preview

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: "json", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshal_JSON(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Project(wineQuiz(), ModeFinal), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "final", decoded["mode"])
	header := decoded["header"].(map[string]any)
	assert.Equal(t, "10", header["reward"])
	steps := decoded["steps"].([]any)
	assert.Len(t, steps, 4)
	assert.Contains(t, string(data), "\n  \"header\"", "two-space indentation")
}

func TestMarshal_YAML(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Project(wineQuiz(), ModeLive), FormatYAML)
	require.NoError(t, err)

	var decoded struct {
		Mode  string `json:"mode"`
		Steps []struct {
			Kind string `json:"kind"`
		} `json:"steps"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "live", decoded.Mode)
	require.Len(t, decoded.Steps, 4)
	assert.Equal(t, "ORDERING", decoded.Steps[1].Kind)
}

func TestMarshal_Text(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Project(wineQuiz(), ModeLive), FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Wine Quiz")
}

func TestMarshal_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Marshal(View{}, Format("xml"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}
