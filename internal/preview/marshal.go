package preview

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"sigs.k8s.io/yaml"
)

// Format is an encoding for Marshal.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats Marshal does not support.
var ErrUnknownFormat = errors.New("unknown preview format")

// ParseFormat validates a format name. The empty name means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Marshal encodes v as json or yaml. FormatText renders v with the Plain style.
func Marshal(v View, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(Render(v, Plain)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode preview: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode preview: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
