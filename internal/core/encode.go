package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Encode renders groups in the given format. JSON output uses two-space
// indentation and leaves HTML characters in titles and URLs unescaped.
func Encode(groups []Group, format string) ([]byte, error) {
	if groups == nil {
		groups = []Group{}
	}

	switch format {
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(groups); err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		// Encoder terminates every value with a newline; the document ends at "]".
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}
