package base

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format renders v as indented JSON or as YAML. YAML is produced from the
// JSON form so both formats share field names, field order and number
// handling.
func Format(format string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("error encoding output: %w", err)
	}

	switch strings.ToLower(format) {
	case "", "json":
		return strings.TrimRight(buf.String(), "\n"), nil

	case "yaml", "yml":
		var doc yaml.Node
		if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
			return "", fmt.Errorf("error encoding output: %w", err)
		}
		blockStyle(&doc)

		var out bytes.Buffer
		yenc := yaml.NewEncoder(&out)
		yenc.SetIndent(2)
		if err := yenc.Encode(&doc); err != nil {
			return "", fmt.Errorf("error encoding output: %w", err)
		}
		if err := yenc.Close(); err != nil {
			return "", fmt.Errorf("error encoding output: %w", err)
		}
		return strings.TrimRight(out.String(), "\n"), nil

	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

// blockStyle clears the flow and quoting styles the JSON input left on n.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
