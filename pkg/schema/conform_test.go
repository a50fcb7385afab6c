package schema

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomNode generates a schema node of bounded depth. Depth is allowed to run
// past MaxDepth so truncation is exercised too.
func randomNode(r *rand.Rand, depth int) Node {
	types := []string{"object", "array", "string", "integer", "number", "boolean", ""}
	if depth >= 8 {
		types = types[2:]
	}

	node := Node{}
	if tp := types[r.Intn(len(types))]; tp != "" {
		node["type"] = tp
	}

	switch node.Type() {
	case "object":
		props := map[string]any{}
		for i := 0; i < r.Intn(4); i++ {
			props[fmt.Sprintf("field%d", i)] = map[string]any(randomNode(r, depth+1))
		}
		if len(props) > 0 || r.Intn(2) == 0 {
			node["properties"] = props
		}
	case "array":
		if r.Intn(4) > 0 {
			node["items"] = map[string]any(randomNode(r, depth+1))
		}
	case "string":
		formats := []string{"", "date-time", "date", "uuid", "email", "uri", "url", "hostname"}
		if f := formats[r.Intn(len(formats))]; f != "" {
			node["format"] = f
		}
	case "integer", "number":
		if r.Intn(3) == 0 {
			node["minimum"] = r.Intn(100)
		}
	}

	switch r.Intn(10) {
	case 0:
		node["example"] = "override"
	case 1:
		node["enum"] = []any{"a", "b"}
	case 2:
		node["oneOf"] = []any{map[string]any(randomNode(r, depth+1))}
	}

	return node
}

func TestConforms_RandomCorpus(t *testing.T) {
	r := rand.New(rand.NewSource(20260101))

	for i := 0; i < 500; i++ {
		node := randomNode(r, 0)
		value := Example(node)
		require.NoError(t, Conforms(node, value), "schema #%d: %v", i, node)
	}
}

func TestConforms_Mismatches(t *testing.T) {
	obj := Node{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
			"b": map[string]any{"type": "array"},
		},
	}

	tests := []struct {
		name    string
		node    Node
		value   any
		wantErr string
	}{
		{"missing key", obj, map[string]any{"a": "x"}, "expected keys"},
		{"extra key", obj, map[string]any{"a": "x", "b": []any{1}, "c": 1}, "expected keys"},
		{"empty array", obj, map[string]any{"a": "x", "b": []any{}}, "$.b: expected at least one element"},
		{"not an object", obj, "x", "expected object"},
		{"not an array", Node{"type": "array"}, map[string]any{}, "expected array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Conforms(tt.node, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, Conforms(obj, map[string]any{"a": "x", "b": []any{nil}}))
}
