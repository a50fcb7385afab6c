package schema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize_LiteralOverrides(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want any
	}{
		{
			name: "example wins over type",
			node: Node{"type": "integer", "example": 42},
			want: 42,
		},
		{
			name: "zero example is still an example",
			node: Node{"type": "integer", "example": 0},
			want: 0,
		},
		{
			name: "false example",
			node: Node{"type": "boolean", "example": false},
			want: false,
		},
		{
			name: "empty string example",
			node: Node{"type": "string", "format": "email", "example": ""},
			want: "",
		},
		{
			name: "null example",
			node: Node{"type": "object", "properties": map[string]any{"a": map[string]any{"type": "string"}}, "example": nil},
			want: nil,
		},
		{
			name: "example wins over default and enum",
			node: Node{"example": "ex", "default": "def", "enum": []any{"a", "b"}},
			want: "ex",
		},
		{
			name: "default wins over enum",
			node: Node{"default": "def", "enum": []any{"a", "b"}},
			want: "def",
		},
		{
			name: "first enum value",
			node: Node{"type": "string", "enum": []any{"active", "inactive"}},
			want: "active",
		},
		{
			name: "empty enum is ignored",
			node: Node{"type": "boolean", "enum": []any{}},
			want: true,
		},
		{
			name: "enum that is not a sequence is ignored",
			node: Node{"type": "integer", "enum": "nope"},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Synthesize(tt.node, "field", 0))
		})
	}
}

func TestSynthesize_Unions(t *testing.T) {
	t.Run("first oneOf branch", func(t *testing.T) {
		node := Node{"oneOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"type": "string"},
		}}
		assert.Equal(t, 1, Synthesize(node, "field", 0))
	})

	t.Run("oneOf checked before anyOf and allOf", func(t *testing.T) {
		node := Node{
			"allOf": []any{map[string]any{"type": "boolean"}},
			"anyOf": []any{map[string]any{"type": "number"}},
			"oneOf": []any{map[string]any{"type": "integer"}},
		}
		assert.Equal(t, 1, Synthesize(node, "field", 0))
	})

	t.Run("anyOf when oneOf is empty", func(t *testing.T) {
		node := Node{
			"oneOf": []any{},
			"anyOf": []any{map[string]any{"type": "number"}},
		}
		assert.Equal(t, 1.23, Synthesize(node, "field", 0))
	})

	t.Run("allOf keeps the field hint", func(t *testing.T) {
		node := Node{"allOf": []any{map[string]any{"type": "string"}}}
		assert.Equal(t, "user@example.com", Synthesize(node, "contactEmail", 0))
	})

	t.Run("overrides win over unions", func(t *testing.T) {
		node := Node{"default": 7, "oneOf": []any{map[string]any{"type": "string"}}}
		assert.Equal(t, 7, Synthesize(node, "field", 0))
	})

	t.Run("scalar branch synthesizes a string", func(t *testing.T) {
		assert.Equal(t, "example_f", Synthesize(Node{"oneOf": []any{"x"}}, "f", 0))
		assert.Equal(t, "example_f", Synthesize(Node{"anyOf": []any{true}}, "f", 0))
		assert.Equal(t, "example_f", Synthesize(Node{"allOf": []any{json.Number("3")}}, "f", 0))
		assert.Equal(t, "123", Synthesize(Node{"oneOf": []any{[]any{}}}, "userId", 0))
	})

	t.Run("falsy branch is an absent schema", func(t *testing.T) {
		for _, branch := range []any{nil, false, 0, 0.0, "", json.Number("0")} {
			assert.Nil(t, Synthesize(Node{"oneOf": []any{branch}}, "f", 0), "branch %#v", branch)
		}
	})
}

func TestSynthesize_Shapes(t *testing.T) {
	t.Run("object builds every property", func(t *testing.T) {
		node := Node{
			"type": "object",
			"properties": map[string]any{
				"id":      map[string]any{"type": "integer"},
				"email":   map[string]any{"type": "string"},
				"active":  map[string]any{"type": "boolean"},
				"score":   map[string]any{"type": "number", "minimum": 10.5},
				"created": map[string]any{"type": "string", "format": "date-time"},
			},
		}
		got := Synthesize(node, "field", 0)
		assert.Equal(t, map[string]any{
			"id":      1,
			"email":   "user@example.com",
			"active":  true,
			"score":   10.5,
			"created": "2026-01-01T00:00:00Z",
		}, got)
	})

	t.Run("object without properties is empty", func(t *testing.T) {
		assert.Equal(t, map[string]any{}, Synthesize(Node{"type": "object"}, "field", 0))
	})

	t.Run("array holds one element", func(t *testing.T) {
		node := Node{"type": "array", "items": map[string]any{"type": "integer", "minimum": 3}}
		assert.Equal(t, []any{3}, Synthesize(node, "field", 0))
	})

	t.Run("array without items uses the field hint", func(t *testing.T) {
		assert.Equal(t, []any{"example_tags"}, Synthesize(Node{"type": "array"}, "tags", 0))
	})

	t.Run("array of objects", func(t *testing.T) {
		node := Node{
			"type": "array",
			"items": map[string]any{
				"type":       "object",
				"properties": map[string]any{"name": map[string]any{"type": "string"}},
			},
		}
		assert.Equal(t, []any{map[string]any{"name": "example_name"}}, Synthesize(node, "users", 0))
	})

	t.Run("integer and number defaults", func(t *testing.T) {
		assert.Equal(t, 1, Synthesize(Node{"type": "integer"}, "count", 0))
		assert.Equal(t, 1.23, Synthesize(Node{"type": "number"}, "amount", 0))
	})

	t.Run("minimum is returned verbatim", func(t *testing.T) {
		assert.Equal(t, 0, Synthesize(Node{"type": "integer", "minimum": 0}, "count", 0))
		assert.Equal(t, -2.5, Synthesize(Node{"type": "number", "minimum": -2.5}, "amount", 0))
	})

	t.Run("scalar property values", func(t *testing.T) {
		node := Node{"type": "object", "properties": map[string]any{
			"broken":   "string",
			"flag":     true,
			"missing":  nil,
			"disabled": false,
		}}
		assert.Equal(t, map[string]any{
			"broken":   "example_broken",
			"flag":     "example_flag",
			"missing":  nil,
			"disabled": nil,
		}, Synthesize(node, "field", 0))
	})
}

func TestSynthesize_Strings(t *testing.T) {
	tests := []struct {
		name  string
		node  Node
		field string
		want  string
	}{
		{"date-time", Node{"type": "string", "format": "date-time"}, "field", "2026-01-01T00:00:00Z"},
		{"date", Node{"type": "string", "format": "date"}, "field", "2026-01-01"},
		{"uuid", Node{"type": "string", "format": "uuid"}, "field", "123e4567-e89b-12d3-a456-426614174000"},
		{"email format", Node{"type": "string", "format": "email"}, "field", "user@example.com"},
		{"uri format", Node{"type": "string", "format": "uri"}, "field", "https://api.example.com"},
		{"url format", Node{"type": "string", "format": "url"}, "field", "https://api.example.com"},
		{"format beats field name", Node{"type": "string", "format": "uuid"}, "email", "123e4567-e89b-12d3-a456-426614174000"},
		{"email name", Node{"type": "string"}, "userEmail", "user@example.com"},
		{"name", Node{"type": "string"}, "displayName", "example_name"},
		{"id", Node{"type": "string"}, "orderId", "123"},
		{"token", Node{"type": "string"}, "accessToken", "token_value"},
		{"auth", Node{"type": "string"}, "Authorization", "token_value"},
		{"url name", Node{"type": "string"}, "callbackUrl", "https://api.example.com"},
		{"uri name", Node{"type": "string"}, "redirect_uri", "https://api.example.com"},
		{"phone", Node{"type": "string"}, "phone", "+1-555-0100"},
		{"email before name", Node{"type": "string"}, "emailName", "user@example.com"},
		{"name before id", Node{"type": "string"}, "nameId", "example_name"},
		{"fallback", Node{"type": "string"}, "title", "example_title"},
		{"fallback keeps case", Node{"type": "string"}, "Title", "example_Title"},
		{"unknown format falls back to name", Node{"type": "string", "format": "ipv4"}, "title", "example_title"},
		{"absent type", Node{}, "title", "example_title"},
		{"unknown type", Node{"type": "null"}, "title", "example_title"},
		{"type that is not a string", Node{"type": 3}, "title", "example_title"},
		{"empty hint", Node{"type": "string"}, "", "example_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Synthesize(tt.node, tt.field, 0))
		})
	}
}

func TestSynthesize_NameHeuristicBeforeFallback(t *testing.T) {
	got := Synthesize(Node{"type": "string"}, "userEmail", 0)
	assert.Equal(t, "user@example.com", got)
	assert.NotEqual(t, "example_userEmail", got)
}

func TestSynthesize_Termination(t *testing.T) {
	t.Run("nil schema", func(t *testing.T) {
		assert.Nil(t, Synthesize(nil, "field", 0))
	})

	t.Run("depth beyond bound", func(t *testing.T) {
		assert.Nil(t, Synthesize(Node{"type": "integer"}, "field", MaxDepth+1))
		assert.Equal(t, 1, Synthesize(Node{"type": "integer"}, "field", MaxDepth))
	})

	t.Run("50 levels of properties", func(t *testing.T) {
		node := Node{"type": "string"}
		for i := 0; i < 50; i++ {
			node = Node{
				"type":       "object",
				"properties": map[string]any{"child": map[string]any(node)},
			}
		}

		var got any
		require.NotPanics(t, func() { got = Example(node) })

		levels := 0
		for {
			m, ok := got.(map[string]any)
			if !ok {
				break
			}
			levels++
			got = m["child"]
		}
		assert.Equal(t, MaxDepth+1, levels)
		assert.Nil(t, got)
	})

	t.Run("self-referential schema", func(t *testing.T) {
		node := Node{"type": "object"}
		node["properties"] = map[string]any{"self": node}

		var got any
		require.NotPanics(t, func() { got = Example(node) })
		assert.NotNil(t, got)
	})

	t.Run("deep allOf chain", func(t *testing.T) {
		node := Node{"type": "boolean"}
		for i := 0; i < 20; i++ {
			node = Node{"allOf": []any{map[string]any(node)}}
		}
		assert.Nil(t, Example(node))
	})
}

func TestSynthesize_DoesNotMutate(t *testing.T) {
	node := Node{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{"type": "array"},
		},
	}
	before := Node{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{"type": "array"},
		},
	}

	_ = Example(node)
	assert.Equal(t, before, node)
}

func TestSynthesizer_CustomLiterals(t *testing.T) {
	lit := DefaultLiterals()
	lit.UUID = "00000000-0000-4000-8000-000000000000"
	lit.Email = "qa@kest.dev"
	s := &Synthesizer{Literals: &lit}

	assert.Equal(t, "00000000-0000-4000-8000-000000000000",
		s.Synthesize(Node{"type": "string", "format": "uuid"}, "field", 0))
	assert.Equal(t, "qa@kest.dev", s.Synthesize(Node{"type": "string"}, "ownerEmail", 0))
	// Unchanged entries keep their defaults.
	assert.Equal(t, "2026-01-01", s.Synthesize(Node{"type": "string", "format": "date"}, "field", 0))
}

func TestSynthesize_Deterministic(t *testing.T) {
	node := Node{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string", "format": "uuid"},
			"at":    map[string]any{"type": "string", "format": "date-time"},
			"items": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
		},
	}
	assert.Equal(t, Example(node), Example(node))
}
