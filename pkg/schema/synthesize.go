package schema

import "strings"

const (
	// MaxDepth is the deepest recursion level that still produces a value.
	MaxDepth = 5

	// DefaultFieldName is the hint used when the caller has none.
	DefaultFieldName = "field"
)

// Synthesizer builds one illustrative example value from a schema node.
// The zero value uses DefaultLiterals. A Synthesizer is safe for concurrent
// use.
type Synthesizer struct {
	Literals *Literals
}

var defaultSynthesizer = &Synthesizer{}

// Example synthesizes a value for node with the default field name hint.
func Example(node Node) any {
	return defaultSynthesizer.Synthesize(node, DefaultFieldName, 0)
}

// Synthesize synthesizes a value for node using the default literal table.
func Synthesize(node Node, fieldName string, depth int) any {
	return defaultSynthesizer.Synthesize(node, fieldName, depth)
}

// Synthesize returns one example value conforming to node. fieldName is only
// used to guess plausible strings; depth starts at 0 and bounds recursion.
// It never fails: unknown or malformed input degrades to a generic string.
func (s *Synthesizer) Synthesize(node Node, fieldName string, depth int) any {
	if node == nil || depth > MaxDepth {
		return nil
	}

	if v, ok := node.Example(); ok {
		return v
	}
	if v, ok := node.Default(); ok {
		return v
	}
	if enum := node.Enum(); len(enum) > 0 {
		return enum[0]
	}

	for _, alternatives := range [][]Node{node.OneOf(), node.AnyOf(), node.AllOf()} {
		if len(alternatives) > 0 {
			return s.Synthesize(alternatives[0], fieldName, depth+1)
		}
	}

	switch node.Type() {
	case "object":
		result := map[string]any{}
		for _, prop := range node.Properties() {
			result[prop.Name] = s.Synthesize(prop.Schema, prop.Name, depth+1)
		}
		return result
	case "array":
		return []any{s.Synthesize(node.Items(), fieldName, depth+1)}
	case "integer":
		if v, ok := node.Minimum(); ok {
			return v
		}
		return 1
	case "number":
		if v, ok := node.Minimum(); ok {
			return v
		}
		return 1.23
	case "boolean":
		return true
	}

	return s.stringValue(node.Format(), fieldName)
}

func (s *Synthesizer) literals() Literals {
	if s == nil || s.Literals == nil {
		return DefaultLiterals()
	}
	return *s.Literals
}

func (s *Synthesizer) stringValue(format, fieldName string) string {
	lit := s.literals()

	switch format {
	case "date-time":
		return lit.DateTime
	case "date":
		return lit.Date
	case "uuid":
		return lit.UUID
	case "email":
		return lit.Email
	case "uri", "url":
		return lit.URL
	}

	key := strings.ToLower(fieldName)
	switch {
	case strings.Contains(key, "email"):
		return lit.Email
	case strings.Contains(key, "name"):
		return lit.Name
	case strings.Contains(key, "id"):
		return lit.ID
	case strings.Contains(key, "token"), strings.Contains(key, "auth"):
		return lit.Token
	case strings.Contains(key, "url"), strings.Contains(key, "uri"):
		return lit.URL
	case strings.Contains(key, "phone"):
		return lit.Phone
	}

	if fieldName == "" {
		return "example_value"
	}
	return "example_" + fieldName
}
