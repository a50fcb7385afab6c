package schema

import (
	"math"
	"reflect"
	"sort"
)

// Node is a loosely typed JSON-Schema-like document, as decoded from JSON or
// YAML into Go values. The backend is free to send partial or unexpected
// shapes, so every accessor tolerates missing keys and wrong value types.
type Node map[string]any

// Property is a named child schema of an object node.
type Property struct {
	Name   string
	Schema Node
}

// Type returns the declared type, or "" when absent or not a string.
func (n Node) Type() string {
	s, _ := n["type"].(string)
	return s
}

// Format returns the declared string format, or "".
func (n Node) Format() string {
	s, _ := n["format"].(string)
	return s
}

// Example returns the example value and whether the key is present. A present
// nil, zero or empty value still counts as present.
func (n Node) Example() (any, bool) {
	v, ok := n["example"]
	return v, ok
}

// Default returns the default value and whether the key is present.
func (n Node) Default() (any, bool) {
	v, ok := n["default"]
	return v, ok
}

// Minimum returns the minimum bound verbatim and whether it is set. A null
// minimum is treated as unset.
func (n Node) Minimum() (any, bool) {
	v, ok := n["minimum"]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Enum returns the enum values, or nil unless enum is a non-empty sequence.
func (n Node) Enum() []any {
	vs := sequence(n["enum"])
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// OneOf returns the oneOf alternatives.
func (n Node) OneOf() []Node { return nodes(n["oneOf"]) }

// AnyOf returns the anyOf alternatives.
func (n Node) AnyOf() []Node { return nodes(n["anyOf"]) }

// AllOf returns the allOf members.
func (n Node) AllOf() []Node { return nodes(n["allOf"]) }

// Items returns the array item schema, or an empty node when items is absent
// or malformed.
func (n Node) Items() Node {
	if items := AsNode(n["items"]); items != nil {
		return items
	}
	return Node{}
}

// Properties returns the object properties sorted by name. Property values
// are read like union members, see child.
func (n Node) Properties() []Property {
	props := AsNode(n["properties"])
	if len(props) == 0 {
		return nil
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Property, 0, len(names))
	for _, name := range names {
		out = append(out, Property{Name: name, Schema: child(props[name])})
	}
	return out
}

// AsNode converts a decoded value into a Node. It returns nil for anything
// that is not an object.
func AsNode(v any) Node {
	switch m := v.(type) {
	case Node:
		return m
	case map[string]any:
		return Node(m)
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps.
		out := make(Node, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out
	}
	return nil
}

func sequence(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []Node:
		out := make([]any, len(s))
		for i, n := range s {
			out[i] = n
		}
		return out
	case []map[string]any:
		out := make([]any, len(s))
		for i, n := range s {
			out[i] = n
		}
		return out
	}
	return nil
}

func nodes(v any) []Node {
	seq := sequence(v)
	if len(seq) == 0 {
		return nil
	}
	out := make([]Node, len(seq))
	for i, item := range seq {
		out[i] = child(item)
	}
	return out
}

// child reads a nested schema value. Objects become nodes, falsy scalars
// (null, false, 0, "") are absent, and any other value is an empty node, so
// it synthesizes as a plain string for its field.
func child(v any) Node {
	if n := AsNode(v); n != nil {
		return n
	}
	if falsy(v) {
		return nil
	}
	return Node{}
}

func falsy(v any) bool {
	if v == nil {
		return true
	}
	if num, ok := v.(interface{ Float64() (float64, error) }); ok {
		f, err := num.Float64()
		return err == nil && (f == 0 || math.IsNaN(f))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}
