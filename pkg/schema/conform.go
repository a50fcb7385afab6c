package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Conforms reports whether value has the shape node declares: objects carry
// exactly the declared property keys and arrays hold at least one element.
// Literal overrides and union members are not checked, and checking stops at
// the same depth bound the synthesizer stops at.
func Conforms(node Node, value any) error {
	return conforms(node, value, 0, "$")
}

func conforms(node Node, value any, depth int, path string) error {
	if node == nil || depth > MaxDepth {
		return nil
	}
	if _, ok := node.Example(); ok {
		return nil
	}
	if _, ok := node.Default(); ok {
		return nil
	}
	if len(node.Enum()) > 0 || len(node.OneOf()) > 0 || len(node.AnyOf()) > 0 || len(node.AllOf()) > 0 {
		return nil
	}

	switch node.Type() {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, value)
		}
		props := node.Properties()
		want := make([]string, 0, len(props))
		for _, p := range props {
			want = append(want, p.Name)
		}
		got := make([]string, 0, len(obj))
		for k := range obj {
			got = append(got, k)
		}
		sort.Strings(got)
		if strings.Join(want, ",") != strings.Join(got, ",") {
			return fmt.Errorf("%s: expected keys [%s], got [%s]",
				path, strings.Join(want, ","), strings.Join(got, ","))
		}
		for _, p := range props {
			if err := conforms(p.Schema, obj[p.Name], depth+1, path+"."+p.Name); err != nil {
				return err
			}
		}
	case "array":
		arr, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, value)
		}
		if len(arr) == 0 {
			return fmt.Errorf("%s: expected at least one element", path)
		}
		for i, item := range arr {
			if err := conforms(node.Items(), item, depth+1, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}
