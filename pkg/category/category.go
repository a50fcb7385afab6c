package category

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Record is a category as returned by the Kest backend. Only ID and ParentID
// matter for tree construction; the remaining fields are carried through
// untouched.
type Record struct {
	ID             int64   `json:"id" yaml:"id"`
	ProjectID      int64   `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ParentID       *int64  `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Name           string  `json:"name" yaml:"name"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	Color          string  `json:"color,omitempty" yaml:"color,omitempty"`
	Icon           string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	SortOrder      int     `json:"sort_order" yaml:"sort_order"`
	TestCasesCount *int    `json:"test_cases_count,omitempty" yaml:"test_cases_count,omitempty"`
	ParentName     *string `json:"parent_name,omitempty" yaml:"parent_name,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// HasParent reports whether the record names a parent. The backend never
// issues id 0, so a zero parent is treated the same as none.
func (r Record) HasParent() bool {
	return r.ParentID != nil && *r.ParentID != 0
}

// Unwrap decodes a category list response body. The backend answers either
// with a bare array or with an object carrying the array under "items" or
// "data".
func Unwrap(body []byte) ([]Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []Record{}, nil
	}

	if body[0] == '[' {
		var records []Record
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("error decoding category list: %w", err)
		}
		return records, nil
	}

	var envelope struct {
		Items json.RawMessage `json:"items"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("error decoding category envelope: %w", err)
	}

	for _, raw := range []json.RawMessage{envelope.Items, envelope.Data} {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("error decoding category list: %w", err)
		}
		return records, nil
	}

	// A "data" object may wrap a paginated "items" list.
	if raw := bytes.TrimSpace(envelope.Data); len(raw) > 0 && raw[0] == '{' {
		return Unwrap(raw)
	}

	return []Record{}, nil
}
