// Package example prepares request/response examples for API specs.
//
// A Draft is pre-filled from an APISpec: bodies are synthesized from the
// request and response schemas, headers default to JSON. The user edits the
// draft as text and hands it back as a Submission, which is validated and
// turned into the payload the backend stores.
package example

import (
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kest-labs/kest-admin/pkg/kest"
	"github.com/kest-labs/kest-admin/pkg/schema"
)

const (
	// DefaultStatus is used when a spec declares no 2xx response.
	DefaultStatus = "200"

	// DefaultMethod is used when a spec has no method.
	DefaultMethod = "GET"

	// DefaultContentType is used when a spec has no content type.
	DefaultContentType = "application/json"

	requestHint  = "request"
	responseHint = "response"
)

var statusKey = regexp.MustCompile(`^\d{3}$`)

// Draft is an editable example. The header and body fields hold
// two-space indented JSON text.
type Draft struct {
	Path            string `json:"path" yaml:"path"`
	Method          string `json:"method" yaml:"method"`
	Status          string `json:"status" yaml:"status"`
	Description     string `json:"description" yaml:"description"`
	Headers         string `json:"headers" yaml:"headers"`
	RequestBody     string `json:"request_body" yaml:"request_body"`
	ResponseHeaders string `json:"response_headers" yaml:"response_headers"`
	ResponseBody    string `json:"response_body" yaml:"response_body"`
}

// Submission returns the draft as a submission.
func (d Draft) Submission() Submission {
	return Submission(d)
}

// PreferredStatus returns the first three-digit 2xx response key of spec in
// ascending order, or DefaultStatus.
func PreferredStatus(spec *kest.APISpec) string {
	for _, code := range responseKeys(spec) {
		if !statusKey.MatchString(code) {
			continue
		}
		if n, _ := strconv.Atoi(code); n >= 200 && n < 300 {
			return code
		}
	}
	return DefaultStatus
}

// ResponseFor returns the response declared for status. When there is none
// it falls back to the first response in key order.
func ResponseFor(spec *kest.APISpec, status string) (kest.Response, bool) {
	if spec == nil || len(spec.Responses) == 0 {
		return kest.Response{}, false
	}
	if resp, ok := spec.Responses[status]; ok {
		return resp, true
	}
	return spec.Responses[responseKeys(spec)[0]], true
}

func responseKeys(spec *kest.APISpec) []string {
	if spec == nil {
		return nil
	}
	keys := make([]string, 0, len(spec.Responses))
	for k := range spec.Responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDraft pre-fills an example for spec. A nil synth uses the default
// literal table.
func NewDraft(spec *kest.APISpec, synth *schema.Synthesizer) Draft {
	if spec == nil {
		spec = &kest.APISpec{}
	}
	if synth == nil {
		synth = &schema.Synthesizer{}
	}

	status := PreferredStatus(spec)
	resp, hasResp := ResponseFor(spec, status)

	requestContentType := DefaultContentType
	var requestBody any = map[string]any{
		"name":        "example_name",
		"description": "example_description",
	}
	if rb := spec.RequestBody; rb != nil {
		if rb.ContentType != "" {
			requestContentType = rb.ContentType
		}
		if rb.Schema != nil {
			requestBody = synth.Synthesize(rb.Schema, requestHint, 0)
		}
	}

	responseContentType := DefaultContentType
	code, _ := strconv.Atoi(status)
	var responseBody any = map[string]any{
		"success": code < 400,
		"message": failureMessage(code),
		"data":    map[string]any{},
	}
	if hasResp {
		if resp.ContentType != "" {
			responseContentType = resp.ContentType
		}
		if resp.Schema != nil {
			responseBody = synth.Synthesize(resp.Schema, responseHint, 0)
		}
	}

	method := spec.Method
	if method == "" {
		method = DefaultMethod
	}

	return Draft{
		Path:            spec.Path,
		Method:          method,
		Status:          status,
		Description:     strings.TrimSpace(method + " " + spec.Path + " example"),
		Headers:         pretty(map[string]any{"Content-Type": requestContentType}),
		RequestBody:     pretty(requestBody),
		ResponseHeaders: pretty(map[string]any{"Content-Type": responseContentType}),
		ResponseBody:    pretty(responseBody),
	}
}

func failureMessage(code int) string {
	if code < 400 {
		return "ok"
	}
	return "request_failed"
}

// pretty renders v as two-space indented JSON without HTML escaping.
// Synthesized values are plain JSON data, so encoding cannot fail.
func pretty(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimRight(buf.String(), "\n")
}
