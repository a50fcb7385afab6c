package example

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"

	"github.com/kest-labs/kest-admin/pkg/kest"
)

// Submission is an edited Draft on its way to the backend.
type Submission struct {
	Path            string `json:"path" yaml:"path"`
	Method          string `json:"method" yaml:"method"`
	Status          string `json:"status" yaml:"status"`
	Description     string `json:"description" yaml:"description"`
	Headers         string `json:"headers" yaml:"headers"`
	RequestBody     string `json:"request_body" yaml:"request_body"`
	ResponseHeaders string `json:"response_headers" yaml:"response_headers"`
	ResponseBody    string `json:"response_body" yaml:"response_body"`
}

var (
	errStatusRange = errors.New("Status code must be between 100 and 599")
	errPath        = errors.New("Path is required")
	errMethod      = errors.New("Method is required")
)

// Validate checks the status, path and method. The returned error is a
// validation.Errors keyed by field.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Status, validation.By(func(interface{}) error {
			_, err := s.StatusCode()
			return err
		})),
		validation.Field(&s.Path, validation.By(notBlank(errPath))),
		validation.Field(&s.Method, validation.By(notBlank(errMethod))),
	)
}

// StatusCode parses Status. Integral numeric forms such as "201.0" are
// accepted.
func (s Submission) StatusCode() (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Status), 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f < 100 || f > 599 {
		return 0, errStatusRange
	}
	return int(f), nil
}

// Build validates the submission and assembles the create request. All
// malformed JSON fields are reported together. Response headers are checked
// but not sent: the backend does not store them.
func (s Submission) Build() (kest.CreateExampleRequest, error) {
	if err := s.Validate(); err != nil {
		return kest.CreateExampleRequest{}, err
	}
	status, _ := s.StatusCode()

	var result *multierror.Error

	headers, err := parseJSON(s.Headers, "Request headers")
	result = multierror.Append(result, err)
	requestBody, err := parseJSON(s.RequestBody, "Request body")
	result = multierror.Append(result, err)
	_, err = parseJSON(s.ResponseHeaders, "Response headers")
	result = multierror.Append(result, err)
	responseBody, err := parseJSON(s.ResponseBody, "Response body")
	result = multierror.Append(result, err)

	var headerMap map[string]any
	if headers != nil {
		m, ok := headers.(map[string]any)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("Request headers must be a JSON object"))
		}
		headerMap = m
	}

	if err := result.ErrorOrNil(); err != nil {
		return kest.CreateExampleRequest{}, err
	}

	return kest.CreateExampleRequest{
		Name:           s.name(status),
		RequestHeaders: headerMap,
		RequestBody:    requestBody,
		ResponseStatus: status,
		ResponseBody:   responseBody,
	}, nil
}

func (s Submission) name(status int) string {
	if d := strings.TrimSpace(s.Description); d != "" {
		return d
	}
	return fmt.Sprintf("%s %s (%d)",
		strings.ToUpper(strings.TrimSpace(s.Method)), strings.TrimSpace(s.Path), status)
}

// parseJSON decodes a JSON text field. Blank text yields nil.
func parseJSON(text, label string) (any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	invalid := fmt.Errorf("%s must be valid JSON", label)
	if !json.Valid([]byte(trimmed)) {
		return nil, invalid
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, invalid
	}
	return v, nil
}

func notBlank(err error) validation.RuleFunc {
	return func(value interface{}) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}
