package kest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ===================================================================
// API specs and examples
// ===================================================================
// All methods delegate to /v1/projects/:id/api-specs/* endpoints

// Methods accepted by the backend for API specs.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// ExportFormats accepted by ExportAPISpecs.
var ExportFormats = []string{"json", "openapi", "markdown"}

// APISpecListOptions filters the API spec list.
type APISpecListOptions struct {
	ListOptions
	Version string
}

// Validate checks an API spec payload before it is sent. Method, path and
// summary are only required when creating.
func (r APISpecRequest) Validate(create bool) error {
	methods := make([]interface{}, len(Methods))
	for i, m := range Methods {
		methods[i] = m
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Method, validation.When(create, validation.Required), validation.In(methods...)),
		validation.Field(&r.Path, validation.When(create, validation.Required),
			validation.By(func(v interface{}) error {
				if p, _ := v.(string); p != "" && !strings.HasPrefix(p, "/") {
					return fmt.Errorf("must start with /")
				}
				return nil
			})),
		validation.Field(&r.Summary, validation.When(create, validation.Required)),
	)
}

// ListAPISpecs lists the API specs of a project.
func (c *Client) ListAPISpecs(ctx context.Context, projectID int64, opts APISpecListOptions) (*Page[APISpec], error) {
	path := fmt.Sprintf("/v1/projects/%d/api-specs", projectID)
	query := opts.query("page_size")
	query["version"] = opts.Version

	var page Page[APISpec]
	if err := c.doRequest(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list API specs: %w", err)
	}
	return &page, nil
}

// GetAPISpec retrieves an API spec by ID.
func (c *Client) GetAPISpec(ctx context.Context, projectID, id int64) (*APISpec, error) {
	path := fmt.Sprintf("/v1/projects/%d/api-specs/%d", projectID, id)

	var spec APISpec
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &spec); err != nil {
		return nil, fmt.Errorf("failed to get API spec: %w", err)
	}
	return &spec, nil
}

// GetAPISpecWithExamples retrieves an API spec together with its stored
// examples.
func (c *Client) GetAPISpecWithExamples(ctx context.Context, projectID, id int64) (*APISpec, error) {
	path := fmt.Sprintf("/v1/projects/%d/api-specs/%d/full", projectID, id)

	var spec APISpec
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &spec); err != nil {
		return nil, fmt.Errorf("failed to get API spec with examples: %w", err)
	}
	return &spec, nil
}

// CreateAPISpec creates an API spec.
func (c *Client) CreateAPISpec(ctx context.Context, projectID int64, req APISpecRequest) (*APISpec, error) {
	req.Method = strings.ToUpper(req.Method)
	if err := req.Validate(true); err != nil {
		return nil, fmt.Errorf("invalid API spec: %w", err)
	}
	path := fmt.Sprintf("/v1/projects/%d/api-specs", projectID)

	var spec APISpec
	if err := c.doRequest(ctx, http.MethodPost, path, nil, req, &spec); err != nil {
		return nil, fmt.Errorf("failed to create API spec: %w", err)
	}
	return &spec, nil
}

// UpdateAPISpec updates an API spec.
func (c *Client) UpdateAPISpec(ctx context.Context, projectID, id int64, req APISpecRequest) (*APISpec, error) {
	req.Method = strings.ToUpper(req.Method)
	if err := req.Validate(false); err != nil {
		return nil, fmt.Errorf("invalid API spec: %w", err)
	}
	path := fmt.Sprintf("/v1/projects/%d/api-specs/%d", projectID, id)

	var spec APISpec
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, req, &spec); err != nil {
		return nil, fmt.Errorf("failed to update API spec: %w", err)
	}
	return &spec, nil
}

// DeleteAPISpec deletes an API spec.
func (c *Client) DeleteAPISpec(ctx context.Context, projectID, id int64) error {
	path := fmt.Sprintf("/v1/projects/%d/api-specs/%d", projectID, id)

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete API spec: %w", err)
	}
	return nil
}

// ImportAPISpecs creates API specs in bulk.
func (c *Client) ImportAPISpecs(ctx context.Context, projectID int64, specs []APISpecRequest) (string, error) {
	for i := range specs {
		specs[i].Method = strings.ToUpper(specs[i].Method)
		if err := specs[i].Validate(true); err != nil {
			return "", fmt.Errorf("invalid API spec #%d: %w", i, err)
		}
	}
	path := fmt.Sprintf("/v1/projects/%d/api-specs/import", projectID)

	body := map[string]interface{}{
		"specs": specs,
	}
	var result struct {
		Message string `json:"message"`
	}
	if err := c.doRequest(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return "", fmt.Errorf("failed to import API specs: %w", err)
	}
	return result.Message, nil
}

// ExportAPISpecs exports every API spec of a project in the given format and
// returns the raw document.
func (c *Client) ExportAPISpecs(ctx context.Context, projectID int64, format string) ([]byte, error) {
	if err := validation.Validate(format, validation.Required, validation.In(toInterfaces(ExportFormats)...)); err != nil {
		return nil, fmt.Errorf("invalid export format %q: %w", format, err)
	}
	path := fmt.Sprintf("/v1/projects/%d/api-specs/export", projectID)

	var doc []byte
	if err := c.doRequest(ctx, http.MethodGet, path, map[string]string{"format": format}, nil, &doc); err != nil {
		return nil, fmt.Errorf("failed to export API specs: %w", err)
	}
	return doc, nil
}

// AddExample stores an example on an API spec.
func (c *Client) AddExample(ctx context.Context, projectID, specID int64, req CreateExampleRequest) (*APIExample, error) {
	path := fmt.Sprintf("/v1/projects/%d/api-specs/%d/examples", projectID, specID)

	var example APIExample
	if err := c.doRequest(ctx, http.MethodPost, path, nil, req, &example); err != nil {
		return nil, fmt.Errorf("failed to add example: %w", err)
	}
	c.logger.Info("stored example",
		"api_spec_id", specID, "example_id", example.ID, "status", req.ResponseStatus)
	return &example, nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
