package kest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ===================================================================
// Test cases
// ===================================================================
// All methods delegate to /v1/projects/:id/test-cases/* endpoints

// TestCaseListOptions filters the test case list.
type TestCaseListOptions struct {
	ListOptions
	APISpecID  int64
	CategoryID int64
	Env        string
	Status     string
}

// ListTestCases lists the test cases of a project.
func (c *Client) ListTestCases(ctx context.Context, projectID int64, opts TestCaseListOptions) (*Page[TestCase], error) {
	path := fmt.Sprintf("/v1/projects/%d/test-cases", projectID)
	query := opts.query("per_page")
	if opts.Search != "" {
		delete(query, "search")
		query["keyword"] = opts.Search
	}
	if opts.APISpecID > 0 {
		query["api_spec_id"] = strconv.FormatInt(opts.APISpecID, 10)
	}
	if opts.CategoryID > 0 {
		query["category_id"] = strconv.FormatInt(opts.CategoryID, 10)
	}
	query["env"] = opts.Env
	query["status"] = opts.Status

	var page Page[TestCase]
	if err := c.doRequest(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}
	return &page, nil
}

// GetTestCase retrieves a test case by ID.
func (c *Client) GetTestCase(ctx context.Context, projectID, id int64) (*TestCase, error) {
	path := fmt.Sprintf("/v1/projects/%d/test-cases/%d", projectID, id)

	var tc TestCase
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &tc); err != nil {
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	return &tc, nil
}

// CreateTestCase creates a test case.
func (c *Client) CreateTestCase(ctx context.Context, projectID int64, req TestCaseRequest) (*TestCase, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("invalid test case: name is required")
	}
	path := fmt.Sprintf("/v1/projects/%d/test-cases", projectID)

	var tc TestCase
	if err := c.doRequest(ctx, http.MethodPost, path, nil, req, &tc); err != nil {
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}
	return &tc, nil
}

// UpdateTestCase updates a test case.
func (c *Client) UpdateTestCase(ctx context.Context, projectID, id int64, req TestCaseRequest) (*TestCase, error) {
	path := fmt.Sprintf("/v1/projects/%d/test-cases/%d", projectID, id)

	var tc TestCase
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, req, &tc); err != nil {
		return nil, fmt.Errorf("failed to update test case: %w", err)
	}
	return &tc, nil
}

// DeleteTestCase deletes a test case.
func (c *Client) DeleteTestCase(ctx context.Context, projectID, id int64) error {
	path := fmt.Sprintf("/v1/projects/%d/test-cases/%d", projectID, id)

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete test case: %w", err)
	}
	return nil
}

// RunTestCase asks the backend to run a test case against an environment.
// An empty environment uses the test case's own.
func (c *Client) RunTestCase(ctx context.Context, projectID, id int64, environment string) (*TestRunResult, error) {
	path := fmt.Sprintf("/v1/projects/%d/test-cases/%d/run", projectID, id)

	body := map[string]interface{}{}
	if environment != "" {
		body["environment"] = environment
	}

	var result TestRunResult
	if err := c.doRequest(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, fmt.Errorf("failed to run test case: %w", err)
	}
	return &result, nil
}
