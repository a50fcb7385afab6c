package kest

import (
	"context"
	"fmt"
	"net/http"
)

// ===================================================================
// Environments
// ===================================================================
// All methods delegate to /v1/projects/:id/environments/* endpoints

// ListEnvironments lists the environments of a project.
func (c *Client) ListEnvironments(ctx context.Context, projectID int64) ([]Environment, error) {
	path := fmt.Sprintf("/v1/projects/%d/environments", projectID)

	var page Page[Environment]
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list environments: %w", err)
	}
	return page.Items, nil
}

// CreateEnvironment creates an environment in a project.
func (c *Client) CreateEnvironment(ctx context.Context, projectID int64, req EnvironmentRequest) (*Environment, error) {
	path := fmt.Sprintf("/v1/projects/%d/environments", projectID)
	req.ProjectID = projectID

	var env Environment
	if err := c.doRequest(ctx, http.MethodPost, path, nil, req, &env); err != nil {
		return nil, fmt.Errorf("failed to create environment: %w", err)
	}
	return &env, nil
}

// UpdateEnvironment updates an environment.
func (c *Client) UpdateEnvironment(ctx context.Context, projectID, id int64, req EnvironmentRequest) (*Environment, error) {
	path := fmt.Sprintf("/v1/projects/%d/environments/%d", projectID, id)

	var env Environment
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, req, &env); err != nil {
		return nil, fmt.Errorf("failed to update environment: %w", err)
	}
	return &env, nil
}

// DeleteEnvironment deletes an environment.
func (c *Client) DeleteEnvironment(ctx context.Context, projectID, id int64) error {
	path := fmt.Sprintf("/v1/projects/%d/environments/%d", projectID, id)

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}
	return nil
}
