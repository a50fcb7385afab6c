package kest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ===================================================================
// Projects
// ===================================================================
// All methods delegate to /v1/projects/* endpoints

// ProjectListOptions filters the project list.
type ProjectListOptions struct {
	ListOptions
	Platform string
	Status   *int
}

// ListProjects lists the projects visible to the token owner.
func (c *Client) ListProjects(ctx context.Context, opts ProjectListOptions) (*Page[Project], error) {
	query := opts.query("per_page")
	query["platform"] = opts.Platform
	if opts.Status != nil {
		query["status"] = strconv.Itoa(*opts.Status)
	}

	var page Page[Project]
	if err := c.doRequest(ctx, http.MethodGet, "/v1/projects", query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return &page, nil
}

// GetProject retrieves a project by ID.
func (c *Client) GetProject(ctx context.Context, id int64) (*Project, error) {
	path := fmt.Sprintf("/v1/projects/%d", id)

	var project Project
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &project); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := c.doRequest(ctx, http.MethodPost, "/v1/projects", nil, req, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, id int64, req UpdateProjectRequest) (*Project, error) {
	path := fmt.Sprintf("/v1/projects/%d", id)

	var project Project
	if err := c.doRequest(ctx, http.MethodPut, path, nil, req, &project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/v1/projects/%d", id)

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GetProjectDSN retrieves the ingest DSN of a project.
func (c *Client) GetProjectDSN(ctx context.Context, id int64) (*ProjectDSN, error) {
	path := fmt.Sprintf("/v1/projects/%d/dsn", id)

	var dsn ProjectDSN
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &dsn); err != nil {
		return nil, fmt.Errorf("failed to get project DSN: %w", err)
	}
	return &dsn, nil
}
