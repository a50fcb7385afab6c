package kest

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-json"

	"github.com/kest-labs/kest-admin/pkg/category"
)

// ===================================================================
// Categories
// ===================================================================
// All methods delegate to /v1/projects/:id/categories/* endpoints

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks a category payload before it is sent. Name is only
// required when creating.
func (r CategoryRequest) Validate(create bool) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(create, validation.Required), validation.Length(0, 100)),
		validation.Field(&r.Color, validation.Match(hexColor).Error("must be a hex color such as #3b82f6")),
		validation.Field(&r.ParentID, validation.NilOrNotEmpty),
	)
}

// CategoryListOptions filters the category list.
type CategoryListOptions struct {
	ListOptions
	IncludeCount bool
}

// ListCategories lists the categories of a project as a flat page.
func (c *Client) ListCategories(ctx context.Context, projectID int64, opts CategoryListOptions) (*Page[Category], error) {
	path := fmt.Sprintf("/v1/projects/%d/categories", projectID)
	query := opts.query("per_page")
	if opts.IncludeCount {
		query["include_count"] = strconv.FormatBool(true)
	}

	var page Page[Category]
	if err := c.doRequest(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return &page, nil
}

// CategoryTree fetches every category of a project and assembles them into a
// forest.
func (c *Client) CategoryTree(ctx context.Context, projectID int64) ([]*category.TreeNode, error) {
	path := fmt.Sprintf("/v1/projects/%d/categories", projectID)

	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, path, map[string]string{"tree": "true"}, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to get category tree: %w", err)
	}

	records, err := category.Unwrap(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to get category tree: %w", err)
	}

	forest := category.Materialize(records)
	c.logger.Debug("materialized category tree",
		"project_id", projectID, "categories", len(records), "roots", len(forest))
	return forest, nil
}

// GetCategory retrieves a category by ID.
func (c *Client) GetCategory(ctx context.Context, projectID, id int64) (*Category, error) {
	path := fmt.Sprintf("/v1/projects/%d/categories/%d", projectID, id)

	var cat Category
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &cat); err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &cat, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, projectID int64, req CategoryRequest) (*Category, error) {
	if err := req.Validate(true); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	path := fmt.Sprintf("/v1/projects/%d/categories", projectID)

	var cat Category
	if err := c.doRequest(ctx, http.MethodPost, path, nil, req, &cat); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &cat, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, projectID, id int64, req CategoryRequest) (*Category, error) {
	if err := req.Validate(false); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	path := fmt.Sprintf("/v1/projects/%d/categories/%d", projectID, id)

	var cat Category
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, req, &cat); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &cat, nil
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, projectID, id int64) error {
	path := fmt.Sprintf("/v1/projects/%d/categories/%d", projectID, id)

	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// SortCategories sets the display order of categories.
func (c *Client) SortCategories(ctx context.Context, projectID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return fmt.Errorf("at least one category ID is required")
	}
	path := fmt.Sprintf("/v1/projects/%d/categories/sort", projectID)

	body := map[string]interface{}{
		"category_ids": categoryIDs,
	}
	if err := c.doRequest(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("failed to sort categories: %w", err)
	}
	return nil
}
