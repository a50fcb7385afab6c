package kest

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/kest-labs/kest-admin/pkg/category"
	"github.com/kest-labs/kest-admin/pkg/schema"
)

// Page is a paginated list. The backend sends either a bare array or an
// object with items and paging counters.
type Page[T any] struct {
	Items      []T         `json:"items" yaml:"items"`
	Total      int         `json:"total,omitempty" yaml:"total,omitempty"`
	Page       int         `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage    int         `json:"per_page,omitempty" yaml:"per_page,omitempty"`
	Pages      int         `json:"pages,omitempty" yaml:"pages,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// Pagination is the detailed paging block some list endpoints add.
type Pagination struct {
	Page       int  `json:"page" yaml:"page"`
	PerPage    int  `json:"per_page" yaml:"per_page"`
	Total      int  `json:"total" yaml:"total"`
	TotalPages int  `json:"total_pages" yaml:"total_pages"`
	HasNext    bool `json:"has_next" yaml:"has_next"`
	HasPrev    bool `json:"has_prev" yaml:"has_prev"`
}

// UnmarshalJSON accepts a bare array as a single page.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*p = Page[T]{Items: items, Total: len(items)}
		return nil
	}

	var out pageFields[T]
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*p = Page[T](out)
	return nil
}

// pageFields has Page's fields without its UnmarshalJSON method.
type pageFields[T any] Page[T]

// ListOptions are the paging and search parameters shared by list endpoints.
type ListOptions struct {
	Page    int
	PerPage int
	Search  string
}

func (o ListOptions) query(perPageKey string) map[string]string {
	q := map[string]string{}
	if o.Page > 0 {
		q["page"] = strconv.Itoa(o.Page)
	}
	if o.PerPage > 0 {
		q[perPageKey] = strconv.Itoa(o.PerPage)
	}
	if o.Search != "" {
		q["search"] = o.Search
	}
	return q
}

// Project is a Kest project.
type Project struct {
	ID                 int64  `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	Slug               string `json:"slug" yaml:"slug"`
	Description        string `json:"description,omitempty" yaml:"description,omitempty"`
	BaseURL            string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	PublicKey          string `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	DSN                string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
	Platform           string `json:"platform,omitempty" yaml:"platform,omitempty"`
	Status             int    `json:"status" yaml:"status"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute,omitempty" yaml:"rate_limit_per_minute,omitempty"`
	OwnerID            int64  `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	CreatedAt          string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt          string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest is the payload for updating a project. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	Name               *string `json:"name,omitempty"`
	Platform           *string `json:"platform,omitempty"`
	Status             *int    `json:"status,omitempty"`
	RateLimitPerMinute *int    `json:"rate_limit_per_minute,omitempty"`
	Description        *string `json:"description,omitempty"`
}

// ProjectDSN is the ingest DSN of a project.
type ProjectDSN struct {
	DSN         string `json:"dsn" yaml:"dsn"`
	PublicKey   string `json:"public_key" yaml:"public_key"`
	ProjectID   int64  `json:"project_id" yaml:"project_id"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// Environment is a named target (base URL, variables, headers) of a project.
type Environment struct {
	ID        int64             `json:"id" yaml:"id"`
	ProjectID int64             `json:"project_id" yaml:"project_id"`
	Name      string            `json:"name" yaml:"name"`
	BaseURL   string            `json:"base_url" yaml:"base_url"`
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Headers   map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	CreatedAt string            `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string            `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// EnvironmentRequest is the payload for creating or updating an environment.
type EnvironmentRequest struct {
	ProjectID int64             `json:"project_id,omitempty"`
	Name      string            `json:"name,omitempty"`
	BaseURL   string            `json:"base_url,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// Category is an API category record.
type Category = category.Record

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
	SortOrder   *int   `json:"sort_order,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// APISpec is the definition of one endpoint.
type APISpec struct {
	ID          int64               `json:"id" yaml:"id"`
	ProjectID   int64               `json:"project_id" yaml:"project_id"`
	CategoryID  *int64              `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Method      string              `json:"method" yaml:"method"`
	Path        string              `json:"path" yaml:"path"`
	Summary     string              `json:"summary" yaml:"summary"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string              `json:"status,omitempty" yaml:"status,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Version     string              `json:"version,omitempty" yaml:"version,omitempty"`
	IsPublic    bool                `json:"is_public" yaml:"is_public"`
	DocMarkdown string              `json:"doc_markdown,omitempty" yaml:"doc_markdown,omitempty"`
	DocSource   string              `json:"doc_source,omitempty" yaml:"doc_source,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"request_body,omitempty" yaml:"request_body,omitempty"`
	Responses   map[string]Response `json:"responses,omitempty" yaml:"responses,omitempty"`
	MockEnabled bool                `json:"mock_enabled,omitempty" yaml:"mock_enabled,omitempty"`
	MockData    any                 `json:"mock_data,omitempty" yaml:"mock_data,omitempty"`
	Examples    []APIExample        `json:"examples,omitempty" yaml:"examples,omitempty"`
	CreatedAt   string              `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string              `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Parameter is a path, query, header or cookie parameter of an API spec.
type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	In          string      `json:"in" yaml:"in"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required" yaml:"required"`
	Schema      schema.Node `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example     any         `json:"example,omitempty" yaml:"example,omitempty"`
}

// RequestBody describes the request payload of an API spec.
type RequestBody struct {
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool        `json:"required" yaml:"required"`
	ContentType string      `json:"content_type" yaml:"content_type"`
	Schema      schema.Node `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Response describes one response of an API spec, keyed by status code.
type Response struct {
	Description string      `json:"description" yaml:"description"`
	ContentType string      `json:"content_type" yaml:"content_type"`
	Schema      schema.Node `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// APISpecRequest is the payload for creating or updating an API spec.
type APISpecRequest struct {
	CategoryID  *int64              `json:"category_id,omitempty"`
	Method      string              `json:"method,omitempty"`
	Path        string              `json:"path,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Version     string              `json:"version,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"request_body,omitempty"`
	Responses   map[string]Response `json:"responses,omitempty"`
	IsPublic    *bool               `json:"is_public,omitempty"`
	DocMarkdown *string             `json:"doc_markdown,omitempty"`
	DocSource   string              `json:"doc_source,omitempty"`
}

// APIExample is a stored request/response example of an API spec.
type APIExample struct {
	ID              int64             `json:"id" yaml:"id"`
	APISpecID       int64             `json:"api_spec_id" yaml:"api_spec_id"`
	Name            string            `json:"name" yaml:"name"`
	Method          string            `json:"method,omitempty" yaml:"method,omitempty"`
	Path            string            `json:"path,omitempty" yaml:"path,omitempty"`
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	RequestHeaders  map[string]string `json:"request_headers,omitempty" yaml:"request_headers,omitempty"`
	RequestBody     any               `json:"request_body,omitempty" yaml:"request_body,omitempty"`
	ResponseHeaders map[string]string `json:"response_headers,omitempty" yaml:"response_headers,omitempty"`
	ResponseStatus  int               `json:"response_status" yaml:"response_status"`
	ResponseBody    any               `json:"response_body,omitempty" yaml:"response_body,omitempty"`
	DurationMS      int64             `json:"duration_ms" yaml:"duration_ms"`
	CreatedAt       string            `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// CreateExampleRequest is the payload for storing an example on an API spec.
type CreateExampleRequest struct {
	Name           string         `json:"name"`
	RequestHeaders map[string]any `json:"request_headers,omitempty"`
	RequestBody    any            `json:"request_body,omitempty"`
	ResponseStatus int            `json:"response_status"`
	ResponseBody   any            `json:"response_body,omitempty"`
	DurationMS     int64          `json:"duration_ms,omitempty"`
}

// TestCase is a stored test case.
type TestCase struct {
	ID               int64                `json:"id" yaml:"id"`
	APISpecID        *int64               `json:"api_spec_id,omitempty" yaml:"api_spec_id,omitempty"`
	Name             string               `json:"name" yaml:"name"`
	Description      string               `json:"description,omitempty" yaml:"description,omitempty"`
	Method           string               `json:"method,omitempty" yaml:"method,omitempty"`
	Path             string               `json:"path,omitempty" yaml:"path,omitempty"`
	Environment      string               `json:"environment,omitempty" yaml:"environment,omitempty"`
	CategoryID       *int64               `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	Status           string               `json:"status,omitempty" yaml:"status,omitempty"`
	LastRunAt        string               `json:"last_run_at,omitempty" yaml:"last_run_at,omitempty"`
	LastRunStatus    string               `json:"last_run_status,omitempty" yaml:"last_run_status,omitempty"`
	RequestHeaders   map[string]string    `json:"request_headers,omitempty" yaml:"request_headers,omitempty"`
	QueryParams      map[string]any       `json:"query_params,omitempty" yaml:"query_params,omitempty"`
	PathParams       map[string]any       `json:"path_params,omitempty" yaml:"path_params,omitempty"`
	RequestBody      any                  `json:"request_body,omitempty" yaml:"request_body,omitempty"`
	ExpectedStatus   int                  `json:"expected_status,omitempty" yaml:"expected_status,omitempty"`
	ExpectedResponse any                  `json:"expected_response,omitempty" yaml:"expected_response,omitempty"`
	Variables        map[string]any       `json:"variables,omitempty" yaml:"variables,omitempty"`
	PreScript        string               `json:"pre_script,omitempty" yaml:"pre_script,omitempty"`
	PostScript       string               `json:"post_script,omitempty" yaml:"post_script,omitempty"`
	Assertions       []Assertion          `json:"assertions,omitempty" yaml:"assertions,omitempty"`
	ExtractVars      []VariableExtraction `json:"extract_vars,omitempty" yaml:"extract_vars,omitempty"`
	CreatedAt        string               `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt        string               `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Assertion is a check evaluated by the backend after running a test case.
type Assertion struct {
	Type     string `json:"type" yaml:"type"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Key      string `json:"key,omitempty" yaml:"key,omitempty"`
	Operator string `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value    any    `json:"value,omitempty" yaml:"value,omitempty"`
	Actual   any    `json:"actual,omitempty" yaml:"actual,omitempty"`
	Passed   *bool  `json:"passed,omitempty" yaml:"passed,omitempty"`
}

// VariableExtraction captures a value from a response into a variable.
type VariableExtraction struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// TestCaseRequest is the payload for creating or updating a test case.
type TestCaseRequest struct {
	APISpecID        *int64               `json:"api_spec_id,omitempty"`
	Name             string               `json:"name,omitempty"`
	Description      string               `json:"description,omitempty"`
	Method           string               `json:"method,omitempty"`
	Path             string               `json:"path,omitempty"`
	Environment      string               `json:"environment,omitempty"`
	RequestHeaders   map[string]string    `json:"request_headers,omitempty"`
	QueryParams      map[string]any       `json:"query_params,omitempty"`
	PathParams       map[string]any       `json:"path_params,omitempty"`
	RequestBody      any                  `json:"request_body,omitempty"`
	ExpectedStatus   int                  `json:"expected_status,omitempty"`
	ExpectedResponse any                  `json:"expected_response,omitempty"`
	Variables        map[string]any       `json:"variables,omitempty"`
	Assertions       []Assertion          `json:"assertions,omitempty"`
	ExtractVars      []VariableExtraction `json:"extract_vars,omitempty"`
}

// TestRunResult is the backend's report for a single test case run.
type TestRunResult struct {
	TestRunID   string         `json:"test_run_id,omitempty" yaml:"test_run_id,omitempty"`
	Status      string         `json:"status,omitempty" yaml:"status,omitempty"`
	Duration    int64          `json:"duration,omitempty" yaml:"duration,omitempty"`
	StartedAt   string         `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	CompletedAt string         `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Request     map[string]any `json:"request,omitempty" yaml:"request,omitempty"`
	Response    map[string]any `json:"response,omitempty" yaml:"response,omitempty"`
	Assertions  []Assertion    `json:"assertions,omitempty" yaml:"assertions,omitempty"`
	Error       any            `json:"error,omitempty" yaml:"error,omitempty"`
}

// AuditLog is one audited backend request.
type AuditLog struct {
	ID        int64  `json:"id" yaml:"id"`
	UserID    int64  `json:"user_id" yaml:"user_id"`
	Action    string `json:"action" yaml:"action"`
	Resource  string `json:"resource" yaml:"resource"`
	Method    string `json:"method" yaml:"method"`
	Path      string `json:"path" yaml:"path"`
	IP        string `json:"ip" yaml:"ip"`
	UserAgent string `json:"user_agent" yaml:"user_agent"`
	Status    int    `json:"status" yaml:"status"`
	Duration  int64  `json:"duration" yaml:"duration"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}
