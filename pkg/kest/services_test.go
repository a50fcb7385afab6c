package kest

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestCategoryTree(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/3/categories", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("tree"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"items":[
			{"id":1,"name":"Users","sort_order":0},
			{"id":2,"name":"Auth","parent_id":1,"sort_order":0},
			{"id":3,"name":"Orders","parent_id":null,"sort_order":1},
			{"id":4,"name":"Orphan","parent_id":42,"sort_order":0}
		],"total":4}}`)
	})

	forest, err := c.CategoryTree(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, forest, 3)

	assert.Equal(t, int64(1), forest[0].ID)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Auth", forest[0].Children[0].Name)
	assert.Equal(t, int64(3), forest[1].ID)
	assert.Equal(t, int64(4), forest[2].ID)
}

func TestCategoryTree_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[]}`)
	})

	forest, err := c.CategoryTree(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestCategoryRequest_Validate(t *testing.T) {
	parent := int64(0)
	tests := []struct {
		name      string
		req       CategoryRequest
		create    bool
		wantError bool
	}{
		{name: "valid create", req: CategoryRequest{Name: "Users", Color: "#3b82f6"}, create: true},
		{name: "missing name on create", req: CategoryRequest{}, create: true, wantError: true},
		{name: "missing name on update", req: CategoryRequest{Description: "x"}},
		{name: "bad color", req: CategoryRequest{Name: "Users", Color: "blue"}, create: true, wantError: true},
		{name: "short color", req: CategoryRequest{Name: "Users", Color: "#fff"}, create: true},
		{name: "zero parent", req: CategoryRequest{Name: "Users", ParentID: &parent}, create: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.create)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body := decodeBody(t, r)
		assert.Equal(t, "Users", body["name"])
		assert.Equal(t, float64(1), body["parent_id"])
		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":9,"name":"Users","parent_id":1,"sort_order":0}}`)
	})

	parent := int64(1)
	cat, err := c.CreateCategory(context.Background(), 3, CategoryRequest{Name: "Users", ParentID: &parent})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cat.ID)
	assert.True(t, cat.HasParent())

	_, err = c.CreateCategory(context.Background(), 3, CategoryRequest{})
	assert.ErrorContains(t, err, "invalid category")
}

func TestSortCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/projects/3/categories/sort", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, []any{float64(3), float64(1), float64(2)}, body["category_ids"])
		writeJSON(w, http.StatusOK, `{"success":true,"data":null}`)
	})

	require.NoError(t, c.SortCategories(context.Background(), 3, []int64{3, 1, 2}))
	assert.Error(t, c.SortCategories(context.Background(), 3, nil))
}

func TestAPISpecRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       APISpecRequest
		create    bool
		wantError bool
	}{
		{name: "valid", req: APISpecRequest{Method: "GET", Path: "/users", Summary: "List users"}, create: true},
		{name: "bad method", req: APISpecRequest{Method: "FETCH", Path: "/users", Summary: "x"}, create: true, wantError: true},
		{name: "relative path", req: APISpecRequest{Method: "GET", Path: "users", Summary: "x"}, create: true, wantError: true},
		{name: "missing summary", req: APISpecRequest{Method: "GET", Path: "/users"}, create: true, wantError: true},
		{name: "partial update", req: APISpecRequest{Description: "only this"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.create)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateAPISpec_UppercasesMethod(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "POST", body["method"])
		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":5,"method":"POST","path":"/orders","summary":"Create"}}`)
	})

	spec, err := c.CreateAPISpec(context.Background(), 1, APISpecRequest{Method: "post", Path: "/orders", Summary: "Create"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), spec.ID)
}

func TestListAPISpecs_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "25", q.Get("page_size"))
		assert.Equal(t, "v2", q.Get("version"))
		assert.False(t, q.Has("per_page"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"items":[],"total":0}}`)
	})

	page, err := c.ListAPISpecs(context.Background(), 1, APISpecListOptions{
		ListOptions: ListOptions{PerPage: 25},
		Version:     "v2",
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestExportAPISpecs(t *testing.T) {
	const doc = "# Users API\n\n## GET /users\n"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "markdown", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/markdown")
		_, _ = io.WriteString(w, doc)
	})

	out, err := c.ExportAPISpecs(context.Background(), 1, "markdown")
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))

	_, err = c.ExportAPISpecs(context.Background(), 1, "pdf")
	assert.ErrorContains(t, err, "invalid export format")
}

func TestAddExample(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/1/api-specs/5/examples", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "POST /orders (201)", body["name"])
		assert.Equal(t, float64(201), body["response_status"])
		assert.Equal(t, map[string]any{"qty": float64(1)}, body["request_body"])
		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"id":12,"api_spec_id":5,"name":"POST /orders (201)","response_status":201,"duration_ms":0}}`)
	})

	ex, err := c.AddExample(context.Background(), 1, 5, CreateExampleRequest{
		Name:           "POST /orders (201)",
		RequestBody:    map[string]any{"qty": 1},
		ResponseStatus: 201,
		ResponseBody:   map[string]any{"success": true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), ex.ID)
	assert.Equal(t, 201, ex.ResponseStatus)
}

func TestListTestCases_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "login", q.Get("keyword"))
		assert.False(t, q.Has("search"))
		assert.Equal(t, "5", q.Get("api_spec_id"))
		assert.Equal(t, "staging", q.Get("env"))
		assert.False(t, q.Has("category_id"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"items":[{"id":1,"name":"login works"}],"total":1}}`)
	})

	page, err := c.ListTestCases(context.Background(), 1, TestCaseListOptions{
		ListOptions: ListOptions{Search: "login"},
		APISpecID:   5,
		Env:         "staging",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "login works", page.Items[0].Name)
}

func TestRunTestCase(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/1/test-cases/7/run", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "staging", body["environment"])
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"test_run_id":"run-1","status":"passed","duration":42,
			"assertions":[{"type":"status","operator":"equals","value":200,"actual":200,"passed":true}]}}`)
	})

	result, err := c.RunTestCase(context.Background(), 1, 7, "staging")
	require.NoError(t, err)
	assert.Equal(t, "passed", result.Status)
	require.Len(t, result.Assertions, 1)
	require.NotNil(t, result.Assertions[0].Passed)
	assert.True(t, *result.Assertions[0].Passed)
}

func TestListAuditLogs(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := since.Add(24 * time.Hour)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2026-01-01T00:00:00Z", q.Get("start_time"))
		assert.Equal(t, "2026-01-02T00:00:00Z", q.Get("end_time"))
		assert.Equal(t, "project", q.Get("resource"))
		assert.False(t, q.Has("action"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"items":[{"id":1,"action":"create","resource":"project","status":201}],"total":1}}`)
	})

	page, err := c.ListAuditLogs(context.Background(), AuditLogListOptions{
		Resource: "project",
		Since:    since,
		Until:    until,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "create", page.Items[0].Action)

	_, err = c.ListAuditLogs(context.Background(), AuditLogListOptions{Since: until, Until: since})
	assert.ErrorContains(t, err, "before start time")
}
