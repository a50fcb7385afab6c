// Package kest provides a client for the Kest platform REST API.
//
// # Overview
//
// The backend owns persistence, authentication and test execution. This
// client is a thin typed layer over its /v1 endpoints: it adds the bearer
// token, unwraps the {"success": true, "data": ...} envelope, retries
// transport failures and 5xx responses, and turns error bodies into *APIError.
//
// # Configuration Example
//
//	api {
//	  base_url    = "https://kest.example.com"
//	  auth_token  = "..."
//	  timeout     = "30s"
//	  max_retries = 3
//	}
//
// # API Endpoints Used
//
// Projects:
//   - GET    /v1/projects
//   - GET    /v1/projects/:id
//   - POST   /v1/projects
//   - PUT    /v1/projects/:id
//   - DELETE /v1/projects/:id
//   - GET    /v1/projects/:id/dsn
//
// Environments:
//   - GET    /v1/projects/:id/environments
//   - POST   /v1/projects/:id/environments
//   - PATCH  /v1/projects/:id/environments/:envId
//   - DELETE /v1/projects/:id/environments/:envId
//
// Categories:
//   - GET    /v1/projects/:id/categories
//   - GET    /v1/projects/:id/categories?tree=true
//   - GET    /v1/projects/:id/categories/:catId
//   - POST   /v1/projects/:id/categories
//   - PATCH  /v1/projects/:id/categories/:catId
//   - DELETE /v1/projects/:id/categories/:catId
//   - PUT    /v1/projects/:id/categories/sort
//
// API specs:
//   - GET    /v1/projects/:id/api-specs
//   - GET    /v1/projects/:id/api-specs/:specId
//   - GET    /v1/projects/:id/api-specs/:specId/full
//   - POST   /v1/projects/:id/api-specs
//   - PATCH  /v1/projects/:id/api-specs/:specId
//   - DELETE /v1/projects/:id/api-specs/:specId
//   - POST   /v1/projects/:id/api-specs/import
//   - GET    /v1/projects/:id/api-specs/export
//   - POST   /v1/projects/:id/api-specs/:specId/examples
//
// Test cases:
//   - GET    /v1/projects/:id/test-cases
//   - GET    /v1/projects/:id/test-cases/:caseId
//   - POST   /v1/projects/:id/test-cases
//   - PATCH  /v1/projects/:id/test-cases/:caseId
//   - DELETE /v1/projects/:id/test-cases/:caseId
//   - POST   /v1/projects/:id/test-cases/:caseId/run
//
// Audit logs:
//   - GET    /v1/audit-logs
//
// Health:
//   - GET    /v1/health
//
// # Category trees
//
// CategoryTree fetches the flat category list and assembles it locally with
// category.Materialize, so the result does not depend on whether the backend
// nests children itself.
package kest
