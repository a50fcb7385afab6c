package kest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// AuditLogListOptions filters the audit log.
type AuditLogListOptions struct {
	ListOptions
	Action   string
	Resource string
	UserID   int64
	Since    time.Time
	Until    time.Time
}

// ListAuditLogs lists audited backend requests, newest first.
func (c *Client) ListAuditLogs(ctx context.Context, opts AuditLogListOptions) (*Page[AuditLog], error) {
	if !opts.Since.IsZero() && !opts.Until.IsZero() && opts.Until.Before(opts.Since) {
		return nil, fmt.Errorf("end time %s is before start time %s",
			opts.Until.Format(time.RFC3339), opts.Since.Format(time.RFC3339))
	}

	query := opts.query("page_size")
	query["action"] = opts.Action
	query["resource"] = opts.Resource
	if opts.UserID > 0 {
		query["user_id"] = strconv.FormatInt(opts.UserID, 10)
	}
	if !opts.Since.IsZero() {
		query["start_time"] = opts.Since.UTC().Format(time.RFC3339)
	}
	if !opts.Until.IsZero() {
		query["end_time"] = opts.Until.UTC().Format(time.RFC3339)
	}

	var page Page[AuditLog]
	if err := c.doRequest(ctx, http.MethodGet, "/v1/audit-logs", query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return &page, nil
}
