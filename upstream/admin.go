package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"medibook/models"
)

// GetAdminOverview fetches the dashboard counters. Admin-only upstream.
func (c *Client) GetAdminOverview(ctx context.Context, token string) (*models.AdminOverview, error) {
	var resp models.AdminOverview
	if err := c.do(ctx, http.MethodGet, "/admin/overview", token, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch admin overview: %w", err)
	}
	return &resp, nil
}

// ListAdminAppointments fetches a filtered page of appointments for the
// admin table. Zero page means the upstream default.
func (c *Client) ListAdminAppointments(ctx context.Context, token, status, date string, page int) (*models.AdminAppointmentPage, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if date != "" {
		q.Set("date", date)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var resp models.AdminAppointmentPage
	if err := c.do(ctx, http.MethodGet, "/admin/appointments", token, q, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list admin appointments: %w", err)
	}
	return &resp, nil
}
