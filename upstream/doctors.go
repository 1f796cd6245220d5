package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"medibook/models"
)

// GetDoctor fetches the read-only doctor projection by id.
func (c *Client) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doc models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+url.PathEscape(doctorID), "", nil, nil, &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", doctorID, err)
	}
	return &doc, nil
}

// ListDoctors returns the doctor directory, optionally filtered by
// specialization and a free-text search term.
func (c *Client) ListDoctors(ctx context.Context, specialization, search string) ([]models.DoctorSummary, error) {
	q := url.Values{}
	if specialization != "" {
		q.Set("specialization", specialization)
	}
	if search != "" {
		q.Set("search", search)
	}

	var resp struct {
		Doctors []models.DoctorSummary `json:"doctors"`
	}
	if err := c.do(ctx, http.MethodGet, "/doctors", "", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return resp.Doctors, nil
}
