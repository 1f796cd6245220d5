package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"medibook/models"
)

// ListDoctorReviews fetches the reviews posted for a doctor.
func (c *Client) ListDoctorReviews(ctx context.Context, doctorID string) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	path := "/reviews/doctors/" + url.PathEscape(doctorID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list reviews for doctor %s: %w", doctorID, err)
	}
	return resp.Reviews, nil
}

// CreateReview posts a new review for a doctor on behalf of the signed-in
// patient.
func (c *Client) CreateReview(ctx context.Context, token, doctorID string, in models.ReviewInput) (*models.Review, error) {
	var resp struct {
		Review models.Review `json:"review"`
	}
	path := "/reviews/doctors/" + url.PathEscape(doctorID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, in, &resp); err != nil {
		return nil, fmt.Errorf("failed to create review for doctor %s: %w", doctorID, err)
	}
	return &resp.Review, nil
}
