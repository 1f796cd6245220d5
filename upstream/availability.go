package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"medibook/models"
)

// GetAvailability fetches the bookable slots for a (doctor, date) pair.
// The date is a calendar date in YYYY-MM-DD form. An absent or empty slot
// list is a valid response and yields an empty result, not an error. Slots
// violating the start < end invariant are dropped rather than failing the
// whole fetch.
func (c *Client) GetAvailability(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	q := url.Values{}
	q.Set("date", date)

	var resp struct {
		Slots []models.Slot `json:"slots"`
	}
	path := "/bookings/doctors/" + url.PathEscape(doctorID) + "/availability"
	if err := c.do(ctx, http.MethodGet, path, "", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch availability for doctor %s on %s: %w", doctorID, date, err)
	}

	slots := make([]models.Slot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		if !s.Valid() {
			continue
		}
		slots = append(slots, s)
	}
	return slots, nil
}
