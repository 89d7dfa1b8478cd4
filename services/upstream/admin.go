package upstream

import (
	"context"
	"net/http"

	"turfdesk/models"
)

// Analytics fetches the venue's headline numbers.
func (c *Client) Analytics(ctx context.Context, token string) (*models.AnalyticsSummary, error) {
	var envelope struct {
		Success bool                    `json:"success"`
		Data    models.AnalyticsSummary `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/analytics", token, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Bookings fetches the full booking snapshot for the operator's venue.
// The returned slice is the single consistent snapshot one derivation pass
// works from; callers must not mix it with a later refetch.
func (c *Client) Bookings(ctx context.Context, token string) ([]models.Booking, error) {
	var envelope struct {
		Success  bool             `json:"success"`
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/myturfbooking", token, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Bookings, nil
}

// Venue fetches the operator's venue details. The backend returns a list;
// the first entry is the manager's venue.
func (c *Client) Venue(ctx context.Context, token string) (*models.Venue, error) {
	var envelope struct {
		Data   []models.Venue `json:"data"`
		TurfID string         `json:"turfId"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/turf", token, nil, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Data) == 0 {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: "no venue registered for this account"}
	}
	venue := envelope.Data[0]
	if venue.ID == "" {
		venue.ID = envelope.TurfID
	}
	return &venue, nil
}

// UpdateVenueDetails edits the venue's general info.
func (c *Client) UpdateVenueDetails(ctx context.Context, token, venueID string, req models.UpdateVenueRequest) error {
	return c.do(ctx, http.MethodPut, "/admin/update-box-details/"+venueID, token, req, nil)
}

// UpdateCourtAvailability toggles one court on or off.
func (c *Client) UpdateCourtAvailability(ctx context.Context, token, venueID string, req models.UpdateCourtRequest) error {
	return c.do(ctx, http.MethodPut, "/admin/update-court-availability/"+venueID, token, req, nil)
}

// UpdateOperatingHours sets the venue's daily open window.
func (c *Client) UpdateOperatingHours(ctx context.Context, token, venueID string, req models.UpdateHoursRequest) error {
	return c.do(ctx, http.MethodPut, "/admin/update-operating-hours/"+venueID, token, req, nil)
}

// DeleteVenue removes the venue and everything under it. Irreversible.
func (c *Client) DeleteVenue(ctx context.Context, token, venueID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/delete-box/"+venueID, token, nil, nil)
}
