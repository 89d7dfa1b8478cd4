package upstream

import (
	"context"
	"net/http"

	"turfdesk/models"
)

// AvailabilityCheck is the is-available request body. The backend expects
// plural field names for the time range.
type AvailabilityCheck struct {
	Date       string `json:"date"`
	StartTimes string `json:"startTimes"`
	EndTimes   string `json:"endTimes"`
	CourtID    string `json:"courtId"`
}

// OfflineBookingPayload is the create-offline-booking request body.
type OfflineBookingPayload struct {
	BoxID         string              `json:"boxId"`
	CourtID       string              `json:"courtId"`
	Date          string              `json:"date"`
	StartTime     string              `json:"startTime"`
	EndTime       string              `json:"endTime"`
	GuestDetails  models.GuestDetails `json:"guestDetails"`
	PaymentStatus string              `json:"paymentStatus"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
}

// CheckAvailability asks the backend to authoritatively verify a slot range.
// A non-2xx response means the range is taken; the upstream message explains.
func (c *Client) CheckAvailability(ctx context.Context, token, venueID string, req AvailabilityCheck) error {
	return c.do(ctx, http.MethodPost, "/booking/is-available/"+venueID, token, req, nil)
}

// CreateOfflineBooking records a walk-in booking.
func (c *Client) CreateOfflineBooking(ctx context.Context, token string, payload OfflineBookingPayload) error {
	return c.do(ctx, http.MethodPost, "/booking/create-offline-booking", token, payload, nil)
}
