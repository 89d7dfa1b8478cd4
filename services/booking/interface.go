package booking

import (
	"context"

	"turfdesk/models"
	"turfdesk/services/upstream"
)

// TurfAPI is the slice of the upstream client the booking wizard needs.
type TurfAPI interface {
	Bookings(ctx context.Context, token string) ([]models.Booking, error)
	Venue(ctx context.Context, token string) (*models.Venue, error)
	CheckAvailability(ctx context.Context, token, venueID string, req upstream.AvailabilityCheck) error
	CreateOfflineBooking(ctx context.Context, token string, payload upstream.OfflineBookingPayload) error
}

// OfflineBookingService drives the two-step walk-in booking wizard:
// select slots and verify, then capture guest details and confirm.
type OfflineBookingService interface {
	AvailabilityGrid(ctx context.Context, sess *models.OperatorSession, date, courtID string) (*models.AvailabilityGrid, error)
	CheckAvailability(ctx context.Context, sess *models.OperatorSession, input models.OfflineBookingInput) error
	ConfirmBooking(ctx context.Context, sess *models.OperatorSession, input models.OfflineBookingInput) error
	GuestHistory(ctx context.Context, sess *models.OperatorSession, phone string) (*GuestHistory, error)
}

// DefaultOfflineBookingService implements OfflineBookingService.
type DefaultOfflineBookingService struct {
	Upstream TurfAPI
	Venues   VenueResolver
}

// VenueResolver supplies the operating window and venue id for a session,
// normally backed by the session store's venue cache.
type VenueResolver interface {
	ResolveVenue(ctx context.Context, sess *models.OperatorSession) (*models.Venue, error)
}
