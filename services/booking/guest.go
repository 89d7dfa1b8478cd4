package booking

import (
	"context"
	"fmt"
	"time"

	"turfdesk/models"
)

// GuestHistory summarizes a walk-in customer's record with the venue.
type GuestHistory struct {
	Phone           string `json:"phone"`
	TotalBookings   int    `json:"totalBookings"`
	PendingPayments int    `json:"pendingPayments"` // past-dated bookings never paid
}

// GuestHistory scans the booking snapshot for a phone number's track
// record. Past-dated bookings with a still-pending payment are the no-show
// signal the wizard warns about before confirming a new walk-in.
func (s *DefaultOfflineBookingService) GuestHistory(ctx context.Context, sess *models.OperatorSession, phone string) (*GuestHistory, error) {
	bookings, err := s.Upstream.Bookings(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking snapshot: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	history := &GuestHistory{Phone: phone}
	for _, b := range bookings {
		if b.ContactPhone() != phone {
			continue
		}
		history.TotalBookings++
		if b.PaymentStatus == models.PaymentStatusPending && b.Date != "" && b.Date < today {
			history.PendingPayments++
		}
	}
	return history, nil
}
