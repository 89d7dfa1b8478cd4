package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"turfdesk/models"
	"turfdesk/services/schedule"
	"turfdesk/services/upstream"
)

var (
	// ErrNoSelection means the wizard submitted no slot ids.
	ErrNoSelection = errors.New("select a court and at least one time slot")
	// ErrUnknownSlot means a submitted slot id is not in the venue's catalog.
	ErrUnknownSlot = errors.New("unknown time slot")
	// ErrSlotTaken means a submitted slot is already booked in the snapshot.
	ErrSlotTaken = errors.New("selected slot is no longer available")
	// ErrMissingGuest means the confirm step lacks guest details.
	ErrMissingGuest = errors.New("guest name and phone are required")
)

// AvailabilityGrid derives the slot picker for one date and court: the
// venue's slot catalog with each slot classified against a fresh booking
// snapshot. The whole grid is computed from the one snapshot fetched here;
// a refetch mid-derivation can never mix states.
func (s *DefaultOfflineBookingService) AvailabilityGrid(ctx context.Context, sess *models.OperatorSession, date, courtID string) (*models.AvailabilityGrid, error) {
	venue, err := s.Venues.ResolveVenue(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve venue: %w", err)
	}

	slots := venueSlots(venue)

	bookings, err := s.Upstream.Bookings(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking snapshot: %w", err)
	}

	statuses := schedule.ProjectAvailability(slots, bookings, date, courtID)

	views := make([]models.SlotView, 0, len(slots))
	for _, slot := range slots {
		status, ok := statuses[slot.ID]
		if !ok {
			// Date or court unset upstream of us; surface "unknown" as
			// an absent status rather than claiming availability.
			views = append(views, models.SlotView{TimeSlot: slot})
			continue
		}
		views = append(views, models.SlotView{TimeSlot: slot, Status: status})
	}

	return &models.AvailabilityGrid{Date: date, CourtID: courtID, Slots: views}, nil
}

// CheckAvailability is step one of the wizard: validate the selection
// locally against a fresh snapshot, then let the backend authoritatively
// verify the collapsed range.
func (s *DefaultOfflineBookingService) CheckAvailability(ctx context.Context, sess *models.OperatorSession, input models.OfflineBookingInput) error {
	if input.CourtID == "" || len(input.SlotIDs) == 0 {
		return ErrNoSelection
	}

	venue, err := s.Venues.ResolveVenue(ctx, sess)
	if err != nil {
		return fmt.Errorf("failed to resolve venue: %w", err)
	}
	slots := venueSlots(venue)

	start, end, err := SelectedRange(slots, input.SlotIDs)
	if err != nil {
		return err
	}

	bookings, err := s.Upstream.Bookings(ctx, sess.UpstreamToken)
	if err != nil {
		return fmt.Errorf("failed to fetch booking snapshot: %w", err)
	}
	statuses := schedule.ProjectAvailability(slots, bookings, input.Date, input.CourtID)
	for _, id := range input.SlotIDs {
		if statuses[id] == models.SlotBooked {
			return fmt.Errorf("%w: %s", ErrSlotTaken, id)
		}
	}

	return s.Upstream.CheckAvailability(ctx, sess.UpstreamToken, venue.ID, upstream.AvailabilityCheck{
		Date:       input.Date,
		StartTimes: start,
		EndTimes:   end,
		CourtID:    input.CourtID,
	})
}

// ConfirmBooking is step two: submit the walk-in booking with guest and
// payment details. The payment method only travels when payment already
// succeeded; a pending payment has no method yet.
func (s *DefaultOfflineBookingService) ConfirmBooking(ctx context.Context, sess *models.OperatorSession, input models.OfflineBookingInput) error {
	if input.GuestName == "" || input.GuestPhone == "" {
		return ErrMissingGuest
	}
	if input.CourtID == "" || len(input.SlotIDs) == 0 {
		return ErrNoSelection
	}

	venue, err := s.Venues.ResolveVenue(ctx, sess)
	if err != nil {
		return fmt.Errorf("failed to resolve venue: %w", err)
	}
	slots := venueSlots(venue)

	start, end, err := SelectedRange(slots, input.SlotIDs)
	if err != nil {
		return err
	}

	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}
	paymentMethod := ""
	if paymentStatus == models.PaymentStatusSuccess {
		paymentMethod = input.PaymentMethod
	}

	return s.Upstream.CreateOfflineBooking(ctx, sess.UpstreamToken, upstream.OfflineBookingPayload{
		BoxID:         venue.ID,
		CourtID:       input.CourtID,
		Date:          input.Date,
		StartTime:     start,
		EndTime:       end,
		GuestDetails:  models.GuestDetails{Name: input.GuestName, Phone: input.GuestPhone},
		PaymentStatus: paymentStatus,
		PaymentMethod: paymentMethod,
	})
}

// SelectedRange collapses chosen slot ids into one [start, end) range:
// sorted by start time, the range runs from the first slot's start to the
// last slot's end. Discontiguous picks collapse the same way, matching how
// the booking form has always submitted ranges.
func SelectedRange(slots []models.TimeSlot, slotIDs []string) (string, string, error) {
	byID := make(map[string]models.TimeSlot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	selected := make([]models.TimeSlot, 0, len(slotIDs))
	for _, id := range slotIDs {
		slot, ok := byID[id]
		if !ok {
			return "", "", fmt.Errorf("%w: %s", ErrUnknownSlot, id)
		}
		selected = append(selected, slot)
	}
	if len(selected) == 0 {
		return "", "", ErrNoSelection
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].StartTime < selected[j].StartTime
	})
	return selected[0].StartTime, selected[len(selected)-1].EndTime, nil
}

// venueSlots builds the slot catalog from the venue's operating window,
// defaulting when the venue carries none.
func venueSlots(venue *models.Venue) []models.TimeSlot {
	openHour, closeHour := models.DefaultOpenHour, models.DefaultCloseHour
	if venue != nil && venue.OperatingHours != nil {
		if h, ok := schedule.ClockHour(venue.OperatingHours.OpenTime); ok {
			openHour = h
		}
		if h, ok := schedule.ClockHour(venue.OperatingHours.CloseTime); ok {
			closeHour = h
		}
	}
	return schedule.SlotsForWindow(openHour, closeHour)
}
