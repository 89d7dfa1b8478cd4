package schedule

import (
	"go.uber.org/zap"

	"turfdesk/models"
	"turfdesk/utils"
)

// ProjectAvailability classifies every slot in the catalog as available or
// booked for one date and court, given the current booking snapshot.
//
// A booking blocks a slot only when it is on the same date, belongs to the
// same court (flat courtId or nested courtDetails._id), is not cancelled,
// and its [start, end) interval overlaps the slot's. Cancelled bookings
// never block a slot.
//
// With an empty date or court the grid has no meaning yet, so the result is
// an empty map; callers must treat a missing slot status as "unknown", not
// as available. The function holds no state and performs no I/O beyond
// reporting malformed upstream time strings.
func ProjectAvailability(slots []models.TimeSlot, bookings []models.Booking, date, courtID string) map[string]models.SlotStatus {
	statuses := make(map[string]models.SlotStatus, len(slots))
	if date == "" || courtID == "" {
		return statuses
	}

	relevant := relevantBookings(bookings, date, courtID)

	for _, slot := range slots {
		status := models.SlotAvailable
		for _, b := range relevant {
			if Overlaps(slot.StartTime, slot.EndTime, b.StartTime, b.EndTime) {
				status = models.SlotBooked
				break
			}
		}
		statuses[slot.ID] = status
	}
	return statuses
}

// relevantBookings filters the snapshot down to bookings that can block
// slots on the given date and court. Records with malformed "HH:MM" fields
// are dropped with a warning rather than crashing the derivation; bad
// upstream data must never take the grid down.
func relevantBookings(bookings []models.Booking, date, courtID string) []models.Booking {
	var relevant []models.Booking
	for _, b := range bookings {
		if b.Date != date || !b.MatchesCourt(courtID) {
			continue
		}
		if b.BookingStatus == models.BookingStatusCancelled {
			continue
		}
		if !ValidClock(b.StartTime) || !ValidClock(b.EndTime) {
			utils.GetLogger().Warn("skipping booking with malformed time",
				zap.String("bookingId", b.ID),
				zap.String("startTime", b.StartTime),
				zap.String("endTime", b.EndTime))
			continue
		}
		relevant = append(relevant, b)
	}
	return relevant
}
