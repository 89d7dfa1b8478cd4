package models

// SlotStatus classifies a time slot against the current booking snapshot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Default operating window when the venue carries none.
const (
	DefaultOpenHour  = 6
	DefaultCloseHour = 23
)

// TimeSlot is a fixed one-hour bookable interval within operating hours.
// Generated, never persisted; the ID doubles as a mapping key.
type TimeSlot struct {
	ID        string `json:"id"`        // "HH:00-HH:00"
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Label     string `json:"label"`
}

// SlotView pairs a slot with its derived status for the availability grid.
type SlotView struct {
	TimeSlot
	Status SlotStatus `json:"status"`
}

// AvailabilityGrid is the offline-booking drawer's slot picker payload.
type AvailabilityGrid struct {
	Date    string     `json:"date"`
	CourtID string     `json:"courtId"`
	Slots   []SlotView `json:"slots"`
}
