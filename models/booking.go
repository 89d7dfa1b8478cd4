package models

// Booking statuses as reported by the turf backend.
const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses as reported by the turf backend.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// CourtRef is the nested court reference some upstream booking records carry
// instead of a flat courtId. Both shapes occur in the wild; matching accepts either.
type CourtRef struct {
	ID          string `json:"_id"`
	CourtName   string `json:"courtName,omitempty"`
	SurfaceType string `json:"surfaceType,omitempty"`
}

// GuestDetails holds walk-in customer identity for offline bookings.
type GuestDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Booking is a read-only snapshot record owned by the turf backend.
type Booking struct {
	ID            string        `json:"_id,omitempty"`
	OrderID       string        `json:"orderId,omitempty"`
	User          string        `json:"user,omitempty"` // upstream user id
	Date          string        `json:"date"`      // "YYYY-MM-DD"
	StartTime     string        `json:"startTime"` // "HH:MM", 24-hour
	EndTime       string        `json:"endTime"`   // "HH:MM", 24-hour
	CourtID       string        `json:"courtId,omitempty"`
	CourtDetails  *CourtRef     `json:"courtDetails,omitempty"`
	BookingStatus string        `json:"bookingStatus,omitempty"`
	PaymentStatus string        `json:"paymentStatus,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	UserPhone     string        `json:"userPhone,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	GuestDetails  *GuestDetails `json:"guestDetails,omitempty"`
	Duration      int           `json:"duration,omitempty"` // hours
	TotalAmount   float64       `json:"totalAmount,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
}

// MatchesCourt reports whether the booking belongs to the given court,
// accepting either the flat or the nested identifier.
func (b Booking) MatchesCourt(courtID string) bool {
	if b.CourtID == courtID {
		return true
	}
	return b.CourtDetails != nil && b.CourtDetails.ID == courtID
}

// ContactPhone returns whichever phone field the upstream record populated.
func (b Booking) ContactPhone() string {
	if b.UserPhone != "" {
		return b.UserPhone
	}
	if b.Phone != "" {
		return b.Phone
	}
	if b.GuestDetails != nil {
		return b.GuestDetails.Phone
	}
	return ""
}
