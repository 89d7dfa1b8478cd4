package models

// LoginRequest is the operator sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest registers a new venue manager account upstream.
type SignupRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterVenueRequest creates the manager's venue ("box") upstream after signup.
type RegisterVenueRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description,omitempty"`
	Address      string  `json:"address,omitempty"`
	PricePerHour float64 `json:"pricePerHour" binding:"required"`
	CourtCount   int     `json:"courtCount,omitempty"`
}

// ForgotPasswordRequest starts the reset flow upstream.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the reset flow with the emailed token.
type ResetPasswordRequest struct {
	ResetToken string `json:"resetToken" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UpdateVenueRequest edits a venue's general details.
type UpdateVenueRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description,omitempty"`
	PricePerHour float64 `json:"pricePerHour" binding:"required"`
}

// UpdateCourtRequest toggles a court's availability.
type UpdateCourtRequest struct {
	CourtNumber int  `json:"courtNumber" binding:"required"`
	IsAvailable bool `json:"isAvailable"`
}

// UpdateHoursRequest sets the venue operating window.
type UpdateHoursRequest struct {
	OpenTime  string `json:"openTime" binding:"required"`
	CloseTime string `json:"closeTime" binding:"required"`
}

// OfflineBookingInput is the walk-in booking wizard payload: the operator's
// chosen slot ids plus guest and payment details.
type OfflineBookingInput struct {
	CourtID       string   `json:"courtId" binding:"required"`
	Date          string   `json:"date" binding:"required"` // "YYYY-MM-DD"
	SlotIDs       []string `json:"slotIds" binding:"required,min=1"`
	GuestName     string   `json:"guestName,omitempty"`
	GuestPhone    string   `json:"guestPhone,omitempty"`
	PaymentStatus string   `json:"paymentStatus,omitempty"` // "pending" or "success"
	PaymentMethod string   `json:"paymentMethod,omitempty"` // "cash", "upi", "card"
}
