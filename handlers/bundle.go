package handlers

import (
	"github.com/gin-gonic/gin"

	"turfdesk/services/auth"
	"turfdesk/services/booking"
	"turfdesk/services/dashboard"
	"turfdesk/services/venue"
)

// HandlerBundle groups all endpoint handlers into one struct for route wiring.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler          gin.HandlerFunc
	SignupHandler         gin.HandlerFunc
	RegisterVenueHandler  gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc

	// Dashboard endpoints
	DashboardHandler      gin.HandlerFunc
	ExportBookingsHandler gin.HandlerFunc

	// Offline booking endpoints
	AvailabilityGridHandler  gin.HandlerFunc
	CheckAvailabilityHandler gin.HandlerFunc
	ConfirmBookingHandler    gin.HandlerFunc
	GuestHistoryHandler      gin.HandlerFunc

	// Venue management endpoints
	VenueHandler       gin.HandlerFunc
	UpdateVenueHandler gin.HandlerFunc
	UpdateCourtHandler gin.HandlerFunc
	UpdateHoursHandler gin.HandlerFunc
	DeleteVenueHandler gin.HandlerFunc
}

// NewHandlerBundle binds every handler to its service.
func NewHandlerBundle(
	authSvc auth.AuthService,
	dashboardSvc dashboard.DashboardService,
	bookingSvc booking.OfflineBookingService,
	venueSvc venue.VenueService,
) *HandlerBundle {
	return &HandlerBundle{
		LoginHandler:          LoginHandler(authSvc),
		SignupHandler:         SignupHandler(authSvc),
		RegisterVenueHandler:  RegisterVenueHandler(authSvc),
		ForgotPasswordHandler: ForgotPasswordHandler(authSvc),
		ResetPasswordHandler:  ResetPasswordHandler(authSvc),
		LogoutHandler:         LogoutHandler(authSvc),

		DashboardHandler:      DashboardHandler(dashboardSvc),
		ExportBookingsHandler: ExportBookingsHandler(dashboardSvc),

		AvailabilityGridHandler:  AvailabilityGridHandler(bookingSvc),
		CheckAvailabilityHandler: CheckAvailabilityHandler(bookingSvc),
		ConfirmBookingHandler:    ConfirmBookingHandler(bookingSvc),
		GuestHistoryHandler:      GuestHistoryHandler(bookingSvc),

		VenueHandler:       VenueHandler(venueSvc),
		UpdateVenueHandler: UpdateVenueHandler(venueSvc),
		UpdateCourtHandler: UpdateCourtHandler(venueSvc),
		UpdateHoursHandler: UpdateHoursHandler(venueSvc),
		DeleteVenueHandler: DeleteVenueHandler(venueSvc),
	}
}
