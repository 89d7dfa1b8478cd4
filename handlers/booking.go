package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfdesk/models"
	"turfdesk/services/booking"
	"turfdesk/utils"
)

// AvailabilityGridHandler returns the slot grid for one court and date.
func AvailabilityGridHandler(svc booking.OfflineBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		date := c.Query("date")
		courtID := c.Query("courtId")
		grid, err := svc.AvailabilityGrid(c.Request.Context(), sess, date, courtID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, grid)
	}
}

// CheckAvailabilityHandler verifies a slot selection against the live snapshot.
func CheckAvailabilityHandler(svc booking.OfflineBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var input models.OfflineBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.CheckAvailability(c.Request.Context(), sess, input); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"available": true})
	}
}

// ConfirmBookingHandler records a walk-in booking upstream.
func ConfirmBookingHandler(svc booking.OfflineBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var input models.OfflineBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.ConfirmBooking(c.Request.Context(), sess, input); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Booking recorded"})
	}
}

// GuestHistoryHandler summarizes a walk-in guest's booking record by phone,
// so the front desk can spot repeat no-shows before confirming.
func GuestHistoryHandler(svc booking.OfflineBookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		phone := c.Query("phone")
		if phone == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "phone is required")
			return
		}
		history, err := svc.GuestHistory(c.Request.Context(), sess, phone)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}
