package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turfdesk/middleware"
	"turfdesk/models"
	"turfdesk/services/booking"
	"turfdesk/services/upstream"
	"turfdesk/services/venue"
	"turfdesk/utils"
)

// currentSession pulls the operator session set by the auth middleware.
func currentSession(c *gin.Context) (*models.OperatorSession, bool) {
	value, ok := c.Get(middleware.SessionKey)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no active session")
		return nil, false
	}
	sess, ok := value.(*models.OperatorSession)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no active session")
		return nil, false
	}
	return sess, true
}

// respondServiceError maps service-layer failures onto HTTP statuses.
// Upstream rejections keep their original status and message.
func respondServiceError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	switch {
	case errors.As(err, &apiErr):
		utils.JSONError(c, apiErr.StatusCode, apiErr.Message, "")
	case errors.Is(err, venue.ErrNoVenue):
		utils.JSONError(c, http.StatusNotFound, "No venue registered yet", "")
	case errors.Is(err, venue.ErrInvalidHours):
		utils.JSONError(c, http.StatusBadRequest, "Invalid operating hours", err.Error())
	case errors.Is(err, booking.ErrNoSelection),
		errors.Is(err, booking.ErrUnknownSlot),
		errors.Is(err, booking.ErrMissingGuest):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", err.Error())
	}
}
