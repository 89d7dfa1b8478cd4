package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfdesk/models"
	"turfdesk/services/venue"
	"turfdesk/utils"
)

// VenueHandler returns the signed-in operator's venue.
func VenueHandler(svc venue.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		v, err := svc.ResolveVenue(c.Request.Context(), sess)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// UpdateVenueHandler edits the venue's general details.
func UpdateVenueHandler(svc venue.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var req models.UpdateVenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.UpdateDetails(c.Request.Context(), sess, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Venue updated"})
	}
}

// UpdateCourtHandler toggles one court's availability.
func UpdateCourtHandler(svc venue.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var req models.UpdateCourtRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.UpdateCourt(c.Request.Context(), sess, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Court updated"})
	}
}

// UpdateHoursHandler sets the venue operating window.
func UpdateHoursHandler(svc venue.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var req models.UpdateHoursRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.UpdateHours(c.Request.Context(), sess, req); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Operating hours updated"})
	}
}

// DeleteVenueHandler removes the venue record upstream.
func DeleteVenueHandler(svc venue.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		if err := svc.DeleteVenue(c.Request.Context(), sess); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
	}
}
