package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"turfdesk/services/dashboard"
)

// DashboardHandler serves the landing-page overview.
func DashboardHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		overview, err := svc.Overview(c.Request.Context(), sess)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, overview)
	}
}

// ExportBookingsHandler streams the booking snapshot as a CSV download.
func ExportBookingsHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		data, err := svc.ExportBookingsCSV(c.Request.Context(), sess)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		filename := "bookings-" + time.Now().Format("2006-01-02") + ".csv"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", data)
	}
}
