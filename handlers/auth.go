package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfdesk/models"
	"turfdesk/services/auth"
	"turfdesk/utils"
)

// LoginHandler signs an operator in and returns the gateway session token.
func LoginHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		signin, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, signin)
	}
}

// SignupHandler registers a manager account and opens a session.
func SignupHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		signin, err := svc.Signup(c.Request.Context(), req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, signin)
	}
}

// RegisterVenueHandler creates the signed-in operator's venue.
func RegisterVenueHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var req models.RegisterVenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		created, err := svc.RegisterVenue(c.Request.Context(), sess, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"venue": created})
	}
}

// ForgotPasswordHandler starts the emailed reset flow.
func ForgotPasswordHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reset email sent"})
	}
}

// ResetPasswordHandler completes the reset flow with the emailed token.
func ResetPasswordHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.ResetPassword(c.Request.Context(), req.ResetToken, req.Password); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}

// LogoutHandler revokes the current session.
func LogoutHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		if err := svc.Logout(c.Request.Context(), sess); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
