package upstream

import (
	"context"
	"net/http"
	"net/url"

	"turfdesk/models"
)

// LoginResult is the backend's sign-in envelope: the bearer token plus the
// operator profile and, for established accounts, their venue.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Box *models.Venue `json:"box,omitempty"`
}

// Login authenticates a venue manager against the turf backend.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Signup registers a manager account upstream. The backend issues a token
// immediately so venue registration can follow in the same flow.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*LoginResult, error) {
	payload := map[string]interface{}{
		"name":        req.UserName,
		"email":       req.Email,
		"password":    req.Password,
		"role":        "admin",
		"phoneNumber": req.Phone,
	}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterVenue creates the manager's venue ("box") after signup.
func (c *Client) RegisterVenue(ctx context.Context, token string, req models.RegisterVenueRequest) (*models.Venue, error) {
	payload := map[string]interface{}{
		"name":         req.Name,
		"description":  req.Description,
		"location":     req.Address,
		"pricePerHour": req.PricePerHour,
		"isActive":     true,
	}
	var result struct {
		Box *models.Venue `json:"box"`
		ID  string        `json:"_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/admin", token, payload, &result); err != nil {
		return nil, err
	}
	if result.Box != nil {
		return result.Box, nil
	}
	// Some backend versions return the venue at the envelope root.
	if result.ID != "" {
		return &models.Venue{ID: result.ID, Name: req.Name, PricePerHour: req.PricePerHour}, nil
	}
	return nil, &APIError{StatusCode: http.StatusBadGateway, Message: "venue missing from registration response"}
}

// ForgotPassword starts the emailed reset flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forget-password", "", map[string]string{"email": email}, nil)
}

// ResetPassword completes the reset flow with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	path := "/auth/reset-password?resetToken=" + url.QueryEscape(resetToken)
	return c.do(ctx, http.MethodPost, path, "", map[string]string{"password": password}, nil)
}
