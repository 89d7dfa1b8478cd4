// Package auth drives the operator sign-in flows. Credentials are never
// stored here; the gateway exchanges them for an upstream token, wraps it
// in a session and hands the caller the gateway's own token.
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"turfdesk/models"
	"turfdesk/services/upstream"
	"turfdesk/utils"
)

// ErrEmptyToken means the backend accepted the credentials but returned no token.
var ErrEmptyToken = errors.New("upstream returned no token")

// UpstreamAuth is the slice of the upstream client auth needs.
type UpstreamAuth interface {
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
	Signup(ctx context.Context, req models.SignupRequest) (*upstream.LoginResult, error)
	RegisterVenue(ctx context.Context, token string, req models.RegisterVenueRequest) (*models.Venue, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password string) error
}

// SessionStore is the slice of the session store auth needs.
type SessionStore interface {
	Create(ctx context.Context, upstreamToken, name, email, venueID string) (string, *models.OperatorSession, error)
	Delete(ctx context.Context, sessionID string) error
	SetVenueID(ctx context.Context, sess *models.OperatorSession, venueID string) error
	CacheVenue(ctx context.Context, venue *models.Venue) error
}

// Signin is what a successful login or signup hands back to the client.
type Signin struct {
	Token    string        `json:"token"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Venue    *models.Venue `json:"venue,omitempty"`
	HasVenue bool          `json:"hasVenue"`
}

// AuthService manages operator sign-in, signup and password recovery.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*Signin, error)
	Signup(ctx context.Context, req models.SignupRequest) (*Signin, error)
	RegisterVenue(ctx context.Context, sess *models.OperatorSession, req models.RegisterVenueRequest) (*models.Venue, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password string) error
	Logout(ctx context.Context, sess *models.OperatorSession) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Upstream UpstreamAuth
	Sessions SessionStore
}

// Login exchanges credentials for a gateway session.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*Signin, error) {
	result, err := s.Upstream.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, result)
}

// Signup registers the account upstream and opens a session right away,
// so the venue registration step can follow without a second login.
func (s *DefaultAuthService) Signup(ctx context.Context, req models.SignupRequest) (*Signin, error) {
	result, err := s.Upstream.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, result)
}

// RegisterVenue creates the operator's venue and pins it on the session.
func (s *DefaultAuthService) RegisterVenue(ctx context.Context, sess *models.OperatorSession, req models.RegisterVenueRequest) (*models.Venue, error) {
	venue, err := s.Upstream.RegisterVenue(ctx, sess.UpstreamToken, req)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.SetVenueID(ctx, sess, venue.ID); err != nil {
		return nil, err
	}
	if err := s.Sessions.CacheVenue(ctx, venue); err != nil {
		utils.GetLogger().Warn("failed to cache registered venue", zap.String("venueId", venue.ID), zap.Error(err))
	}
	return venue, nil
}

// ForgotPassword relays the reset-email request upstream.
func (s *DefaultAuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.Upstream.ForgotPassword(ctx, email)
}

// ResetPassword relays the emailed-token reset upstream.
func (s *DefaultAuthService) ResetPassword(ctx context.Context, resetToken, password string) error {
	return s.Upstream.ResetPassword(ctx, resetToken, password)
}

// Logout drops the session record; the gateway token dies with it.
func (s *DefaultAuthService) Logout(ctx context.Context, sess *models.OperatorSession) error {
	return s.Sessions.Delete(ctx, sess.SessionID)
}

func (s *DefaultAuthService) openSession(ctx context.Context, result *upstream.LoginResult) (*Signin, error) {
	if result.Token == "" {
		return nil, ErrEmptyToken
	}

	venueID := ""
	if result.Box != nil {
		venueID = result.Box.ID
	}
	token, _, err := s.Sessions.Create(ctx, result.Token, result.User.Name, result.User.Email, venueID)
	if err != nil {
		return nil, err
	}
	if result.Box != nil {
		if err := s.Sessions.CacheVenue(ctx, result.Box); err != nil {
			utils.GetLogger().Warn("failed to cache venue at sign-in", zap.String("venueId", result.Box.ID), zap.Error(err))
		}
	}
	return &Signin{
		Token:    token,
		Name:     result.User.Name,
		Email:    result.User.Email,
		Venue:    result.Box,
		HasVenue: result.Box != nil,
	}, nil
}
