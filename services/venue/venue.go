// Package venue orchestrates venue management: details, courts and
// operating hours. Every mutation goes straight to the turf backend; the
// gateway only keeps a short-lived cached copy for form pre-fill.
package venue

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"turfdesk/models"
	"turfdesk/services/schedule"
	"turfdesk/utils"
)

// ErrNoVenue means the signed-in operator has not registered a venue yet.
var ErrNoVenue = errors.New("no venue registered for this session")

// ErrInvalidHours means the submitted operating window is malformed or inverted.
var ErrInvalidHours = errors.New("invalid operating hours")

// TurfAPI is the slice of the upstream client venue management needs.
type TurfAPI interface {
	Venue(ctx context.Context, token string) (*models.Venue, error)
	UpdateVenueDetails(ctx context.Context, token, venueID string, req models.UpdateVenueRequest) error
	UpdateCourtAvailability(ctx context.Context, token, venueID string, req models.UpdateCourtRequest) error
	UpdateOperatingHours(ctx context.Context, token, venueID string, req models.UpdateHoursRequest) error
	DeleteVenue(ctx context.Context, token, venueID string) error
}

// SessionCache is the slice of the session store venue management needs.
type SessionCache interface {
	CachedVenue(ctx context.Context, venueID string) (*models.Venue, error)
	CacheVenue(ctx context.Context, venue *models.Venue) error
	InvalidateVenue(ctx context.Context, venueID string) error
	SetVenueID(ctx context.Context, sess *models.OperatorSession, venueID string) error
}

// VenueService manages the operator's venue record.
type VenueService interface {
	ResolveVenue(ctx context.Context, sess *models.OperatorSession) (*models.Venue, error)
	RefreshVenue(ctx context.Context, sess *models.OperatorSession) (*models.Venue, error)
	UpdateDetails(ctx context.Context, sess *models.OperatorSession, req models.UpdateVenueRequest) error
	UpdateCourt(ctx context.Context, sess *models.OperatorSession, req models.UpdateCourtRequest) error
	UpdateHours(ctx context.Context, sess *models.OperatorSession, req models.UpdateHoursRequest) error
	DeleteVenue(ctx context.Context, sess *models.OperatorSession) error
}

// DefaultVenueService implements VenueService.
type DefaultVenueService struct {
	Upstream TurfAPI
	Sessions SessionCache
}

// ResolveVenue returns the session's venue, preferring the cache and
// falling back to a fresh upstream fetch.
func (s *DefaultVenueService) ResolveVenue(ctx context.Context, sess *models.OperatorSession) (*models.Venue, error) {
	if sess.VenueID != "" {
		if venue, err := s.Sessions.CachedVenue(ctx, sess.VenueID); err == nil {
			return venue, nil
		}
	}
	return s.RefreshVenue(ctx, sess)
}

// RefreshVenue fetches the venue from the backend, recaches it and pins
// the venue id on the session.
func (s *DefaultVenueService) RefreshVenue(ctx context.Context, sess *models.OperatorSession) (*models.Venue, error) {
	venue, err := s.Upstream.Venue(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}
	if venue == nil || venue.ID == "" {
		return nil, ErrNoVenue
	}

	if err := s.Sessions.CacheVenue(ctx, venue); err != nil {
		utils.GetLogger().Warn("failed to cache venue details", zap.String("venueId", venue.ID), zap.Error(err))
	}
	if sess.VenueID != venue.ID {
		if err := s.Sessions.SetVenueID(ctx, sess, venue.ID); err != nil {
			utils.GetLogger().Warn("failed to pin venue on session", zap.String("venueId", venue.ID), zap.Error(err))
		}
	}
	return venue, nil
}

// UpdateDetails edits the venue's general info.
func (s *DefaultVenueService) UpdateDetails(ctx context.Context, sess *models.OperatorSession, req models.UpdateVenueRequest) error {
	venueID, err := s.requireVenueID(ctx, sess)
	if err != nil {
		return err
	}
	if err := s.Upstream.UpdateVenueDetails(ctx, sess.UpstreamToken, venueID, req); err != nil {
		return err
	}
	return s.recache(ctx, sess, venueID)
}

// UpdateCourt toggles one court's availability.
func (s *DefaultVenueService) UpdateCourt(ctx context.Context, sess *models.OperatorSession, req models.UpdateCourtRequest) error {
	venueID, err := s.requireVenueID(ctx, sess)
	if err != nil {
		return err
	}
	if err := s.Upstream.UpdateCourtAvailability(ctx, sess.UpstreamToken, venueID, req); err != nil {
		return err
	}
	return s.recache(ctx, sess, venueID)
}

// UpdateHours sets the operating window after validating it against the
// same range rule the slot generator enforces, so a window that would
// break the slot picker never reaches the backend.
func (s *DefaultVenueService) UpdateHours(ctx context.Context, sess *models.OperatorSession, req models.UpdateHoursRequest) error {
	openHour, okOpen := schedule.ClockHour(req.OpenTime)
	closeHour, okClose := schedule.ClockHour(req.CloseTime)
	if !okOpen || !okClose {
		return fmt.Errorf("%w: times must be HH:MM", ErrInvalidHours)
	}
	if _, err := schedule.GenerateSlots(openHour, closeHour); err != nil {
		return fmt.Errorf("%w: %s-%s", ErrInvalidHours, req.OpenTime, req.CloseTime)
	}

	venueID, err := s.requireVenueID(ctx, sess)
	if err != nil {
		return err
	}
	if err := s.Upstream.UpdateOperatingHours(ctx, sess.UpstreamToken, venueID, req); err != nil {
		return err
	}
	return s.recache(ctx, sess, venueID)
}

// DeleteVenue removes the venue upstream and drops the cached copy.
func (s *DefaultVenueService) DeleteVenue(ctx context.Context, sess *models.OperatorSession) error {
	venueID, err := s.requireVenueID(ctx, sess)
	if err != nil {
		return err
	}
	if err := s.Upstream.DeleteVenue(ctx, sess.UpstreamToken, venueID); err != nil {
		return err
	}
	return s.Sessions.InvalidateVenue(ctx, venueID)
}

func (s *DefaultVenueService) requireVenueID(ctx context.Context, sess *models.OperatorSession) (string, error) {
	if sess.VenueID != "" {
		return sess.VenueID, nil
	}
	venue, err := s.RefreshVenue(ctx, sess)
	if err != nil {
		return "", err
	}
	return venue.ID, nil
}

// recache drops and rebuilds the cached venue after a mutation so the
// next form load sees the new state.
func (s *DefaultVenueService) recache(ctx context.Context, sess *models.OperatorSession, venueID string) error {
	if err := s.Sessions.InvalidateVenue(ctx, venueID); err != nil {
		utils.GetLogger().Warn("failed to invalidate venue cache", zap.String("venueId", venueID), zap.Error(err))
	}
	if _, err := s.RefreshVenue(ctx, sess); err != nil {
		// The mutation itself succeeded; a stale-cache refetch failure
		// is not worth failing the request over.
		utils.GetLogger().Warn("failed to refresh venue after update", zap.String("venueId", venueID), zap.Error(err))
	}
	return nil
}
