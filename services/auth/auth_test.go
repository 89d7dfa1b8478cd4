package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfdesk/models"
	"turfdesk/services/upstream"
)

type stubUpstream struct {
	loginResult  *upstream.LoginResult
	loginErr     error
	signupResult *upstream.LoginResult
	registered   *models.Venue
}

func (s *stubUpstream) Login(ctx context.Context, email, password string) (*upstream.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubUpstream) Signup(ctx context.Context, req models.SignupRequest) (*upstream.LoginResult, error) {
	return s.signupResult, nil
}

func (s *stubUpstream) RegisterVenue(ctx context.Context, token string, req models.RegisterVenueRequest) (*models.Venue, error) {
	return s.registered, nil
}

func (s *stubUpstream) ForgotPassword(ctx context.Context, email string) error { return nil }

func (s *stubUpstream) ResetPassword(ctx context.Context, resetToken, password string) error {
	return nil
}

type stubSessions struct {
	created        *models.OperatorSession
	deletedSession string
	cachedVenues   []string
}

func (s *stubSessions) Create(ctx context.Context, upstreamToken, name, email, venueID string) (string, *models.OperatorSession, error) {
	sess := &models.OperatorSession{
		SessionID:     "sess-1",
		UpstreamToken: upstreamToken,
		OperatorName:  name,
		OperatorEmail: email,
		VenueID:       venueID,
	}
	s.created = sess
	return "gateway-token", sess, nil
}

func (s *stubSessions) Delete(ctx context.Context, sessionID string) error {
	s.deletedSession = sessionID
	return nil
}

func (s *stubSessions) SetVenueID(ctx context.Context, sess *models.OperatorSession, venueID string) error {
	sess.VenueID = venueID
	return nil
}

func (s *stubSessions) CacheVenue(ctx context.Context, venue *models.Venue) error {
	s.cachedVenues = append(s.cachedVenues, venue.ID)
	return nil
}

func loginResult(withVenue bool) *upstream.LoginResult {
	result := &upstream.LoginResult{Token: "upstream-token"}
	result.User.Name = "Asha"
	result.User.Email = "asha@example.com"
	if withVenue {
		result.Box = &models.Venue{ID: "box1", Name: "Greenfield Arena"}
	}
	return result
}

func TestLogin(t *testing.T) {
	t.Run("established account", func(t *testing.T) {
		sessions := &stubSessions{}
		svc := &DefaultAuthService{Upstream: &stubUpstream{loginResult: loginResult(true)}, Sessions: sessions}

		signin, err := svc.Login(context.Background(), models.LoginRequest{Email: "asha@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "gateway-token", signin.Token)
		assert.True(t, signin.HasVenue)
		assert.Equal(t, "box1", sessions.created.VenueID)
		assert.Equal(t, "upstream-token", sessions.created.UpstreamToken)
		assert.Contains(t, sessions.cachedVenues, "box1")
	})

	t.Run("fresh account without venue", func(t *testing.T) {
		sessions := &stubSessions{}
		svc := &DefaultAuthService{Upstream: &stubUpstream{loginResult: loginResult(false)}, Sessions: sessions}

		signin, err := svc.Login(context.Background(), models.LoginRequest{Email: "asha@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.False(t, signin.HasVenue)
		assert.Empty(t, sessions.created.VenueID)
		assert.Empty(t, sessions.cachedVenues)
	})

	t.Run("missing upstream token", func(t *testing.T) {
		svc := &DefaultAuthService{Upstream: &stubUpstream{loginResult: &upstream.LoginResult{}}, Sessions: &stubSessions{}}

		_, err := svc.Login(context.Background(), models.LoginRequest{})
		assert.ErrorIs(t, err, ErrEmptyToken)
	})

	t.Run("upstream rejection passes through", func(t *testing.T) {
		upErr := &upstream.APIError{StatusCode: 401, Message: "Invalid credentials"}
		svc := &DefaultAuthService{Upstream: &stubUpstream{loginErr: upErr}, Sessions: &stubSessions{}}

		_, err := svc.Login(context.Background(), models.LoginRequest{})
		var apiErr *upstream.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 401, apiErr.StatusCode)
	})
}

func TestRegisterVenue(t *testing.T) {
	sessions := &stubSessions{}
	svc := &DefaultAuthService{
		Upstream: &stubUpstream{registered: &models.Venue{ID: "box9", Name: "Riverside Turf"}},
		Sessions: sessions,
	}
	sess := &models.OperatorSession{SessionID: "sess-1", UpstreamToken: "upstream-token"}

	venue, err := svc.RegisterVenue(context.Background(), sess, models.RegisterVenueRequest{Name: "Riverside Turf"})
	require.NoError(t, err)
	assert.Equal(t, "box9", venue.ID)
	assert.Equal(t, "box9", sess.VenueID)
	assert.Contains(t, sessions.cachedVenues, "box9")
}

func TestLogout(t *testing.T) {
	sessions := &stubSessions{}
	svc := &DefaultAuthService{Upstream: &stubUpstream{}, Sessions: sessions}

	err := svc.Logout(context.Background(), &models.OperatorSession{SessionID: "sess-1"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessions.deletedSession)
}
