package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfdesk/middleware"
	"turfdesk/models"
	"turfdesk/services/auth"
	"turfdesk/services/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthService struct {
	signin   *auth.Signin
	loginErr error
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (*auth.Signin, error) {
	return s.signin, s.loginErr
}

func (s *stubAuthService) Signup(ctx context.Context, req models.SignupRequest) (*auth.Signin, error) {
	return s.signin, nil
}

func (s *stubAuthService) RegisterVenue(ctx context.Context, sess *models.OperatorSession, req models.RegisterVenueRequest) (*models.Venue, error) {
	return nil, nil
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error { return nil }

func (s *stubAuthService) ResetPassword(ctx context.Context, resetToken, password string) error {
	return nil
}

func (s *stubAuthService) Logout(ctx context.Context, sess *models.OperatorSession) error {
	return nil
}

type stubBookingService struct {
	grid       *models.AvailabilityGrid
	confirmErr error
}

func (s *stubBookingService) AvailabilityGrid(ctx context.Context, sess *models.OperatorSession, date, courtID string) (*models.AvailabilityGrid, error) {
	return s.grid, nil
}

func (s *stubBookingService) CheckAvailability(ctx context.Context, sess *models.OperatorSession, input models.OfflineBookingInput) error {
	return nil
}

func (s *stubBookingService) ConfirmBooking(ctx context.Context, sess *models.OperatorSession, input models.OfflineBookingInput) error {
	return s.confirmErr
}

func (s *stubBookingService) GuestHistory(ctx context.Context, sess *models.OperatorSession, phone string) (*booking.GuestHistory, error) {
	return &booking.GuestHistory{Phone: phone}, nil
}

// withSession injects an operator session the way the auth middleware would.
func withSession(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, &models.OperatorSession{SessionID: "sess-1", UpstreamToken: "tok"})
	})
	r.POST("/t", handler)
	r.GET("/t", handler)
	return r
}

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubAuthService{signin: &auth.Signin{Token: "gateway-token", HasVenue: true}}
		r := gin.New()
		r.POST("/login", LoginHandler(svc))

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "gateway-token")
	})

	t.Run("malformed body", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", LoginHandler(&stubAuthService{}))

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAvailabilityGridHandler(t *testing.T) {
	grid := &models.AvailabilityGrid{Date: "2024-05-07", CourtID: "c1"}
	r := withSession(AvailabilityGridHandler(&stubBookingService{grid: grid}))

	req := httptest.NewRequest(http.MethodGet, "/t?date=2024-05-07&courtId=c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2024-05-07")
}

func TestConfirmBookingHandlerMapsConflict(t *testing.T) {
	r := withSession(ConfirmBookingHandler(&stubBookingService{confirmErr: booking.ErrSlotTaken}))

	body := `{"courtId":"c1","date":"2024-05-07","slotIds":["18:00-19:00"]}`
	req := httptest.NewRequest(http.MethodPost, "/t", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlersRejectMissingSession(t *testing.T) {
	r := gin.New()
	r.GET("/t", DashboardHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
