package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfdesk/models"
)

type stubAPI struct {
	analytics    *models.AnalyticsSummary
	analyticsErr error
	bookings     []models.Booking
	bookingsErr  error
	venue        *models.Venue
	venueErr     error
}

func (s *stubAPI) Analytics(ctx context.Context, token string) (*models.AnalyticsSummary, error) {
	return s.analytics, s.analyticsErr
}

func (s *stubAPI) Bookings(ctx context.Context, token string) ([]models.Booking, error) {
	return s.bookings, s.bookingsErr
}

func (s *stubAPI) Venue(ctx context.Context, token string) (*models.Venue, error) {
	return s.venue, s.venueErr
}

func fixedNow() time.Time {
	return time.Date(2024, time.May, 8, 12, 0, 0, 0, time.UTC)
}

func TestOverview(t *testing.T) {
	api := &stubAPI{
		analytics: &models.AnalyticsSummary{TotalEarnings: 4200, TotalBookings: 7, UpcomingBookings: 2},
		bookings: []models.Booking{
			{Date: "2024-05-07", StartTime: "18:00", EndTime: "19:00", BookingStatus: models.BookingStatusCompleted},
			{Date: "2024-05-07", StartTime: "09:00", EndTime: "10:00", BookingStatus: models.BookingStatusCancelled},
		},
		venue: &models.Venue{ID: "box1", Name: "Greenfield Arena"},
	}
	svc := &DefaultDashboardService{Upstream: api, Now: fixedNow}

	overview, err := svc.Overview(context.Background(), &models.OperatorSession{UpstreamToken: "tok"})
	require.NoError(t, err)

	assert.Equal(t, 7, overview.Analytics.TotalBookings)
	assert.Len(t, overview.Bookings, 2)
	assert.Equal(t, "box1", overview.Venue.ID)

	require.Len(t, overview.Charts.Weekly, 7)
	// 2024-05-07 is the day before the fixed now; both bookings land
	// there, cancelled included.
	assert.Equal(t, "2024-05-07", overview.Charts.Weekly[5].Date)
	assert.Equal(t, 2, overview.Charts.Weekly[5].Count)
}

func TestOverviewDegradesOnPartialFailure(t *testing.T) {
	api := &stubAPI{
		analyticsErr: errors.New("upstream down"),
		bookingsErr:  errors.New("upstream down"),
		venueErr:     errors.New("upstream down"),
	}
	svc := &DefaultDashboardService{Upstream: api, Now: fixedNow}

	overview, err := svc.Overview(context.Background(), &models.OperatorSession{})
	require.NoError(t, err)

	assert.Zero(t, overview.Analytics.TotalBookings)
	assert.Empty(t, overview.Bookings)
	assert.Nil(t, overview.Venue)
	assert.Len(t, overview.Charts.Weekly, 7)
	assert.Empty(t, overview.Charts.Hourly)
}

func TestExportBookingsCSV(t *testing.T) {
	api := &stubAPI{
		bookings: []models.Booking{
			{
				OrderID:       "ord-1",
				Date:          "2024-05-07",
				StartTime:     "18:00",
				EndTime:       "20:00",
				Duration:      2,
				TotalAmount:   1800,
				BookingStatus: models.BookingStatusCompleted,
				PaymentStatus: models.PaymentStatusSuccess,
				CourtDetails:  &models.CourtRef{ID: "c1", CourtName: "Court 1", SurfaceType: "turf"},
				User:          "u42",
			},
		},
	}
	svc := &DefaultDashboardService{Upstream: api}

	out, err := svc.ExportBookingsCSV(context.Background(), &models.OperatorSession{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Order ID,Date,Time,Duration,Total Amount,Status,Payment Status,Court Name,Surface Type,User ID", lines[0])
	assert.Equal(t, "ord-1,2024-05-07,18:00 - 20:00,2 hr,1800.00,completed,success,Court 1,turf,u42", lines[1])
}

func TestExportBookingsCSVUpstreamError(t *testing.T) {
	svc := &DefaultDashboardService{Upstream: &stubAPI{bookingsErr: errors.New("boom")}}

	_, err := svc.ExportBookingsCSV(context.Background(), &models.OperatorSession{})
	assert.Error(t, err)
}
