// Package dashboard assembles the landing-page overview: headline analytics,
// the booking list and the derived chart series, fetched concurrently.
package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"turfdesk/models"
	"turfdesk/services/schedule"
	"turfdesk/utils"
)

// TurfAPI is the slice of the upstream client the dashboard needs.
type TurfAPI interface {
	Analytics(ctx context.Context, token string) (*models.AnalyticsSummary, error)
	Bookings(ctx context.Context, token string) ([]models.Booking, error)
	Venue(ctx context.Context, token string) (*models.Venue, error)
}

// DashboardService serves the overview and the booking export.
type DashboardService interface {
	Overview(ctx context.Context, sess *models.OperatorSession) (*models.DashboardOverview, error)
	ExportBookingsCSV(ctx context.Context, sess *models.OperatorSession) ([]byte, error)
}

// DefaultDashboardService implements DashboardService against the turf backend.
type DefaultDashboardService struct {
	Upstream TurfAPI

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Overview fetches analytics, bookings and the venue in parallel and
// derives the chart series from the booking snapshot. Partial upstream
// failures degrade to empty sections rather than failing the whole page.
func (s *DefaultDashboardService) Overview(ctx context.Context, sess *models.OperatorSession) (*models.DashboardOverview, error) {
	logger := utils.GetLogger()
	token := sess.UpstreamToken

	var (
		wg        sync.WaitGroup
		analytics *models.AnalyticsSummary
		bookings  []models.Booking
		venue     *models.Venue
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if analytics, err = s.Upstream.Analytics(ctx, token); err != nil {
			logger.Warn("dashboard analytics fetch failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if bookings, err = s.Upstream.Bookings(ctx, token); err != nil {
			logger.Warn("dashboard bookings fetch failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if venue, err = s.Upstream.Venue(ctx, token); err != nil {
			logger.Warn("dashboard venue fetch failed", zap.Error(err))
		}
	}()
	wg.Wait()

	overview := &models.DashboardOverview{
		Bookings: bookings,
		Charts:   schedule.BuildBookingCharts(bookings, s.now()),
		Venue:    venue,
	}
	if analytics != nil {
		overview.Analytics = *analytics
	}
	if overview.Bookings == nil {
		overview.Bookings = []models.Booking{}
	}
	return overview, nil
}
