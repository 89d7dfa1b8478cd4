package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"turfdesk/models"
	"turfdesk/utils"
)

// AggregateWeekly reduces the booking snapshot to daily counts for the
// trailing 7 local calendar days ending at now, oldest first. Days without
// bookings are zero-filled so the series always has exactly 7 points.
//
// Counting matches on the booking's own date string, so every booking is
// counted regardless of status, cancelled ones included. The availability
// projector excludes cancelled bookings; the charts deliberately do not,
// since a cancellation is still demand worth seeing.
func AggregateWeekly(bookings []models.Booking, now time.Time) []models.DailyPoint {
	points := make([]models.DailyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")

		count := 0
		for _, b := range bookings {
			if b.Date == dateStr {
				count++
			}
		}

		points = append(points, models.DailyPoint{
			Label: day.Format("Mon"),
			Count: count,
			Date:  dateStr,
		})
	}
	return points
}

// AggregateHourly groups the snapshot by start time and counts occurrences,
// ascending by time of day. Only observed start times appear; there is no
// zero-fill. Bookings with an empty start time are skipped silently,
// malformed ones with a warning.
func AggregateHourly(bookings []models.Booking) []models.HourlyPoint {
	counts := make(map[string]int)
	for _, b := range bookings {
		if b.StartTime == "" {
			continue
		}
		if !ValidClock(b.StartTime) {
			utils.GetLogger().Warn("skipping booking with malformed start time",
				zap.String("bookingId", b.ID), zap.String("startTime", b.StartTime))
			continue
		}
		counts[b.StartTime]++
	}

	points := make([]models.HourlyPoint, 0, len(counts))
	for t, c := range counts {
		points = append(points, models.HourlyPoint{StartTime: t, Count: c})
	}

	// "09:00" -> 900; for valid 24-hour strings this numeric order equals
	// chronological order.
	sort.Slice(points, func(i, j int) bool {
		return clockValue(points[i].StartTime) < clockValue(points[j].StartTime)
	})
	return points
}

// BuildBookingCharts derives both chart series from one consistent snapshot.
func BuildBookingCharts(bookings []models.Booking, now time.Time) models.BookingCharts {
	return models.BookingCharts{
		Weekly: AggregateWeekly(bookings, now),
		Hourly: AggregateHourly(bookings),
	}
}

func clockValue(s string) int {
	n, _ := strconv.Atoi(strings.Replace(s, ":", "", 1))
	return n
}
