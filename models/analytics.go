package models

// AnalyticsSummary mirrors the turf backend's headline analytics payload.
type AnalyticsSummary struct {
	TotalEarnings    float64 `json:"totalEarnings"`
	TotalBookings    int     `json:"totalBookings"`
	UpcomingBookings int     `json:"upcomingBookings"`
}

// DailyPoint is one day in the trailing-week booking series.
type DailyPoint struct {
	Label string `json:"name"`     // short English weekday, e.g. "Mon"
	Count int    `json:"bookings"`
	Date  string `json:"fullDate"` // "YYYY-MM-DD"
}

// HourlyPoint is one start-time bucket in the peak-hours series.
type HourlyPoint struct {
	StartTime string `json:"time"` // "HH:MM"
	Count     int    `json:"count"`
}

// BookingCharts bundles both derived chart series for the dashboard.
type BookingCharts struct {
	Weekly []DailyPoint  `json:"weeklyData"`
	Hourly []HourlyPoint `json:"timeSlotData"`
}

// DashboardOverview is the aggregate payload served to the dashboard landing page.
type DashboardOverview struct {
	Analytics AnalyticsSummary `json:"analytics"`
	Bookings  []Booking        `json:"bookings"`
	Charts    BookingCharts    `json:"charts"`
	Venue     *Venue           `json:"venue,omitempty"`
}
