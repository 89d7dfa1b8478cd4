package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"turfdesk/models"
)

var exportHeaders = []string{
	"Order ID",
	"Date",
	"Time",
	"Duration",
	"Total Amount",
	"Status",
	"Payment Status",
	"Court Name",
	"Surface Type",
	"User ID",
}

// ExportBookingsCSV renders the full booking snapshot as a spreadsheet
// download, one row per booking in upstream order.
func (s *DefaultDashboardService) ExportBookingsCSV(ctx context.Context, sess *models.OperatorSession) ([]byte, error) {
	bookings, err := s.Upstream.Bookings(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if err := w.Write(exportRow(b)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(b models.Booking) []string {
	courtName, surfaceType := "", ""
	if b.CourtDetails != nil {
		courtName = b.CourtDetails.CourtName
		surfaceType = b.CourtDetails.SurfaceType
	}
	return []string{
		b.OrderID,
		b.Date,
		fmt.Sprintf("%s - %s", b.StartTime, b.EndTime),
		strconv.Itoa(b.Duration) + " hr",
		strconv.FormatFloat(b.TotalAmount, 'f', 2, 64),
		b.BookingStatus,
		b.PaymentStatus,
		courtName,
		surfaceType,
		b.User,
	}
}
