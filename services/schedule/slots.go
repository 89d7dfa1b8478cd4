package schedule

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"turfdesk/models"
	"turfdesk/utils"
)

// ErrInvalidRange reports an empty or inverted operating window.
var ErrInvalidRange = errors.New("invalid operating window")

// GenerateSlots produces the ordered catalog of hour-long slots covering
// [openHour, closeHour). The window must satisfy 0 <= open < close <= 24;
// anything else returns ErrInvalidRange. Output depends only on the inputs,
// so results are safe to reuse across calls.
func GenerateSlots(openHour, closeHour int) ([]models.TimeSlot, error) {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, openHour, closeHour)
	}

	slots := make([]models.TimeSlot, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		start := fmt.Sprintf("%02d:00", h)
		end := fmt.Sprintf("%02d:00", h+1)
		slots = append(slots, models.TimeSlot{
			ID:        start + "-" + end,
			StartTime: start,
			EndTime:   end,
			Label:     start + " - " + end,
		})
	}
	return slots, nil
}

// SlotsForWindow generates slots for the given window, falling back to the
// default 06:00-23:00 catalog when the window is invalid. The fallback is
// logged but never surfaced as an error; a venue with a broken operating
// window still gets a usable slot picker.
func SlotsForWindow(openHour, closeHour int) []models.TimeSlot {
	slots, err := GenerateSlots(openHour, closeHour)
	if err != nil {
		utils.GetLogger().Warn("falling back to default operating window",
			zap.Int("openHour", openHour), zap.Int("closeHour", closeHour), zap.Error(err))
		slots, _ = GenerateSlots(models.DefaultOpenHour, models.DefaultCloseHour)
	}
	return slots
}
