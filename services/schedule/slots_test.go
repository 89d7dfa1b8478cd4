package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name      string
		openHour  int
		closeHour int
		wantCount int
		wantErr   bool
	}{
		{name: "default window", openHour: 6, closeHour: 23, wantCount: 17},
		{name: "full day", openHour: 0, closeHour: 24, wantCount: 24},
		{name: "single hour", openHour: 9, closeHour: 10, wantCount: 1},
		{name: "empty window", openHour: 10, closeHour: 10, wantErr: true},
		{name: "inverted window", openHour: 18, closeHour: 6, wantErr: true},
		{name: "negative open", openHour: -1, closeHour: 10, wantErr: true},
		{name: "close past midnight", openHour: 6, closeHour: 25, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.openHour, tt.closeHour)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRange)
				assert.Nil(t, slots)
				return
			}
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			// Contiguous, non-overlapping, ascending hour-long slots.
			for i, s := range slots {
				assert.Equal(t, s.StartTime+"-"+s.EndTime, s.ID)
				assert.Equal(t, s.StartTime+" - "+s.EndTime, s.Label)
				if i > 0 {
					assert.Equal(t, slots[i-1].EndTime, s.StartTime)
					assert.Less(t, slots[i-1].StartTime, s.StartTime)
				}
			}
		})
	}
}

func TestGenerateSlotsZeroPadding(t *testing.T) {
	slots, err := GenerateSlots(6, 23)
	require.NoError(t, err)

	assert.Equal(t, "06:00-07:00", slots[0].ID)
	assert.Equal(t, "06:00", slots[0].StartTime)
	assert.Equal(t, "07:00", slots[0].EndTime)
	assert.Equal(t, "22:00-23:00", slots[len(slots)-1].ID)
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	first, err := GenerateSlots(8, 12)
	require.NoError(t, err)
	second, err := GenerateSlots(8, 12)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSlotsForWindowFallback(t *testing.T) {
	// Invalid windows fall back to the documented 06:00-23:00 default.
	slots := SlotsForWindow(23, 6)
	require.Len(t, slots, 17)
	assert.Equal(t, "06:00-07:00", slots[0].ID)

	// Valid windows pass through untouched.
	slots = SlotsForWindow(10, 12)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00-11:00", slots[0].ID)
}
