package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfdesk/models"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "manager@turf.io", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "utoken",
			"user":  map[string]string{"name": "Asha", "email": "manager@turf.io"},
			"box":   map[string]interface{}{"_id": "box1", "name": "Green Arena"},
		})
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	result, err := c.Login(context.Background(), "manager@turf.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "utoken", result.Token)
	assert.Equal(t, "Asha", result.User.Name)
	require.NotNil(t, result.Box)
	assert.Equal(t, "box1", result.Box.ID)
}

func TestBookingsSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/myturfbooking", r.URL.Path)
		require.Equal(t, "Bearer utoken", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"bookings": []models.Booking{
				{Date: "2024-05-01", StartTime: "18:00", EndTime: "19:00", CourtID: "A"},
			},
		})
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	bookings, err := c.Bookings(context.Background(), "utoken")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "18:00", bookings[0].StartTime)
}

func TestVenueEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []models.Venue{}})
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	_, err := c.Venue(context.Background(), "utoken")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCheckAvailabilityConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/booking/is-available/box1", r.URL.Path)

		var body AvailabilityCheck
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "18:00", body.StartTimes)
		assert.Equal(t, "20:00", body.EndTimes)

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Selected slot is NOT available."})
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	err := c.CheckAvailability(context.Background(), "utoken", "box1", AvailabilityCheck{
		Date:       "2024-05-01",
		StartTimes: "18:00",
		EndTimes:   "20:00",
		CourtID:    "A",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Selected slot is NOT available.", apiErr.Message)
}

func TestUpdateOperatingHours(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/update-operating-hours/box1", r.URL.Path)

		var body models.UpdateHoursRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "07:00", body.OpenTime)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClientWithBase(srv.URL, srv.Client())
	err := c.UpdateOperatingHours(context.Background(), "utoken", "box1", models.UpdateHoursRequest{
		OpenTime:  "07:00",
		CloseTime: "22:00",
	})
	require.NoError(t, err)
}
