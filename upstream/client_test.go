package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailabilityFiltersInvalidSlots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/doctors/doc-42/availability", r.URL.Path)
		assert.Equal(t, "2025-09-01", r.URL.Query().Get("date"))
		w.Write([]byte(`{"slots":[
			{"start":"2025-09-01T09:00:00Z","end":"2025-09-01T09:30:00Z"},
			{"start":"2025-09-01T10:00:00Z","end":"2025-09-01T09:30:00Z"},
			{"start":"2025-09-01T11:00:00Z","end":"2025-09-01T11:30:00Z"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	slots, err := client.GetAvailability(context.Background(), "doc-42", "2025-09-01")
	require.NoError(t, err)
	// The inverted interval is dropped, not an error.
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00 AM - 09:30 AM", slots[0].Label())
	assert.Equal(t, "11:00 AM - 11:30 AM", slots[1].Label())
}

func TestGetAvailabilityToleratesAbsentSlots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	slots, err := client.GetAvailability(context.Background(), "doc-42", "2025-09-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"slot no longer available"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.InitiateAppointment(context.Background(), "tok", InitiateRequest{DoctorID: "doc-42"})
	require.Error(t, err)

	assert.Equal(t, "slot no longer available", Message(err, "fallback"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestMessageFallsBackOnTransportErrors(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := client.GetDoctor(context.Background(), "doc-42")
	require.Error(t, err)
	assert.Equal(t, "generic fallback", Message(err, "generic fallback"))
}

func TestInitiateAndConfirmRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/bookings/appointments/initiate":
			var req InitiateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "doc-42", req.DoctorID)
			assert.Equal(t, "consultation", req.Type)
			w.Write([]byte(`{"appointment":{"_id":"a1","status":"initiated"}}`))
		case "/bookings/appointments/confirm":
			var req ConfirmRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "a1", req.AppointmentID)
			assert.Equal(t, "cash", req.PaymentDetails.Method)
			w.Write([]byte(`{"appointment":{"_id":"a1","status":"confirmed"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx := context.Background()

	initiated, err := client.InitiateAppointment(ctx, "tok", InitiateRequest{
		DoctorID:  "doc-42",
		StartTime: "2025-09-01T09:00:00Z",
		EndTime:   "2025-09-01T09:30:00Z",
		Type:      "consultation",
		Reason:    "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", initiated.ID)
	assert.Equal(t, "initiated", initiated.Status)

	confirmed, err := client.ConfirmAppointment(ctx, "tok", ConfirmRequest{
		AppointmentID:  initiated.ID,
		PaymentDetails: models.CashPending(),
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", confirmed.ID)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.NotEmpty(t, confirmed.Raw)
}

func TestAppointmentEnvelopeRequiresID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"appointment":{"status":"initiated"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.InitiateAppointment(context.Background(), "tok", InitiateRequest{})
	assert.Error(t, err)
}
