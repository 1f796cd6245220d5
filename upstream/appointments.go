package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"medibook/models"
)

// InitiateRequest is phase one of the two-phase booking protocol. Start and
// end times are the ISO-8601 instants of the selected slot.
type InitiateRequest struct {
	DoctorID  string `json:"doctorId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
}

// ConfirmRequest is phase two: it echoes the appointment id from the
// initiate response and attaches the payment details.
type ConfirmRequest struct {
	AppointmentID  string                `json:"appointmentId"`
	PaymentDetails models.PaymentDetails `json:"paymentDetails"`
}

type appointmentEnvelope struct {
	Appointment json.RawMessage `json:"appointment"`
}

func decodeAppointment(raw json.RawMessage) (*models.Appointment, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("upstream response missing appointment")
	}
	var appt models.Appointment
	if err := json.Unmarshal(raw, &appt); err != nil {
		return nil, fmt.Errorf("failed to decode appointment: %w", err)
	}
	if appt.ID == "" {
		return nil, fmt.Errorf("upstream appointment has no id")
	}
	appt.Raw = raw
	return &appt, nil
}

// InitiateAppointment creates a tentative, unpaid appointment upstream and
// returns its identifier in "initiated" state.
func (c *Client) InitiateAppointment(ctx context.Context, token string, req InitiateRequest) (*models.Appointment, error) {
	var env appointmentEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings/appointments/initiate", token, nil, req, &env); err != nil {
		return nil, fmt.Errorf("failed to initiate appointment: %w", err)
	}
	return decodeAppointment(env.Appointment)
}

// ConfirmAppointment finalizes an initiated appointment with payment
// details and returns the confirmed record.
func (c *Client) ConfirmAppointment(ctx context.Context, token string, req ConfirmRequest) (*models.Appointment, error) {
	var env appointmentEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings/appointments/confirm", token, nil, req, &env); err != nil {
		return nil, fmt.Errorf("failed to confirm appointment: %w", err)
	}
	return decodeAppointment(env.Appointment)
}
