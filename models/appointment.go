package models

import "encoding/json"

// Appointment types accepted by the upstream booking API.
const (
	AppointmentTypeConsultation = "consultation"
	AppointmentTypeFollowUp     = "follow-up"
	AppointmentTypeEmergency    = "emergency"
)

// ValidAppointmentType reports whether t is one of the accepted types.
func ValidAppointmentType(t string) bool {
	switch t {
	case AppointmentTypeConsultation, AppointmentTypeFollowUp, AppointmentTypeEmergency:
		return true
	}
	return false
}

// PaymentDetails is attached when confirming an appointment. The upstream
// currently only supports recording a cash payment as pending.
type PaymentDetails struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// CashPending is the stub payment used for every confirmation.
func CashPending() PaymentDetails {
	return PaymentDetails{Method: "cash", Status: "pending"}
}

// Appointment is the server-owned booking record. The gateway never creates
// or mutates it directly; it only echoes the identifier between the initiate
// and confirm phases and hands the final record back to the caller. Raw
// preserves the upstream payload verbatim so no fields are lost in transit.
type Appointment struct {
	ID        string          `json:"_id"`
	DoctorID  string          `json:"doctorId,omitempty"`
	StartTime string          `json:"startTime,omitempty"`
	EndTime   string          `json:"endTime,omitempty"`
	Type      string          `json:"type,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Status    string          `json:"status,omitempty"`
	Raw       json.RawMessage `json:"-"`
}
