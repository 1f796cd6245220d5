package models

import "time"

// Wizard states. The machine is linear: details -> confirming -> success.
// A failed submission rolls back to details; there is no cancelled state,
// cancellation simply deletes the session.
const (
	WizardStateDetails    = "details"
	WizardStateConfirming = "confirming"
	WizardStateSuccess    = "success"
)

// WizardSession holds the full state of one booking wizard between requests.
// It lives in Redis under a TTL and is never persisted anywhere else.
type WizardSession struct {
	SessionID string  `json:"sessionId"`
	UserID    string  `json:"userId"`
	State     string  `json:"state"`
	DoctorID  string  `json:"doctorId"`
	Doctor    *Doctor `json:"doctor,omitempty"`
	// DoctorError marks the session unusable when the doctor lookup failed.
	DoctorError string `json:"doctorError,omitempty"`

	// Draft fields, cleared as a whole on "book another".
	Date         string `json:"date,omitempty"` // YYYY-MM-DD
	Slots        []Slot `json:"slots,omitempty"`
	SelectedSlot *Slot  `json:"selectedSlot,omitempty"`
	Type         string `json:"type,omitempty"`
	Reason       string `json:"reason,omitempty"`

	// SlotFetchSeq increments on every date change; the slot list above is
	// only ever the result of the fetch carrying the highest sequence seen.
	SlotFetchSeq int64  `json:"slotFetchSeq,omitempty"`
	SlotsMessage string `json:"slotsMessage,omitempty"`

	// ErrorMessage carries a failed submission's message back to the
	// details step. FieldErrors carry local validation failures.
	ErrorMessage string            `json:"errorMessage,omitempty"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`

	Appointment *Appointment `json:"appointment,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ClearDraft resets every draft field to its empty initial value. Doctor
// metadata is kept so the user can immediately book another appointment.
func (w *WizardSession) ClearDraft() {
	w.Date = ""
	w.Slots = nil
	w.SelectedSlot = nil
	w.Type = ""
	w.Reason = ""
	w.SlotsMessage = ""
	w.ErrorMessage = ""
	w.FieldErrors = nil
	w.Appointment = nil
}
