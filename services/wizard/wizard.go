package wizard

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/upstream"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a new wizard session for the given doctor and fetches the
// doctor projection. A failed doctor lookup still yields a session, but one
// marked unusable: every draft operation on it is rejected and the caller
// renders a page-level error.
func (s *DefaultWizardService) Start(ctx context.Context, userID, doctorID string) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		State:     models.WizardStateDetails,
		DoctorID:  doctorID,
		CreatedAt: time.Now(),
	}

	doctor, err := s.Upstream.GetDoctor(ctx, doctorID)
	if err != nil {
		utils.GetLogger().Warn("wizard: doctor lookup failed",
			zap.String("doctorID", doctorID), zap.Error(err))
		session.DoctorError = upstream.Message(err, "Could not load doctor details.")
	} else {
		session.Doctor = doctor
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current session state.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectDate commits a new appointment date and fetches the slot list for
// it. Changing the date always clears the previously selected slot before
// anything else: a slot only ever belongs to the slot list it came from.
// The fetch carries a per-session sequence number; its result is applied
// only if no later date change was committed while it was in flight.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error) {
	session, err := s.editableSession(ctx, sessionID, "select a date")
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, &ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD form"}
	}

	// Commit the date change before fetching so a slower, earlier fetch
	// can detect it has been superseded.
	session.Date = date
	session.SelectedSlot = nil
	session.Slots = nil
	session.SlotsMessage = ""
	session.SlotFetchSeq++
	seq := session.SlotFetchSeq
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	slots, fetchErr := s.Upstream.GetAvailability(ctx, session.DoctorID, date)

	// Re-load: only the latest committed fetch may publish its result.
	session, err = s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SlotFetchSeq != seq || session.Date != date {
		utils.GetLogger().Debug("wizard: discarding stale slot fetch",
			zap.String("sessionID", sessionID), zap.String("date", date))
		return session, nil
	}

	switch {
	case fetchErr != nil:
		utils.GetLogger().Warn("wizard: slot fetch failed",
			zap.String("doctorID", session.DoctorID), zap.String("date", date), zap.Error(fetchErr))
		session.Slots = nil
		session.SlotsMessage = upstream.Message(fetchErr, "Could not load available slots. Please try another date.")
	case len(slots) == 0:
		session.Slots = nil
		session.SlotsMessage = "No available slots for this date."
	default:
		session.Slots = slots
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot picks one of the fetched slots. The slot is matched by value
// against the committed slot list, so a selection from a superseded list
// cannot survive a date change.
func (s *DefaultWizardService) SelectSlot(ctx context.Context, sessionID string, slot models.Slot) (*models.WizardSession, error) {
	session, err := s.editableSession(ctx, sessionID, "select a slot")
	if err != nil {
		return nil, err
	}

	var match *models.Slot
	for i := range session.Slots {
		if session.Slots[i].Equal(slot) {
			match = &session.Slots[i]
			break
		}
	}
	if match == nil {
		return nil, &ValidationError{Field: "slot", Message: "selected slot is not in the available slot list"}
	}

	session.SelectedSlot = match
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDetails records the appointment type and free-text reason. An empty
// type defaults to a consultation, matching the form's initial value.
func (s *DefaultWizardService) SetDetails(ctx context.Context, sessionID, appointmentType, reason string) (*models.WizardSession, error) {
	session, err := s.editableSession(ctx, sessionID, "set appointment details")
	if err != nil {
		return nil, err
	}

	if appointmentType == "" {
		appointmentType = models.AppointmentTypeConsultation
	}
	if !models.ValidAppointmentType(appointmentType) {
		return nil, &ValidationError{Field: "type", Message: fmt.Sprintf("unknown appointment type %q", appointmentType)}
	}

	session.Type = appointmentType
	session.Reason = reason
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// BookAnother resets a completed wizard back to an empty details step,
// keeping the doctor so the next booking starts immediately.
func (s *DefaultWizardService) BookAnother(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.WizardStateSuccess {
		return nil, &StateError{State: session.State, Action: "book another appointment"}
	}

	session.ClearDraft()
	session.State = models.WizardStateDetails
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel deletes the session outright. Nothing is persisted; there is no
// cancelled state.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// editableSession loads a session and checks it accepts draft edits.
func (s *DefaultWizardService) editableSession(ctx context.Context, sessionID, action string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.DoctorError != "" {
		return nil, ErrDoctorUnavailable
	}
	if session.State != models.WizardStateDetails {
		return nil, &StateError{State: session.State, Action: action}
	}
	return session, nil
}
