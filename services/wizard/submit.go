package wizard

import (
	"context"
	"strings"
	"time"

	"medibook/models"
	"medibook/upstream"
	"medibook/utils"

	"go.uber.org/zap"
)

const genericBookingError = "Could not complete the booking. Please try again."

// Submit runs the two-phase booking protocol. Validation failures keep the
// wizard on the details step and never reach the network. Otherwise the
// machine moves to confirming, initiates the appointment upstream, confirms
// it with the stub cash payment, and lands on success. Any upstream failure
// rolls back to details with the draft intact so the user can resubmit
// without re-entering anything.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID, upstreamToken string) (*models.WizardSession, error) {
	session, err := s.editableSession(ctx, sessionID, "submit the booking")
	if err != nil {
		return nil, err
	}

	if fieldErrs := validateDraft(session); len(fieldErrs) > 0 {
		session.FieldErrors = fieldErrs
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	session.FieldErrors = nil
	session.ErrorMessage = ""
	if session.Type == "" {
		session.Type = models.AppointmentTypeConsultation
	}

	session.State = models.WizardStateConfirming
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()

	initiated, err := s.Upstream.InitiateAppointment(ctx, upstreamToken, upstream.InitiateRequest{
		DoctorID:  session.DoctorID,
		StartTime: session.SelectedSlot.Start.UTC().Format(time.RFC3339),
		EndTime:   session.SelectedSlot.End.UTC().Format(time.RFC3339),
		Type:      session.Type,
		Reason:    strings.TrimSpace(session.Reason),
	})
	if err != nil {
		logger.Warn("wizard: initiate failed",
			zap.String("sessionID", session.SessionID), zap.Error(err))
		return s.rollback(ctx, session, err)
	}

	confirmed, err := s.Upstream.ConfirmAppointment(ctx, upstreamToken, upstream.ConfirmRequest{
		AppointmentID:  initiated.ID,
		PaymentDetails: models.CashPending(),
	})
	if err != nil {
		// The upstream is left with a dangling initiated appointment; it is
		// not surfaced to the user and there is no client-side cleanup.
		logger.Warn("wizard: confirm failed after successful initiate",
			zap.String("sessionID", session.SessionID),
			zap.String("appointmentID", initiated.ID), zap.Error(err))
		return s.rollback(ctx, session, err)
	}

	session.State = models.WizardStateSuccess
	session.Appointment = confirmed
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("wizard: booking confirmed",
		zap.String("sessionID", session.SessionID),
		zap.String("appointmentID", confirmed.ID))
	return session, nil
}

// rollback returns a failed submission to the details step. The error is
// carried as inline session state, never as a handler error, so the form
// values survive for a manual retry.
func (s *DefaultWizardService) rollback(ctx context.Context, session *models.WizardSession, cause error) (*models.WizardSession, error) {
	session.State = models.WizardStateDetails
	session.ErrorMessage = upstream.Message(cause, genericBookingError)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// validateDraft checks the submit preconditions: a chosen date, a chosen
// slot, and a reason that is non-empty after trimming.
func validateDraft(session *models.WizardSession) map[string]string {
	fieldErrs := make(map[string]string)
	if session.Date == "" {
		fieldErrs["date"] = "Please choose an appointment date."
	}
	if session.SelectedSlot == nil {
		fieldErrs["slot"] = "Please choose a time slot."
	}
	if strings.TrimSpace(session.Reason) == "" {
		fieldErrs["reason"] = "Please describe the reason for your visit."
	}
	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}
