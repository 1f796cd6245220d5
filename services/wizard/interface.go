package wizard

import (
	"context"

	"medibook/models"
	"medibook/upstream"
)

// Service drives the booking wizard state machine. Every operation loads
// the session, applies one transition, and saves it back.
type Service interface {
	Start(ctx context.Context, userID, doctorID string) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error)
	SelectSlot(ctx context.Context, sessionID string, slot models.Slot) (*models.WizardSession, error)
	SetDetails(ctx context.Context, sessionID, appointmentType, reason string) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID, upstreamToken string) (*models.WizardSession, error)
	BookAnother(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements Service on top of the upstream API and a
// Redis-backed session store.
type DefaultWizardService struct {
	Upstream *upstream.Client
	Store    *SessionStore
}
