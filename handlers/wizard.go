package handlers

import (
	"errors"
	"net/http"
	"time"

	"medibook/models"
	"medibook/services/session"
	"medibook/services/wizard"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard over HTTP. Each endpoint maps to
// exactly one state machine operation.
type WizardHandler struct {
	Svc      wizard.Service
	Sessions session.Service
}

// NewWizardHandler wires a wizard handler.
func NewWizardHandler(svc wizard.Service, sessions session.Service) *WizardHandler {
	return &WizardHandler{Svc: svc, Sessions: sessions}
}

// slotView pairs a slot with its derived display label.
type slotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// wizardView is the response shape for every wizard endpoint: the full
// machine state, with slot labels derived on the way out.
type wizardView struct {
	SessionID    string              `json:"sessionId"`
	State        string              `json:"state"`
	Doctor       *models.Doctor      `json:"doctor,omitempty"`
	DoctorError  string              `json:"doctorError,omitempty"`
	Date         string              `json:"date,omitempty"`
	Slots        []slotView          `json:"slots"`
	SelectedSlot *slotView           `json:"selectedSlot,omitempty"`
	Type         string              `json:"type,omitempty"`
	Reason       string              `json:"reason,omitempty"`
	SlotsMessage string              `json:"slotsMessage,omitempty"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
	FieldErrors  map[string]string   `json:"fieldErrors,omitempty"`
	Appointment  *models.Appointment `json:"appointment,omitempty"`
}

func toSlotView(s models.Slot) slotView {
	return slotView{
		Start: s.Start.UTC().Format(time.RFC3339),
		End:   s.End.UTC().Format(time.RFC3339),
		Label: s.Label(),
	}
}

func toWizardView(s *models.WizardSession) wizardView {
	view := wizardView{
		SessionID:    s.SessionID,
		State:        s.State,
		Doctor:       s.Doctor,
		DoctorError:  s.DoctorError,
		Date:         s.Date,
		Slots:        make([]slotView, 0, len(s.Slots)),
		Type:         s.Type,
		Reason:       s.Reason,
		SlotsMessage: s.SlotsMessage,
		ErrorMessage: s.ErrorMessage,
		FieldErrors:  s.FieldErrors,
		Appointment:  s.Appointment,
	}
	for _, slot := range s.Slots {
		view.Slots = append(view.Slots, toSlotView(slot))
	}
	if s.SelectedSlot != nil {
		sv := toSlotView(*s.SelectedSlot)
		view.SelectedSlot = &sv
	}
	return view
}

// Start creates a wizard session for a doctor.
func (h *WizardHandler) Start(c *gin.Context) {
	var input struct {
		DoctorID string `json:"doctorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	sessionState, err := h.Svc.Start(c.Request.Context(), userID, input.DoctorID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking wizard", err.Error())
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// Get returns the current wizard state.
func (h *WizardHandler) Get(c *gin.Context) {
	sessionState, ok := h.ownedSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// SelectDate commits a date change and refreshes the slot list.
func (h *WizardHandler) SelectDate(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionState, err := h.Svc.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// SelectSlot picks one of the fetched slots.
func (h *WizardHandler) SelectSlot(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	var input struct {
		Slot models.Slot `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionState, err := h.Svc.SelectSlot(c.Request.Context(), c.Param("sessionID"), input.Slot)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// SetDetails records appointment type and reason.
func (h *WizardHandler) SetDetails(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	var input struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionState, err := h.Svc.SetDetails(c.Request.Context(), c.Param("sessionID"), input.Type, input.Reason)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// Submit runs the two-phase booking. Validation and booking failures come
// back as wizard state, not HTTP errors.
func (h *WizardHandler) Submit(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}

	userID := c.GetString("userID")
	authSession, err := h.Sessions.Current(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "session expired, please sign in again", err.Error())
		return
	}

	sessionState, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"), authSession.UpstreamToken)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// BookAnother resets a completed wizard for the next booking.
func (h *WizardHandler) BookAnother(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	sessionState, err := h.Svc.BookAnother(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWizardView(sessionState))
}

// Cancel discards the wizard session entirely.
func (h *WizardHandler) Cancel(c *gin.Context) {
	if _, ok := h.ownedSession(c); !ok {
		return
	}
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking wizard", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// ownedSession loads the session from the path parameter and enforces that
// it belongs to the caller. Foreign sessions are indistinguishable from
// missing ones.
func (h *WizardHandler) ownedSession(c *gin.Context) (*models.WizardSession, bool) {
	sessionState, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return nil, false
	}
	if sessionState.UserID != c.GetString("userID") {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		return nil, false
	}
	return sessionState, true
}

// renderError maps wizard service errors onto HTTP responses.
func (h *WizardHandler) renderError(c *gin.Context, err error) {
	var validationErr *wizard.ValidationError
	var stateErr *wizard.StateError

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, wizard.ErrDoctorUnavailable):
		utils.JSONError(c, http.StatusConflict, "doctor details unavailable", "start a new booking")
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &stateErr):
		utils.JSONError(c, http.StatusConflict, "invalid wizard state", stateErr.Error())
	default:
		getLogger(c).Error("wizard handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
