package handlers

import (
	"net/http"
	"strconv"

	"medibook/services/session"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler proxies the admin dashboard endpoints. Routes using it are
// gated by the admin role middleware.
type AdminHandler struct {
	Upstream *upstream.Client
	Sessions session.Service
}

// NewAdminHandler wires an admin handler.
func NewAdminHandler(client *upstream.Client, sessions session.Service) *AdminHandler {
	return &AdminHandler{Upstream: client, Sessions: sessions}
}

func (h *AdminHandler) upstreamToken(c *gin.Context) (string, bool) {
	authSession, err := h.Sessions.Current(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "session expired, please sign in again", "")
		return "", false
	}
	return authSession.UpstreamToken, true
}

// Overview returns the dashboard counters.
func (h *AdminHandler) Overview(c *gin.Context) {
	token, ok := h.upstreamToken(c)
	if !ok {
		return
	}
	overview, err := h.Upstream.GetAdminOverview(c.Request.Context(), token)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load admin overview", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Appointments returns a filtered page of appointments for the admin table.
func (h *AdminHandler) Appointments(c *gin.Context) {
	token, ok := h.upstreamToken(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	result, err := h.Upstream.ListAdminAppointments(c.Request.Context(), token, c.Query("status"), c.Query("date"), page)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load appointments", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, result)
}
