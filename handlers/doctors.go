package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/session"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler proxies the doctor directory and reviews.
type DoctorHandler struct {
	Upstream *upstream.Client
	Sessions session.Service
}

// NewDoctorHandler wires a doctor handler.
func NewDoctorHandler(client *upstream.Client, sessions session.Service) *DoctorHandler {
	return &DoctorHandler{Upstream: client, Sessions: sessions}
}

// List returns the doctor directory, filtered by specialization/search.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.Upstream.ListDoctors(c.Request.Context(), c.Query("specialization"), c.Query("search"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load doctors", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// Get returns one doctor's projection.
func (h *DoctorHandler) Get(c *gin.Context) {
	doctor, err := h.Upstream.GetDoctor(c.Request.Context(), c.Param("doctorID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load doctor", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// ListReviews returns the reviews posted for a doctor.
func (h *DoctorHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Upstream.ListDoctorReviews(c.Request.Context(), c.Param("doctorID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load reviews", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// CreateReview posts a review on behalf of the signed-in patient.
func (h *DoctorHandler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	authSession, err := h.Sessions.Current(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "session expired, please sign in again", "")
		return
	}

	review, err := h.Upstream.CreateReview(c.Request.Context(), authSession.UpstreamToken, c.Param("doctorID"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to post review", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}
