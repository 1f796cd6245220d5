package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/session"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes sign-up, sign-in and profile endpoints backed by the
// session service.
type AuthHandler struct {
	Sessions session.Service
}

// NewAuthHandler wires an auth handler.
func NewAuthHandler(sessions session.Service) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// Register creates an upstream account and signs the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	user, token, err := h.Sessions.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", upstream.Message(err, err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Login authenticates and establishes a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	user, token, err := h.Sessions.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "login failed", upstream.Message(err, "invalid credentials"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout tears the session down.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Sessions.SignOut(c.Request.Context(), userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedOut": true})
}

// GetProfile returns the cached profile snapshot of the signed-in user.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	authSession, err := h.Sessions.Current(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "session expired, please sign in again", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": authSession.User})
}

// UpdateProfile applies profile edits upstream and refreshes the snapshot.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	user, err := h.Sessions.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "profile update failed", upstream.Message(err, "try again later"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
