package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/services/user"
	"slotwise/utils"
)

// AuthHandler serves registration, login and account endpoints.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Register creates an account and returns a fresh token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("invalid registration payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Login authenticates by email (or username) and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	u, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Logout revokes the presented token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bearer token"})
		return
	}

	if err := utils.RevokeToken(c.Request.Context(), utils.HashToken(tokenString), 24*time.Hour); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// DeleteAccount removes the account and its whole schedule.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.Service.DeleteUser(ctx, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InvalidateAvailability(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
