package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotwise/services/contact"
	"slotwise/services/meeting"
	"slotwise/services/schedule"
	"slotwise/services/user"
	"slotwise/utils"
)

// respondServiceError maps service errors onto HTTP responses. Bad input from
// the caller is a 400, missing resources a 404, everything else a 500 with the
// detail withheld.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidDateFormat),
		errors.Is(err, schedule.ErrInvalidTimeFormat),
		errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, schedule.ErrInvalidMonth),
		errors.Is(err, schedule.ErrMissingDate):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, meeting.ErrMeetingNotFound),
		errors.Is(err, contact.ErrContactNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, meeting.ErrAlreadyAccepted):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", err.Error())
	default:
		utils.GetLogger().Error("internal error: " + err.Error())
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// authedUserID pulls the user ID placed in the context by the JWT middleware.
func authedUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in context"})
		return "", false
	}
	return id, true
}
