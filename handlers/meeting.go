package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/services/meeting"
	"slotwise/utils"
)

// MeetingHandler serves meeting request endpoints. Creation is public (a
// visitor books against a user's slug); the rest require the schedule owner.
type MeetingHandler struct {
	Service meeting.MeetingService
}

// NewMeetingHandler constructs a MeetingHandler.
func NewMeetingHandler(svc meeting.MeetingService) *MeetingHandler {
	return &MeetingHandler{Service: svc}
}

// CreateMeeting records a visitor's meeting request.
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req models.MeetingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("invalid meeting payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting requested", "meeting": created})
}

// ListMeetings returns the owner's meeting requests.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	meetings, err := h.Service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// GetMeeting returns one meeting request.
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	m, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": m})
}

// AcceptMeeting confirms a meeting and blocks its interval on the calendar.
func (h *MeetingHandler) AcceptMeeting(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	m, err := h.Service.Accept(ctx, userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InvalidateAvailability(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Meeting accepted", "meeting": m})
}

// ToggleMeeting archives or restores a meeting by flipping its active flag.
func (h *MeetingHandler) ToggleMeeting(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	m, err := h.Service.Toggle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting updated", "meeting": m})
}

// DeleteMeeting removes a meeting request.
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted"})
}
