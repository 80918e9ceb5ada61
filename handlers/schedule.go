package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/services/schedule"
	"slotwise/services/user"
	"slotwise/utils"
)

// ScheduleHandler serves the availability read and write endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Users   user.UserService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService, users user.UserService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Users: users}
}

// GetDailySchedule resolves the authenticated user's availability for one date.
func (h *ScheduleHandler) GetDailySchedule(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	h.dailyFor(c, userID)
}

// GetMonthlySchedule lists the authenticated user's bookable dates in a month.
func (h *ScheduleHandler) GetMonthlySchedule(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	h.monthlyFor(c, userID)
}

// PublicDailySchedule resolves availability for a user identified by their
// public slug, for visitors picking a meeting slot.
func (h *ScheduleHandler) PublicDailySchedule(c *gin.Context) {
	owner, err := h.Users.GetByUsername(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.dailyFor(c, owner.ID)
}

// PublicMonthlySchedule is the slug-addressed variant of GetMonthlySchedule.
func (h *ScheduleHandler) PublicMonthlySchedule(c *gin.Context) {
	owner, err := h.Users.GetByUsername(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.monthlyFor(c, owner.ID)
}

func (h *ScheduleHandler) dailyFor(c *gin.Context, userID string) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a date", "")
		return
	}

	ctx := c.Request.Context()
	cacheKey := "daily:" + date
	var cached models.ResolvedDay
	if utils.GetCachedAvailability(ctx, userID, cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resolved, err := h.Service.ResolveDay(ctx, userID, date, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SetCachedAvailability(ctx, userID, cacheKey, resolved)
	c.JSON(http.StatusOK, resolved)
}

func (h *ScheduleHandler) monthlyFor(c *gin.Context, userID string) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	var err error
	if y := c.Query("year"); y != "" {
		if year, err = strconv.Atoi(y); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid year", y)
			return
		}
	}
	if m := c.Query("month"); m != "" {
		if month, err = strconv.Atoi(m); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid month", m)
			return
		}
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("monthly:%04d-%02d", year, month)
	var cached models.MonthAvailability
	if utils.GetCachedAvailability(ctx, userID, cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.Service.ResolveMonth(ctx, userID, year, month, now)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SetCachedAvailability(ctx, userID, cacheKey, result)
	c.JSON(http.StatusOK, result)
}

// CreateSchedule applies a full schedule write batch.
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	h.applySchedule(c, "Schedule saved successfully")
}

// EditSchedule re-applies a schedule write batch over the existing rules.
func (h *ScheduleHandler) EditSchedule(c *gin.Context) {
	h.applySchedule(c, "Schedule updated successfully")
}

func (h *ScheduleHandler) applySchedule(c *gin.Context, okMessage string) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.ScheduleWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("invalid schedule payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.ApplySchedule(ctx, userID, req); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InvalidateAvailability(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"message": okMessage})
}

// DeleteSchedule removes every rule the user owns.
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.DeleteAll(ctx, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InvalidateAvailability(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"message": "All unavailability deleted"})
}
