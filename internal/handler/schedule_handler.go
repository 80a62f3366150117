package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunseat-app/service-schedule/internal/application"
	"github.com/sunseat-app/service-schedule/internal/response"
)

// ScheduleHandler handles HTTP requests for seat schedule computation.
type ScheduleHandler struct {
	service *application.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(service *application.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// RegisterRoutes registers all schedule routes on the given router group.
func (h *ScheduleHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/seat-schedule", h.SuggestSchedule)
}

// suggestScheduleRequest is the request body for POST /api/v1/seat-schedule.
// start_time accepts either RFC 3339 or a bare "HH:MM", which is taken to
// mean that wall-clock time today.
type suggestScheduleRequest struct {
	From            string `json:"from" binding:"required"`
	To              string `json:"to" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

// SuggestSchedule handles POST /api/v1/seat-schedule.
func (h *ScheduleHandler) SuggestSchedule(c *gin.Context) {
	var req suggestScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		response.BadRequest(c, "start_time must be RFC 3339 or HH:MM")
		return
	}

	result, err := h.service.SuggestSeatSchedule(c.Request.Context(), application.SuggestRequest{
		FromPlace:       req.From,
		ToPlace:         req.To,
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseStartTime parses either an RFC 3339 timestamp or an HH:MM wall-clock
// time on today's date, in local time.
func parseStartTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
