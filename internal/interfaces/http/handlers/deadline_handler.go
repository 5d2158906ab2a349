package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// DeadlineHandler exposes deadline arithmetic for caseworker tooling.
type DeadlineHandler struct {
	calculator *calendar.DeadlineCalculator
}

// NewDeadlineHandler constructs a DeadlineHandler.
func NewDeadlineHandler(calculator *calendar.DeadlineCalculator) *DeadlineHandler {
	return &DeadlineHandler{calculator: calculator}
}

type deadlineResponse struct {
	From     time.Time `json:"from"`
	Days     int       `json:"days"`
	Deadline time.Time `json:"deadline"`
}

// Response handles GET /api/v1/deadlines/response?from=2025-06-10&days=5.
// It returns the working-day deadline fixed to end of business.
func (h *DeadlineHandler) Response(c *gin.Context) {
	from, days, err := parseDeadlineQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlineResponse{
		From:     from,
		Days:     days,
		Deadline: h.calculator.ApplicantResponseDeadline(from, days),
	})
}

// JudicialOrder handles GET /api/v1/deadlines/judicial-order?from=...&days=7.
// It returns the calendar-day deadline with the weekend-only shift.
func (h *DeadlineHandler) JudicialOrder(c *gin.Context) {
	from, days, err := parseDeadlineQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlineResponse{
		From:     from,
		Days:     days,
		Deadline: h.calculator.JudicialOrderDeadlineDate(from, days),
	})
}

func parseDeadlineQuery(c *gin.Context) (time.Time, int, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, 0, errors.New(errors.ErrCodeBadRequest, "from must be a yyyy-mm-dd date")
	}
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days < 0 {
		return time.Time{}, 0, errors.New(errors.ErrCodeDeadlineInvalidWindow, "days must be a non-negative integer")
	}
	return from, days, nil
}
