package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/application/notification"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// DecisionHandler exposes judicial-decision processing.
type DecisionHandler struct {
	service *notification.Service
}

// NewDecisionHandler constructs a DecisionHandler.
func NewDecisionHandler(service *notification.Service) *DecisionHandler {
	return &DecisionHandler{service: service}
}

// Apply handles POST /api/v1/cases/:reference/decision.
func (h *DecisionHandler) Apply(c *gin.Context) {
	var decision gacase.JudicialDecision
	if err := c.ShouldBindJSON(&decision); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "decode decision body"))
		return
	}

	result, err := h.service.ApplyDecision(c.Request.Context(), c.Param("reference"), &decision)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// previewResponse is the dry-run planning result.
type previewResponse struct {
	NextState gacase.State                      `json:"nextState"`
	Intents   []notification.NotificationIntent `json:"intents"`
}

// Preview handles POST /api/v1/cases/:reference/decision/preview.  It plans
// the notifications without sending, persisting, or publishing anything.
func (h *DecisionHandler) Preview(c *gin.Context) {
	var decision gacase.JudicialDecision
	if err := c.ShouldBindJSON(&decision); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "decode decision body"))
		return
	}

	intents, next, err := h.service.PlanOnly(c.Request.Context(), c.Param("reference"), &decision)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, previewResponse{NextState: next, Intents: intents})
}
