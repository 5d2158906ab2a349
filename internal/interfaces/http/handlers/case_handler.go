package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/postgres/repositories"
)

// CaseHandler exposes read access to stored cases.
type CaseHandler struct {
	repo *repositories.CaseRepository
}

// NewCaseHandler constructs a CaseHandler.
func NewCaseHandler(repo *repositories.CaseRepository) *CaseHandler {
	return &CaseHandler{repo: repo}
}

// caseView decorates a snapshot with its derived visibility.
type caseView struct {
	*gacase.CaseSnapshot
	Cloaked bool `json:"cloaked"`
}

// Get handles GET /api/v1/cases/:reference.
func (h *CaseHandler) Get(c *gin.Context) {
	snapshot, err := h.repo.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, caseView{CaseSnapshot: snapshot, Cloaked: snapshot.IsCloaked()})
}

// ListByState handles GET /api/v1/cases?state=...&limit=50.
func (h *CaseHandler) ListByState(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	snapshots, err := h.repo.ListByState(c.Request.Context(), gacase.State(c.Query("state")), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]caseView, 0, len(snapshots))
	for _, s := range snapshots {
		views = append(views, caseView{CaseSnapshot: s, Cloaked: s.IsCloaked()})
	}
	c.JSON(http.StatusOK, gin.H{"cases": views, "count": len(views)})
}
