package http

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GenApp-Engine/internal/interfaces/http/handlers"
	"github.com/turtacn/GenApp-Engine/internal/interfaces/http/middleware"
)

// Handlers groups the endpoint implementations mounted by the router.
// Document may be nil when object storage is not configured.
type Handlers struct {
	Decision *handlers.DecisionHandler
	Deadline *handlers.DeadlineHandler
	Case     *handlers.CaseHandler
	Document *handlers.DocumentHandler
	Health   *handlers.HealthHandler
}

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(mode string, h Handlers, metrics *prometheus.Metrics, logger logging.Logger) *gin.Engine {
	gin.SetMode(mode)
	engine := gin.New()
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestLogging(logger, metrics))

	engine.GET("/healthz", h.Health.Live)
	engine.GET("/readyz", h.Health.Ready)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/cases", h.Case.ListByState)
		v1.GET("/cases/:reference", h.Case.Get)
		v1.POST("/cases/:reference/decision", h.Decision.Apply)
		v1.POST("/cases/:reference/decision/preview", h.Decision.Preview)

		v1.GET("/deadlines/response", h.Deadline.Response)
		v1.GET("/deadlines/judicial-order", h.Deadline.JudicialOrder)

		if h.Document != nil {
			v1.POST("/cases/:reference/documents", h.Document.Upload)
			v1.GET("/documents/*key", h.Document.Download)
			v1.GET("/documents-link/*key", h.Document.Presign)
		}
	}
	return engine
}
