package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"llm-eval/internal/repository"
)

// MetaHandler atiende los endpoints de metadata, salud y estadísticas.
type MetaHandler struct {
	logger     *zap.Logger
	repo       repository.EvaluationRepository
	appName    string
	appVersion string
}

func NewMetaHandler(logger *zap.Logger, repo repository.EvaluationRepository, appName, appVersion string) *MetaHandler {
	return &MetaHandler{
		logger:     logger,
		repo:       repo,
		appName:    appName,
		appVersion: appVersion,
	}
}

// Root maneja GET /.
func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.appName,
		"version": h.appVersion,
		"endpoints": gin.H{
			"submit_evaluation":  "/api/v1/evaluation",
			"generate_responses": "/api/v1/generate-responses",
			"stats":              "/api/v1/stats",
			"health":             "/health",
		},
	})
}

// Health maneja GET /health y verifica que el almacenamiento responda.
func (h *MetaHandler) Health(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC(),
	})
}

// Stats maneja GET /api/v1/stats. Lectura idempotente, sin efectos.
func (h *MetaHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
