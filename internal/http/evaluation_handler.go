package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"llm-eval/internal/domain"
	"llm-eval/internal/service"
)

// EvaluationHandler mantiene dependencias para el endpoint de feedback.
type EvaluationHandler struct {
	logger      *zap.Logger
	evaluations *service.EvaluationService
}

func NewEvaluationHandler(logger *zap.Logger, evaluations *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		logger:      logger,
		evaluations: evaluations,
	}
}

// SubmitEvaluation maneja POST /api/v1/evaluation.
func (h *EvaluationHandler) SubmitEvaluation(c *gin.Context) {
	var sub domain.EvaluationSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.logger.Warn("malformed evaluation body", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  []domain.FieldError{{Field: "body", Message: "must be a valid JSON object"}},
		})
		return
	}

	id, err := h.evaluations.Submit(c.Request.Context(), sub)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"errors":  vErr.Fields,
			})
		case errors.Is(err, service.ErrSubmitRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "too many submissions, try again later",
			})
		default:
			h.logger.Error("save evaluation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "could not save evaluation",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Feedback submitted successfully",
		"evaluation_id": id,
		"timestamp":     time.Now().UTC(),
	})
}
