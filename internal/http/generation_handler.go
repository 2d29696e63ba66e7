package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"llm-eval/internal/service"
)

// GenerationHandler mantiene dependencias para el endpoint de generación.
type GenerationHandler struct {
	logger     *zap.Logger
	generation *service.GenerationService
}

func NewGenerationHandler(logger *zap.Logger, generation *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		logger:     logger,
		generation: generation,
	}
}

// GenerateResponses maneja POST /api/v1/generate-responses.
func (h *GenerationHandler) GenerateResponses(c *gin.Context) {
	var req struct {
		UserPrompt   string `json:"user_prompt" binding:"required"`
		NumResponses int    `json:"num_responses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.generation.Generate(c.Request.Context(), req.UserPrompt, req.NumResponses)
	if err != nil {
		if errors.Is(err, service.ErrGenerationInvalidPrompt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_prompt must be non-empty"})
			return
		}
		h.logger.Error("generate responses failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("Successfully generated %d responses", len(result.Responses)),
		"user_prompt": req.UserPrompt,
		"responses":   result.Responses,
		"chat_id":     result.ChatID,
		"timestamp":   time.Now().UTC(),
	})
}
