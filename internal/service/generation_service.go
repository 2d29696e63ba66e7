package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"llm-eval/internal/llm"
)

// GenerationService produce múltiples respuestas candidatas para un prompt,
// variando la temperatura, para que el usuario elija y califique una.
type GenerationService struct {
	logger *zap.Logger
	client llm.LLMClient
}

var ErrGenerationInvalidPrompt = errors.New("generation prompt must be non-empty")

// Temperaturas usadas por posición: determinista, balanceada, creativa.
var generationTemperatures = []float64{0.3, 0.7, 0.9}

func NewGenerationService(logger *zap.Logger, client llm.LLMClient) *GenerationService {
	return &GenerationService{logger: logger, client: client}
}

// GenerationResult agrupa las respuestas generadas y el chat_id asignado.
type GenerationResult struct {
	Responses []string
	ChatID    string
}

// Generate pide hasta numResponses respuestas al LLM. Una falla individual no
// aborta el lote: se reemplaza por un texto de respaldo.
func (s *GenerationService) Generate(ctx context.Context, prompt string, numResponses int) (GenerationResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return GenerationResult{}, ErrGenerationInvalidPrompt
	}
	if numResponses <= 0 || numResponses > len(generationTemperatures) {
		numResponses = len(generationTemperatures)
	}

	responses := make([]string, 0, numResponses)
	for i := 0; i < numResponses; i++ {
		temp := generationTemperatures[i]
		text, err := s.client.Generate(ctx, prompt, temp)
		if err != nil {
			s.logger.Warn("llm generation failed",
				zap.Int("index", i),
				zap.Float64("temperature", temp),
				zap.Error(err),
			)
			text = fmt.Sprintf("Response %d: This is a sample response for '%s'", i+1, prompt)
		}
		responses = append(responses, text)
	}

	return GenerationResult{
		Responses: responses,
		ChatID:    uuid.NewString(),
	}, nil
}
