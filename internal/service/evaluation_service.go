package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"llm-eval/internal/domain"
	"llm-eval/internal/repository"
)

// EvaluationService orquesta la validación y persistencia de feedback.
type EvaluationService struct {
	logger  *zap.Logger
	repo    repository.EvaluationRepository
	limiter SubmitRateLimiter
}

var (
	ErrEvaluationServiceNotConfigured = errors.New("evaluation service not configured")
	ErrSubmitRateLimited              = errors.New("submission rate limit exceeded")
)

func NewEvaluationService(logger *zap.Logger, repo repository.EvaluationRepository, limiter SubmitRateLimiter) *EvaluationService {
	return &EvaluationService{
		logger:  logger,
		repo:    repo,
		limiter: limiter,
	}
}

// Submit valida el submission y lo persiste. Un request inválido nunca llega
// al repositorio; una falla de persistencia descarta el registro sin retry.
func (s *EvaluationService) Submit(ctx context.Context, sub domain.EvaluationSubmission) (string, error) {
	if s == nil || s.repo == nil {
		return "", ErrEvaluationServiceNotConfigured
	}

	eval, vErr := domain.ValidateSubmission(sub)
	if vErr != nil {
		return "", vErr
	}

	if s.limiter != nil && !s.limiter.Allow(eval.UserID) {
		return "", ErrSubmitRateLimited
	}

	id, err := s.repo.Insert(ctx, eval)
	if err != nil {
		return "", err
	}

	s.logger.Info("evaluation stored",
		zap.String("evaluation_id", id),
		zap.String("user_id", eval.UserID),
		zap.String("thumbs", eval.Thumbs),
	)
	return id, nil
}
