package domain

import (
	"fmt"
	"strings"
	"time"
)

// EvaluationSubmission es la forma cruda del body JSON antes de validar.
// Los timestamps llegan como texto y se parsean durante la validación.
type EvaluationSubmission struct {
	ChatHistory     []ChatMessage `json:"chat_history"`
	ExactTurn       string        `json:"exact_turn"`
	Thumbs          string        `json:"thumbs"`
	UserID          string        `json:"user_id"`
	SessionID       string        `json:"session_id"`
	ChatID          string        `json:"chat_id"`
	ChatCreatedAt   string        `json:"chat_created_at"`
	ThumbsCreatedAt string        `json:"thumbs_created_at"`
}

// ValidateSubmission convierte un submission en una Evaluation bien tipada o
// devuelve un ValidationError con cada violación encontrada. No tiene efectos
// secundarios; ReceivedAt queda en cero y lo asigna el repositorio al insertar.
func ValidateSubmission(sub EvaluationSubmission) (Evaluation, *ValidationError) {
	vErr := &ValidationError{}

	if len(sub.ChatHistory) == 0 {
		vErr.add("chat_history", "must be a non-empty list of messages")
	}
	for i, msg := range sub.ChatHistory {
		if !validRole(msg.Role) {
			vErr.add(fmt.Sprintf("chat_history[%d].role", i), "must be one of: user, assistant, system")
		}
		if strings.TrimSpace(msg.Content) == "" {
			vErr.add(fmt.Sprintf("chat_history[%d].content", i), "must be non-empty")
		}
	}

	if sub.Thumbs != ThumbsUp && sub.Thumbs != ThumbsDown {
		vErr.add("thumbs", `must be exactly "up" or "down"`)
	}

	userID := strings.TrimSpace(sub.UserID)
	if userID == "" {
		vErr.add("user_id", "must be non-empty")
	}
	sessionID := strings.TrimSpace(sub.SessionID)
	if sessionID == "" {
		vErr.add("session_id", "must be non-empty")
	}
	chatID := strings.TrimSpace(sub.ChatID)
	if chatID == "" {
		vErr.add("chat_id", "must be non-empty")
	}
	if strings.TrimSpace(sub.ExactTurn) == "" {
		vErr.add("exact_turn", "must be non-empty")
	}

	chatCreatedAt, err := parseTimestamp(sub.ChatCreatedAt)
	if err != nil {
		vErr.add("chat_created_at", err.Error())
	}
	thumbsCreatedAt, err := parseTimestamp(sub.ThumbsCreatedAt)
	if err != nil {
		vErr.add("thumbs_created_at", err.Error())
	}

	if len(vErr.Fields) > 0 {
		return Evaluation{}, vErr
	}

	return Evaluation{
		ChatHistory:     sub.ChatHistory,
		ExactTurn:       sub.ExactTurn,
		Thumbs:          sub.Thumbs,
		UserID:          userID,
		SessionID:       sessionID,
		ChatID:          chatID,
		ChatCreatedAt:   chatCreatedAt,
		ThumbsCreatedAt: thumbsCreatedAt,
	}, nil
}

func validRole(role string) bool {
	return role == RoleUser || role == RoleAssistant || role == RoleSystem
}

// parseTimestamp exige RFC 3339, que siempre incluye offset de zona horaria.
func parseTimestamp(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("must be present")
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be a timezone-aware RFC 3339 timestamp")
	}
	return t, nil
}
