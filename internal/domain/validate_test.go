package domain

import (
	"strings"
	"testing"
	"time"
)

func validSubmission() EvaluationSubmission {
	return EvaluationSubmission{
		ChatHistory: []ChatMessage{
			{Role: RoleUser, Content: "Hello"},
			{Role: RoleAssistant, Content: "Hi, how can I help?"},
		},
		ExactTurn:       "Hi, how can I help?",
		Thumbs:          ThumbsUp,
		UserID:          "user_123",
		SessionID:       "session_456",
		ChatID:          "chat_789",
		ChatCreatedAt:   "2025-11-12T10:30:00Z",
		ThumbsCreatedAt: "2025-11-12T10:31:00Z",
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	eval, vErr := ValidateSubmission(validSubmission())
	if vErr != nil {
		t.Fatalf("expected no error, got %v (%v)", vErr, vErr.Fields)
	}
	if len(eval.ChatHistory) != 2 {
		t.Fatalf("expected chat history preserved, got %d messages", len(eval.ChatHistory))
	}
	if eval.Thumbs != ThumbsUp {
		t.Fatalf("expected thumbs up, got %q", eval.Thumbs)
	}
	want := time.Date(2025, 11, 12, 10, 30, 0, 0, time.UTC)
	if !eval.ChatCreatedAt.Equal(want) {
		t.Fatalf("expected chat_created_at %v, got %v", want, eval.ChatCreatedAt)
	}
	if !eval.ReceivedAt.IsZero() {
		t.Fatalf("expected received_at unset until persistence, got %v", eval.ReceivedAt)
	}
}

func TestValidateSubmission_TrimsIdentifiers(t *testing.T) {
	sub := validSubmission()
	sub.UserID = "  user_123  "
	sub.SessionID = "\tsession_456"

	eval, vErr := ValidateSubmission(sub)
	if vErr != nil {
		t.Fatalf("expected no error, got %v", vErr.Fields)
	}
	if eval.UserID != "user_123" || eval.SessionID != "session_456" {
		t.Fatalf("expected trimmed ids, got user=%q session=%q", eval.UserID, eval.SessionID)
	}
}

func TestValidateSubmission_ThumbsOutsideEnum(t *testing.T) {
	for _, thumbs := range []string{"sideways", "UP", "Down", "", " up"} {
		sub := validSubmission()
		sub.Thumbs = thumbs

		_, vErr := ValidateSubmission(sub)
		if vErr == nil {
			t.Fatalf("expected validation error for thumbs=%q", thumbs)
		}
		if !hasFieldError(vErr, "thumbs") {
			t.Fatalf("expected thumbs field error for %q, got %v", thumbs, vErr.Fields)
		}
	}
}

func TestValidateSubmission_EmptyChatHistory(t *testing.T) {
	sub := validSubmission()
	sub.ChatHistory = nil

	_, vErr := ValidateSubmission(sub)
	if vErr == nil {
		t.Fatalf("expected validation error for empty chat_history")
	}
	if !hasFieldError(vErr, "chat_history") {
		t.Fatalf("expected chat_history field error, got %v", vErr.Fields)
	}
}

func TestValidateSubmission_BadMessageRoleAndContent(t *testing.T) {
	sub := validSubmission()
	sub.ChatHistory = []ChatMessage{
		{Role: "robot", Content: "Hello"},
		{Role: RoleUser, Content: "   "},
	}

	_, vErr := ValidateSubmission(sub)
	if vErr == nil {
		t.Fatalf("expected validation error")
	}
	if !hasFieldError(vErr, "chat_history[0].role") {
		t.Fatalf("expected role error, got %v", vErr.Fields)
	}
	if !hasFieldError(vErr, "chat_history[1].content") {
		t.Fatalf("expected content error, got %v", vErr.Fields)
	}
}

func TestValidateSubmission_TimestampsRequireZone(t *testing.T) {
	sub := validSubmission()
	sub.ChatCreatedAt = "2025-11-12T10:30:00"
	sub.ThumbsCreatedAt = "12/11/2025 10:31"

	_, vErr := ValidateSubmission(sub)
	if vErr == nil {
		t.Fatalf("expected validation error for naive timestamps")
	}
	if !hasFieldError(vErr, "chat_created_at") || !hasFieldError(vErr, "thumbs_created_at") {
		t.Fatalf("expected both timestamp errors, got %v", vErr.Fields)
	}
}

func TestValidateSubmission_OffsetTimestampAccepted(t *testing.T) {
	sub := validSubmission()
	sub.ChatCreatedAt = "2025-11-12T07:30:00-03:00"

	eval, vErr := ValidateSubmission(sub)
	if vErr != nil {
		t.Fatalf("expected offset timestamp to parse, got %v", vErr.Fields)
	}
	want := time.Date(2025, 11, 12, 10, 30, 0, 0, time.UTC)
	if !eval.ChatCreatedAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, eval.ChatCreatedAt)
	}
}

func TestValidateSubmission_CollectsEveryViolation(t *testing.T) {
	_, vErr := ValidateSubmission(EvaluationSubmission{})
	if vErr == nil {
		t.Fatalf("expected validation error for empty submission")
	}
	// chat_history, thumbs, user_id, session_id, chat_id, exact_turn y ambos timestamps.
	if len(vErr.Fields) != 8 {
		t.Fatalf("expected 8 field errors, got %d: %v", len(vErr.Fields), vErr.Fields)
	}
	for _, field := range []string{"chat_history", "thumbs", "user_id", "session_id", "chat_id", "exact_turn", "chat_created_at", "thumbs_created_at"} {
		if !hasFieldError(vErr, field) {
			t.Fatalf("expected error for field %q, got %v", field, vErr.Fields)
		}
	}
	if !strings.Contains(vErr.Error(), "8") {
		t.Fatalf("expected error message to carry the count, got %q", vErr.Error())
	}
}

func hasFieldError(vErr *ValidationError, field string) bool {
	for _, fe := range vErr.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}
