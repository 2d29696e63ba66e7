package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"llm-eval/internal/llm"
	"llm-eval/internal/service"
)

func setupGenerationRouter(client llm.LLMClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewGenerationService(zap.NewNop(), client)
	h := NewGenerationHandler(zap.NewNop(), svc)
	r.POST("/api/v1/generate-responses", h.GenerateResponses)
	return r
}

func TestGenerateResponses_Success(t *testing.T) {
	client := &llm.MockClient{Responses: []string{"a", "b", "c"}}
	r := setupGenerationRouter(client)

	rec := performRequest(r, http.MethodPost, "/api/v1/generate-responses", map[string]any{
		"user_prompt":   "best laptop under 50k?",
		"num_responses": 3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success   bool     `json:"success"`
		Responses []string `json:"responses"`
		ChatID    string   `json:"chat_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success || len(resp.Responses) != 3 || resp.ChatID == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestGenerateResponses_MissingPrompt(t *testing.T) {
	r := setupGenerationRouter(&llm.MockClient{})

	rec := performRequest(r, http.MethodPost, "/api/v1/generate-responses", map[string]any{
		"num_responses": 2,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
