package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles permitidos dentro del historial de chat.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Valores permitidos para la calificación thumbs.
const (
	ThumbsUp   = "up"
	ThumbsDown = "down"
)

// ChatMessage es un mensaje individual de la conversación evaluada.
type ChatMessage struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// Evaluation es el registro de feedback que se persiste en Mongo.
// Se escribe una sola vez; nunca se actualiza ni se borra.
type Evaluation struct {
	ID              primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ChatHistory     []ChatMessage      `json:"chat_history" bson:"chat_history"`
	ExactTurn       string             `json:"exact_turn" bson:"exact_turn"`
	Thumbs          string             `json:"thumbs" bson:"thumbs"`
	UserID          string             `json:"user_id" bson:"user_id"`
	SessionID       string             `json:"session_id" bson:"session_id"`
	ChatID          string             `json:"chat_id" bson:"chat_id"`
	ChatCreatedAt   time.Time          `json:"chat_created_at" bson:"chat_created_at"`
	ThumbsCreatedAt time.Time          `json:"thumbs_created_at" bson:"thumbs_created_at"`
	ReceivedAt      time.Time          `json:"received_at" bson:"received_at"`
}

// EvaluationStats resume la colección de evaluaciones almacenadas.
type EvaluationStats struct {
	TotalEvaluations int64   `json:"total_evaluations"`
	ThumbsUp         int64   `json:"thumbs_up"`
	ThumbsDown       int64   `json:"thumbs_down"`
	PositiveRate     float64 `json:"positive_rate"`
	UniqueUsers      int     `json:"unique_users"`
	UniqueSessions   int     `json:"unique_sessions"`
}
