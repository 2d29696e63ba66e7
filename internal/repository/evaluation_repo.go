package repository

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"llm-eval/internal/domain"
)

type EvaluationRepository interface {
	Insert(ctx context.Context, eval domain.Evaluation) (string, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (domain.EvaluationStats, error)
	Ping(ctx context.Context) error
}

// MongoEvaluationRepository persiste evaluaciones en una colección de Mongo.
type MongoEvaluationRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoEvaluationRepository(client *mongo.Client, database, collection string) *MongoEvaluationRepository {
	return &MongoEvaluationRepository{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

// Insert asigna received_at y el identificador al momento de persistir.
// El insert es atómico: o queda el documento completo o se devuelve error.
func (r *MongoEvaluationRepository) Insert(ctx context.Context, eval domain.Evaluation) (string, error) {
	eval.ID = primitive.NewObjectID()
	eval.ReceivedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, eval); err != nil {
		return "", &domain.PersistenceError{Op: "insert", Err: err}
	}
	return eval.ID.Hex(), nil
}

func (r *MongoEvaluationRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, &domain.PersistenceError{Op: "count", Err: err}
	}
	return count, nil
}

// Stats agrega contadores básicos sobre la colección. Bajo escrituras
// concurrentes los valores son aproximados; no hay garantía transaccional.
func (r *MongoEvaluationRepository) Stats(ctx context.Context) (domain.EvaluationStats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return domain.EvaluationStats{}, &domain.PersistenceError{Op: "stats", Err: err}
	}
	up, err := r.collection.CountDocuments(ctx, bson.M{"thumbs": domain.ThumbsUp})
	if err != nil {
		return domain.EvaluationStats{}, &domain.PersistenceError{Op: "stats", Err: err}
	}
	down, err := r.collection.CountDocuments(ctx, bson.M{"thumbs": domain.ThumbsDown})
	if err != nil {
		return domain.EvaluationStats{}, &domain.PersistenceError{Op: "stats", Err: err}
	}
	users, err := r.collection.Distinct(ctx, "user_id", bson.M{})
	if err != nil {
		return domain.EvaluationStats{}, &domain.PersistenceError{Op: "stats", Err: err}
	}
	sessions, err := r.collection.Distinct(ctx, "session_id", bson.M{})
	if err != nil {
		return domain.EvaluationStats{}, &domain.PersistenceError{Op: "stats", Err: err}
	}

	return domain.EvaluationStats{
		TotalEvaluations: total,
		ThumbsUp:         up,
		ThumbsDown:       down,
		PositiveRate:     positiveRate(up, total),
		UniqueUsers:      len(users),
		UniqueSessions:   len(sessions),
	}, nil
}

func (r *MongoEvaluationRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return &domain.PersistenceError{Op: "ping", Err: err}
	}
	return nil
}

// positiveRate devuelve el porcentaje de thumbs up redondeado a 2 decimales.
func positiveRate(up, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(up)/float64(total)*100*100) / 100
}
