package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"site-backend/internal/models"
)

type ConsultationRepo struct {
	col *mongo.Collection
}

func NewConsultationRepo(col *mongo.Collection) *ConsultationRepo {
	return &ConsultationRepo{col: col}
}

func (r *ConsultationRepo) Insert(ctx context.Context, m *models.ConsultationMessage) error {
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *ConsultationRepo) ListNewestFirst(ctx context.Context) ([]models.ConsultationMessage, error) {
	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	msgs := []models.ConsultationMessage{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
