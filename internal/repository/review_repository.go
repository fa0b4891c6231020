package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"site-backend/internal/models"
)

type ReviewRepo struct {
	col *mongo.Collection
}

func NewReviewRepo(col *mongo.Collection) *ReviewRepo {
	return &ReviewRepo{col: col}
}

func (r *ReviewRepo) Insert(ctx context.Context, rev *models.Review) error {
	if rev.Date.IsZero() {
		rev.Date = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, rev)
	return err
}

// ListNewestFirst returns every review sorted by date descending.
func (r *ReviewRepo) ListNewestFirst(ctx context.Context) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
