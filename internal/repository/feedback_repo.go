package repository

import (
	"context"
	"time"

	"staffly-backend/internal/database"
	"staffly-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedback"),
	}
}

func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// FindByEmployeeID returns all feedback left for one employee, in store
// order. The aggregate is recomputed from this set on every read.
func (r *FeedbackRepo) FindByEmployeeID(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureIndexes creates necessary indexes for the feedback collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}},
	})
	return err
}
