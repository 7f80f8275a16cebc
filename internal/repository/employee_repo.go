package repository

import (
	"context"
	"time"

	"staffly-backend/internal/database"
	"staffly-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type EmployeeRepo struct {
	collection *mongo.Collection
}

func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{
		collection: database.GetCollection("employees"),
	}
}

func (r *EmployeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	employee.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return err
	}
	employee.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *EmployeeRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// FindAll returns every employee in store order. The directory is small
// enough that no pagination is applied.
func (r *EmployeeRepo) FindAll(ctx context.Context) ([]models.Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// EnsureIndexes creates necessary indexes for the employees collection
func (r *EmployeeRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_user_id", Value: 1}},
	})
	return err
}
