package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an admin account that can add employees and view the directory.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
