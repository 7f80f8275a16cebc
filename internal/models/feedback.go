package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback is one star-rated comment left for an employee, usually via
// the public page behind the employee's QR code. Entries are append-only:
// never edited, never deleted.
type Feedback struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID bson.ObjectID `bson:"employee_id" json:"employeeId"`
	Text       string        `bson:"text" json:"feedback"`
	Rating     int           `bson:"rating" json:"rating"`
	CreatedAt  time.Time     `bson:"created_at" json:"timestamp"`
}
