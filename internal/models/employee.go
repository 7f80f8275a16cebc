package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Employee is one directory entry. Only firstName, surname, email and
// phoneNumber are required; every other field may be the empty string.
// Records are created once and never updated or deleted.
type Employee struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string        `bson:"first_name" json:"firstName"`
	Surname     string        `bson:"surname" json:"surname"`
	MiddleName  string        `bson:"middle_name" json:"middleName"`
	Email       string        `bson:"email" json:"email"`
	PhoneNumber string        `bson:"phone_number" json:"phoneNumber"`
	Street      string        `bson:"street" json:"street"`
	Town        string        `bson:"town" json:"town"`
	Postcode    string        `bson:"postcode" json:"postcode"`
	Country     string        `bson:"country" json:"country"`
	City        string        `bson:"city" json:"city"`
	PhotoURL    string        `bson:"photo_url" json:"photoURL"`
	OwnerUserID bson.ObjectID `bson:"owner_user_id" json:"ownerUserId"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}

// FullName joins first, middle and surname, skipping empty parts.
func (e *Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.Surname} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
