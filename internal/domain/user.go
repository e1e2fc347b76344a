package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the domain model for recipe authors.
// Users are created once and never updated or deleted by this service.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Validate checks the declarative field constraints for a User.
func (u *User) Validate() Violations {
	v := Violations{}
	switch {
	case u.Name == "":
		v.Add("name", "name is required")
	case len(u.Name) < 3:
		v.Add("name", "name must be at least 3 characters")
	}
	switch {
	case u.Email == "":
		v.Add("email", "email is required")
	case !emailPattern.MatchString(u.Email):
		v.Add("email", "email is malformed")
	}
	return v
}
