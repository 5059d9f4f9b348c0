package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is referenced, never embedded, by campgrounds and reviews.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
