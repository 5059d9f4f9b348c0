package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review has no parent pointer; the owning campground holds the list of review
// ids. Rating is an integer in [1,5].
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Body      string             `bson:"body" json:"body"`
	Rating    int                `bson:"rating" json:"rating"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
