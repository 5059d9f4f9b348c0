// Package mongo holds the document repositories: one collection per entity,
// campgrounds embedding their image sub-records and review-id arrays.
package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection       = "users"
	campgroundsCollection = "campgrounds"
	reviewsCollection     = "reviews"
)

type Repo struct{ db *mongo.Database }

func New(db *mongo.Database) *Repo { return &Repo{db: db} }

func (r *Repo) camps() *mongo.Collection { return r.db.Collection(campgroundsCollection) }
func (r *Repo) revs() *mongo.Collection  { return r.db.Collection(reviewsCollection) }
func (r *Repo) users() *mongo.Collection { return r.db.Collection(usersCollection) }
