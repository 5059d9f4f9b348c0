package domain

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CampgroundRepository interface {
	// Write paths
	InsertCampground(ctx context.Context, c Campground) (primitive.ObjectID, error)
	UpdateCampground(ctx context.Context, id primitive.ObjectID, up CampgroundUpdate) error
	AppendImages(ctx context.Context, id primitive.ObjectID, imgs []Image) error
	PullImages(ctx context.Context, id primitive.ObjectID, filenames []string) error
	PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error
	PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error
	// DeleteCampground returns the deleted document so the caller can cascade
	// its review references. found is false when the id no longer exists.
	DeleteCampground(ctx context.Context, id primitive.ObjectID) (doc Campground, found bool, err error)

	// Read paths
	ListCampgrounds(ctx context.Context) ([]Campground, error)
	GetCampground(ctx context.Context, id primitive.ObjectID) (Campground, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, r Review) (primitive.ObjectID, error)
	GetReview(ctx context.Context, id primitive.ObjectID) (Review, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) error
	DeleteReviews(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	// FindReviews returns the reviews for ids in the same order as ids,
	// skipping any that no longer exist.
	FindReviews(ctx context.Context, ids []primitive.ObjectID) ([]Review, error)
}

type UserRepository interface {
	InsertUser(ctx context.Context, u User) (primitive.ObjectID, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	FindUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]User, error)
}

// Geocoder turns a free-text location into a GeoJSON point. Zero candidates is
// a *GeocodeError, not an empty point.
type Geocoder interface {
	Forward(ctx context.Context, location string) (GeoPoint, error)
}

// ImageStore is the external image host. Upload streams one file and returns
// its hosted record; Destroy removes a previously uploaded file by its stored
// filename.
type ImageStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (Image, error)
	Destroy(ctx context.Context, filename string) error
}
