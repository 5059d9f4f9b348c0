package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is one hosted picture on a campground. Filename is the stored name at
// the external image host and is the key used to delete it there.
type Image struct {
	URL      string `bson:"url" json:"url"`
	Filename string `bson:"filename" json:"filename"`
}

// Thumbnail derives the host's resized variant of the image URL.
func (i Image) Thumbnail() string {
	return strings.Replace(i.URL, "/upload", "/upload/w_300", 1)
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Campground struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Location    string               `bson:"location" json:"location"`
	Geometry    GeoPoint             `bson:"geometry" json:"geometry"`
	Price       float64              `bson:"price" json:"price"`
	Description string               `bson:"description" json:"description"`
	Images      []Image              `bson:"images" json:"images"`
	Author      primitive.ObjectID   `bson:"author" json:"author"`
	Reviews     []primitive.ObjectID `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

// CampgroundUpdate carries the mutable fields of a campground. Geometry is
// deliberately absent: the geocoded point is set once at creation and is never
// recomputed, even when the location text changes.
type CampgroundUpdate struct {
	Title       string
	Location    string
	Price       float64
	Description string
}

// CampgroundDetail is the read model for the show page: the campground with its
// author and every review (with that review's author) resolved.
type CampgroundDetail struct {
	Campground Campground
	Author     User
	Reviews    []ReviewDetail
}

type ReviewDetail struct {
	Review Review
	Author User
}
