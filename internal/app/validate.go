package app

import (
	"fmt"
	"strings"

	"yelpcamp/internal/domain"
)

// CampgroundInput is the payload for creating or updating a campground.
type CampgroundInput struct {
	Title       string
	Location    string
	Price       float64
	Description string
}

// ReviewInput is the payload for posting a review.
type ReviewInput struct {
	Body   string
	Rating int
}

const (
	RatingMin = 1
	RatingMax = 5
)

// ValidateCampground checks the fixed campground shape. It returns a single
// *domain.ValidationError listing every violation, or nil. It never mutates
// the input and runs before any external call or persistence.
func ValidateCampground(in CampgroundInput) error {
	var v domain.ValidationError
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		v.Add("location is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		v.Add("description is required")
	}
	if in.Price < 0 {
		v.Add("price must be greater than or equal to 0")
	}
	return v.Err()
}

func ValidateReview(in ReviewInput) error {
	var v domain.ValidationError
	if strings.TrimSpace(in.Body) == "" {
		v.Add("body is required")
	}
	if in.Rating < RatingMin || in.Rating > RatingMax {
		v.Add(fmt.Sprintf("rating must be an integer between %d and %d", RatingMin, RatingMax))
	}
	return v.Err()
}

func ValidateRegistration(email, username, password string) error {
	var v domain.ValidationError
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		v.Add("a valid email is required")
	}
	if strings.TrimSpace(username) == "" {
		v.Add("username is required")
	}
	if password == "" {
		v.Add("password is required")
	}
	return v.Err()
}
