package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yelpcamp/internal/domain"
)

// ReviewService owns review CRUD, nested under a campground.
type ReviewService struct {
	camps domain.CampgroundRepository
	revs  domain.ReviewRepository
}

func NewReviewService(camps domain.CampgroundRepository, revs domain.ReviewRepository) *ReviewService {
	return &ReviewService{camps: camps, revs: revs}
}

// Create appends a new review by author onto the campground. The target must
// exist, so no orphan review is ever persisted: the review insert happens
// first, and a failed back-reference push is compensated by deleting the
// just-inserted review.
func (s *ReviewService) Create(ctx context.Context, campgroundID, author primitive.ObjectID, in ReviewInput) (domain.Review, error) {
	if err := ValidateReview(in); err != nil {
		return domain.Review{}, err
	}
	if _, err := s.camps.GetCampground(ctx, campgroundID); err != nil {
		return domain.Review{}, err
	}
	r := domain.Review{
		Body:      in.Body,
		Rating:    in.Rating,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.revs.InsertReview(ctx, r)
	if err != nil {
		return domain.Review{}, fmt.Errorf("insert review: %w", err)
	}
	r.ID = id
	if err := s.camps.PushReview(ctx, campgroundID, id); err != nil {
		if derr := s.revs.DeleteReview(ctx, id); derr != nil {
			log.Error().Err(derr).Str("review", id.Hex()).Msg("compensating review delete failed")
		}
		return domain.Review{}, fmt.Errorf("push review reference: %w", err)
	}
	return r, nil
}

// Find fetches a single review, for the author check on deletion.
func (s *ReviewService) Find(ctx context.Context, id primitive.ObjectID) (domain.Review, error) {
	return s.revs.GetReview(ctx, id)
}

// Delete removes the reference from the campground's review list and deletes
// the review record. An already-absent reference is tolerated.
func (s *ReviewService) Delete(ctx context.Context, campgroundID, reviewID primitive.ObjectID) error {
	if err := s.camps.PullReview(ctx, campgroundID, reviewID); err != nil {
		return fmt.Errorf("pull review reference: %w", err)
	}
	if err := s.revs.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
