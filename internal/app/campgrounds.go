package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yelpcamp/internal/domain"
)

// CampgroundService owns campground CRUD, image-list mutation and author
// binding. Authorization is enforced by the HTTP middleware, not here.
type CampgroundService struct {
	camps  domain.CampgroundRepository
	revs   domain.ReviewRepository
	users  domain.UserRepository
	geo    domain.Geocoder
	images domain.ImageStore
}

func NewCampgroundService(camps domain.CampgroundRepository, revs domain.ReviewRepository, users domain.UserRepository, geo domain.Geocoder, images domain.ImageStore) *CampgroundService {
	return &CampgroundService{camps: camps, revs: revs, users: users, geo: geo, images: images}
}

// List returns every campground, unfiltered and unpaginated.
func (s *CampgroundService) List(ctx context.Context) ([]domain.Campground, error) {
	return s.camps.ListCampgrounds(ctx)
}

// Create geocodes the raw location string, taking the first candidate, and
// persists a new campground owned by author. uploaded are image records the
// transport layer already pushed to the external host. A geocoding failure
// surfaces before anything is persisted.
func (s *CampgroundService) Create(ctx context.Context, author primitive.ObjectID, in CampgroundInput, uploaded []domain.Image) (domain.Campground, error) {
	if err := ValidateCampground(in); err != nil {
		return domain.Campground{}, err
	}
	pt, err := s.geo.Forward(ctx, in.Location)
	if err != nil {
		return domain.Campground{}, err
	}
	now := time.Now().UTC()
	c := domain.Campground{
		Title:       in.Title,
		Location:    in.Location,
		Geometry:    pt,
		Price:       in.Price,
		Description: in.Description,
		Images:      uploaded,
		Author:      author,
		Reviews:     []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.camps.InsertCampground(ctx, c)
	if err != nil {
		return domain.Campground{}, fmt.Errorf("insert campground: %w", err)
	}
	c.ID = id
	return c, nil
}

// Find fetches the bare campground record. Missing ids are domain.ErrNotFound,
// distinct from a storage error.
func (s *CampgroundService) Find(ctx context.Context, id primitive.ObjectID) (domain.Campground, error) {
	return s.camps.GetCampground(ctx, id)
}

// Get resolves the campground with its author, reviews and each review's
// author, preserving review order.
func (s *CampgroundService) Get(ctx context.Context, id primitive.ObjectID) (domain.CampgroundDetail, error) {
	c, err := s.camps.GetCampground(ctx, id)
	if err != nil {
		return domain.CampgroundDetail{}, err
	}
	author, err := s.users.GetUser(ctx, c.Author)
	if err != nil && err != domain.ErrNotFound {
		return domain.CampgroundDetail{}, fmt.Errorf("resolve author: %w", err)
	}
	revs, err := s.revs.FindReviews(ctx, c.Reviews)
	if err != nil {
		return domain.CampgroundDetail{}, fmt.Errorf("resolve reviews: %w", err)
	}
	authorIDs := make([]primitive.ObjectID, 0, len(revs))
	for _, r := range revs {
		authorIDs = append(authorIDs, r.Author)
	}
	revAuthors, err := s.users.FindUsers(ctx, authorIDs)
	if err != nil {
		return domain.CampgroundDetail{}, fmt.Errorf("resolve review authors: %w", err)
	}
	detail := domain.CampgroundDetail{Campground: c, Author: author, Reviews: make([]domain.ReviewDetail, 0, len(revs))}
	for _, r := range revs {
		detail.Reviews = append(detail.Reviews, domain.ReviewDetail{Review: r, Author: revAuthors[r.Author]})
	}
	return detail, nil
}

// Update merges the fields into the stored record, appends newImages and, for
// each name in deleteFilenames, removes the matching image record and asks the
// external host to drop the file. The two removals are independent: a host-side
// failure is logged and does not roll back the metadata removal. The geocoded
// point is never recomputed, even when the location text changed.
func (s *CampgroundService) Update(ctx context.Context, id primitive.ObjectID, in CampgroundInput, newImages []domain.Image, deleteFilenames []string) (domain.Campground, error) {
	if err := ValidateCampground(in); err != nil {
		return domain.Campground{}, err
	}
	if err := s.camps.UpdateCampground(ctx, id, domain.CampgroundUpdate{
		Title:       in.Title,
		Location:    in.Location,
		Price:       in.Price,
		Description: in.Description,
	}); err != nil {
		return domain.Campground{}, err
	}
	if len(newImages) > 0 {
		if err := s.camps.AppendImages(ctx, id, newImages); err != nil {
			return domain.Campground{}, fmt.Errorf("append images: %w", err)
		}
	}
	if len(deleteFilenames) > 0 {
		if err := s.camps.PullImages(ctx, id, deleteFilenames); err != nil {
			return domain.Campground{}, fmt.Errorf("pull images: %w", err)
		}
		// Best-effort on the host side: at-most-eventual consistency, reported
		// rather than rolled back.
		for _, fn := range deleteFilenames {
			if err := s.images.Destroy(ctx, fn); err != nil {
				log.Warn().Err(err).Str("filename", fn).Msg("image host destroy failed")
			}
		}
	}
	return s.camps.GetCampground(ctx, id)
}

// Delete removes the campground, then every review it referenced. A repeated
// call on an already-deleted id is a no-op, not an error.
func (s *CampgroundService) Delete(ctx context.Context, id primitive.ObjectID) error {
	doc, found, err := s.camps.DeleteCampground(ctx, id)
	if err != nil {
		return fmt.Errorf("delete campground: %w", err)
	}
	if !found {
		return nil
	}
	if len(doc.Reviews) > 0 {
		if _, err := s.revs.DeleteReviews(ctx, doc.Reviews); err != nil {
			return fmt.Errorf("cascade reviews: %w", err)
		}
	}
	return nil
}
