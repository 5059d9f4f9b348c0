package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"yelpcamp/internal/domain"
)

func (r *Repo) InsertCampground(ctx context.Context, c domain.Campground) (primitive.ObjectID, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Reviews == nil {
		c.Reviews = []primitive.ObjectID{}
	}
	if _, err := r.camps().InsertOne(ctx, c); err != nil {
		return primitive.NilObjectID, err
	}
	return c.ID, nil
}

func (r *Repo) ListCampgrounds(ctx context.Context) ([]domain.Campground, error) {
	cur, err := r.camps().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []domain.Campground
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetCampground(ctx context.Context, id primitive.ObjectID) (domain.Campground, error) {
	var c domain.Campground
	err := r.camps().FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Campground{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campground{}, err
	}
	return c, nil
}

// UpdateCampground is a plain $set of the mutable fields: last writer wins,
// no version check. Geometry is not part of the update.
func (r *Repo) UpdateCampground(ctx context.Context, id primitive.ObjectID, up domain.CampgroundUpdate) error {
	res, err := r.camps().UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"title":       up.Title,
		"location":    up.Location,
		"price":       up.Price,
		"description": up.Description,
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) AppendImages(ctx context.Context, id primitive.ObjectID, imgs []domain.Image) error {
	if len(imgs) == 0 {
		return nil
	}
	res, err := r.camps().UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"images": bson.M{"$each": imgs}},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) PullImages(ctx context.Context, id primitive.ObjectID, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}
	_, err := r.camps().UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"images": bson.M{"filename": bson.M{"$in": filenames}}},
	})
	return err
}

func (r *Repo) PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	res, err := r.camps().UpdateByID(ctx, id, bson.M{"$push": bson.M{"reviews": reviewID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PullReview tolerates an already-absent reference.
func (r *Repo) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	_, err := r.camps().UpdateByID(ctx, id, bson.M{"$pull": bson.M{"reviews": reviewID}})
	return err
}

func (r *Repo) DeleteCampground(ctx context.Context, id primitive.ObjectID) (domain.Campground, bool, error) {
	var c domain.Campground
	err := r.camps().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Campground{}, false, nil
	}
	if err != nil {
		return domain.Campground{}, false, err
	}
	return c, true, nil
}
