package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"yelpcamp/internal/domain"
)

func (r *Repo) InsertReview(ctx context.Context, rv domain.Review) (primitive.ObjectID, error) {
	if rv.ID.IsZero() {
		rv.ID = primitive.NewObjectID()
	}
	if _, err := r.revs().InsertOne(ctx, rv); err != nil {
		return primitive.NilObjectID, err
	}
	return rv.ID, nil
}

func (r *Repo) GetReview(ctx context.Context, id primitive.ObjectID) (domain.Review, error) {
	var rv domain.Review
	err := r.revs().FindOne(ctx, bson.M{"_id": id}).Decode(&rv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Review{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Review{}, err
	}
	return rv, nil
}

// DeleteReview is a no-op when the review is already gone.
func (r *Repo) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.revs().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *Repo) DeleteReviews(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.revs().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindReviews returns reviews in the order of ids, skipping missing ones.
func (r *Repo) FindReviews(ctx context.Context, ids []primitive.ObjectID) ([]domain.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.revs().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []domain.Review
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]domain.Review, len(found))
	for _, rv := range found {
		byID[rv.ID] = rv
	}
	out := make([]domain.Review, 0, len(found))
	for _, id := range ids {
		if rv, ok := byID[id]; ok {
			out = append(out, rv)
		}
	}
	return out, nil
}
