package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"yelpcamp/internal/domain"
)

func (r *Repo) InsertUser(ctx context.Context, u domain.User) (primitive.ObjectID, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := r.users().InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, domain.ErrUsernameTaken
		}
		return primitive.NilObjectID, err
	}
	return u.ID, nil
}

func (r *Repo) GetUser(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	return r.findUser(ctx, bson.M{"_id": id})
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findUser(ctx, bson.M{"username": username})
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findUser(ctx, bson.M{"email": email})
}

func (r *Repo) findUser(ctx context.Context, filter bson.M) (domain.User, error) {
	var u domain.User
	err := r.users().FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *Repo) FindUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.User, error) {
	out := make(map[primitive.ObjectID]domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.users().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []domain.User
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, u := range found {
		out[u.ID] = u
	}
	return out, nil
}
