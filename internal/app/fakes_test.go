package app_test

import (
	"context"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yelpcamp/internal/domain"
)

// ---- fakes ----

type fakeCampRepo struct {
	mu      sync.Mutex
	camps   map[primitive.ObjectID]domain.Campground
	pushErr error
}

func newFakeCampRepo() *fakeCampRepo {
	return &fakeCampRepo{camps: map[primitive.ObjectID]domain.Campground{}}
}

func (f *fakeCampRepo) InsertCampground(ctx context.Context, c domain.Campground) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.camps[c.ID] = c
	return c.ID, nil
}

func (f *fakeCampRepo) UpdateCampground(ctx context.Context, id primitive.ObjectID, up domain.CampgroundUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.camps[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Title, c.Location, c.Price, c.Description = up.Title, up.Location, up.Price, up.Description
	f.camps[id] = c
	return nil
}

func (f *fakeCampRepo) AppendImages(ctx context.Context, id primitive.ObjectID, imgs []domain.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.camps[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Images = append(c.Images, imgs...)
	f.camps[id] = c
	return nil
}

func (f *fakeCampRepo) PullImages(ctx context.Context, id primitive.ObjectID, filenames []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.camps[id]
	if !ok {
		return nil
	}
	drop := map[string]bool{}
	for _, fn := range filenames {
		drop[fn] = true
	}
	kept := c.Images[:0:0]
	for _, img := range c.Images {
		if !drop[img.Filename] {
			kept = append(kept, img)
		}
	}
	c.Images = kept
	f.camps[id] = c
	return nil
}

func (f *fakeCampRepo) PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	c, ok := f.camps[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Reviews = append(c.Reviews, reviewID)
	f.camps[id] = c
	return nil
}

func (f *fakeCampRepo) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.camps[id]
	if !ok {
		return nil
	}
	kept := c.Reviews[:0:0]
	for _, rid := range c.Reviews {
		if rid != reviewID {
			kept = append(kept, rid)
		}
	}
	c.Reviews = kept
	f.camps[id] = c
	return nil
}

func (f *fakeCampRepo) DeleteCampground(ctx context.Context, id primitive.ObjectID) (domain.Campground, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.camps[id]
	if !ok {
		return domain.Campground{}, false, nil
	}
	delete(f.camps, id)
	return c, true, nil
}

func (f *fakeCampRepo) ListCampgrounds(ctx context.Context) ([]domain.Campground, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Campground, 0, len(f.camps))
	for _, c := range f.camps {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCampRepo) GetCampground(ctx context.Context, id primitive.ObjectID) (domain.Campground, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.camps[id]
	if !ok {
		return domain.Campground{}, domain.ErrNotFound
	}
	return c, nil
}

type fakeReviewRepo struct {
	mu   sync.Mutex
	revs map[primitive.ObjectID]domain.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{revs: map[primitive.ObjectID]domain.Review{}}
}

func (f *fakeReviewRepo) InsertReview(ctx context.Context, rv domain.Review) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rv.ID.IsZero() {
		rv.ID = primitive.NewObjectID()
	}
	f.revs[rv.ID] = rv
	return rv.ID, nil
}

func (f *fakeReviewRepo) GetReview(ctx context.Context, id primitive.ObjectID) (domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv, ok := f.revs[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, nil
}

func (f *fakeReviewRepo) DeleteReview(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.revs, id)
	return nil
}

func (f *fakeReviewRepo) DeleteReviews(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := f.revs[id]; ok {
			delete(f.revs, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) FindReviews(ctx context.Context, ids []primitive.ObjectID) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Review, 0, len(ids))
	for _, id := range ids {
		if rv, ok := f.revs[id]; ok {
			out = append(out, rv)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]domain.User{}}
}

func (f *fakeUserRepo) InsertUser(ctx context.Context, u domain.User) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserRepo) GetUser(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) FindUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[primitive.ObjectID]domain.User{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeGeocoder struct {
	pt    domain.GeoPoint
	err   error
	calls int
}

func (f *fakeGeocoder) Forward(ctx context.Context, location string) (domain.GeoPoint, error) {
	f.calls++
	if f.err != nil {
		return domain.GeoPoint{}, f.err
	}
	return f.pt, nil
}

type fakeImageStore struct {
	mu         sync.Mutex
	destroyed  []string
	destroyErr error
}

func (f *fakeImageStore) Upload(ctx context.Context, filename string, r io.Reader) (domain.Image, error) {
	return domain.Image{URL: "https://img.test/upload/" + filename, Filename: filename}, nil
}

func (f *fakeImageStore) Destroy(ctx context.Context, filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, filename)
	return f.destroyErr
}

func parisPoint() domain.GeoPoint {
	return domain.GeoPoint{Type: "Point", Coordinates: []float64{2.3522, 48.8566}}
}
