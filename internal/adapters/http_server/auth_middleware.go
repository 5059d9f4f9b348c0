package httpserver

import (
	"context"
	"errors"
	"net/http"

	"yelpcamp/internal/domain"
)

type ctxKey int

const (
	campgroundCtxKey ctxKey = iota
	reviewCtxKey
)

// requireLogin redirects anonymous requests to the login page, remembering the
// originally requested path for the post-login redirect.
func (h *Handlers) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, ok := h.currentUserID(ctx); !ok {
			h.Sess.Put(ctx, sessionReturnTo, r.URL.Path)
			h.flashError(ctx, "You must be signed in first!")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireCampgroundAuthor loads the target campground, rejects callers other
// than its author, and stashes the loaded record for downstream handlers so
// they do not fetch it twice.
func (h *Handlers) requireCampgroundAuthor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathID(r, "id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		c, err := h.Camps.Find(ctx, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		uid, _ := h.currentUserID(ctx)
		if c.Author != uid {
			h.flashError(ctx, "You do not have permission to do that!")
			http.Redirect(w, r, "/campgrounds/"+id.Hex(), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, campgroundCtxKey, c)))
	})
}

// requireReviewAuthor mirrors requireCampgroundAuthor for nested reviews.
func (h *Handlers) requireReviewAuthor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		campID, err := pathID(r, "id")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		revID, err := pathID(r, "reviewID")
		if err != nil {
			h.fail(w, r, err)
			return
		}
		rv, err := h.Revs.Find(ctx, revID)
		if errors.Is(err, domain.ErrNotFound) {
			// reference already gone: deleting it again is a no-op
			http.Redirect(w, r, "/campgrounds/"+campID.Hex(), http.StatusFound)
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}
		uid, _ := h.currentUserID(ctx)
		if rv.Author != uid {
			h.flashError(ctx, "You do not have permission to do that!")
			http.Redirect(w, r, "/campgrounds/"+campID.Hex(), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, reviewCtxKey, rv)))
	})
}

func campgroundFrom(ctx context.Context) (domain.Campground, bool) {
	c, ok := ctx.Value(campgroundCtxKey).(domain.Campground)
	return c, ok
}
