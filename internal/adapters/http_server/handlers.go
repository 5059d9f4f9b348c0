package httpserver

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yelpcamp/internal/app"
	"yelpcamp/internal/domain"
)

type Handlers struct {
	Camps  *app.CampgroundService
	Revs   *app.ReviewService
	Users  *app.UserService
	Images domain.ImageStore
	Sess   *scs.SessionManager
}

func (s *Server) MountHandlers(h *Handlers) {
	if h.Sess == nil {
		h.Sess = s.sess
	}
	m := s.mux

	m.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	m.Get("/", h.home)

	m.Route("/campgrounds", func(r chi.Router) {
		r.Get("/", h.listCampgrounds)
		r.Get("/{id}", h.showCampground)

		r.Group(func(r chi.Router) {
			r.Use(h.requireLogin)
			r.Get("/new", h.newCampgroundForm)
			r.Post("/", h.createCampground)
			r.Post("/{id}/reviews", h.createReview)
			r.With(h.requireReviewAuthor).Delete("/{id}/reviews/{reviewID}", h.deleteReview)

			r.Group(func(r chi.Router) {
				r.Use(h.requireCampgroundAuthor)
				r.Get("/{id}/edit", h.editCampgroundForm)
				r.Put("/{id}", h.updateCampground)
				r.Delete("/{id}", h.deleteCampground)
			})
		})
	})

	m.Get("/register", h.registerForm)
	m.Post("/register", h.register)
	m.Get("/login", h.loginForm)
	m.Post("/login", h.login)
	m.Get("/logout", h.logout)
	m.Post("/logout", h.logout)

	m.NotFound(h.notFound)
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", homePage{page: h.newPage(r, "Home")})
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error", errorPage{page: h.newPage(r, "Not Found"), Message: "Page Not Found"})
}

// fail is the single error boundary: it decides the final rendering for every
// error a handler did not map itself. Internals never leak; anything outside
// the taxonomy becomes the generic 500 page.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.render(w, r, http.StatusBadRequest, "error", errorPage{page: h.newPage(r, "Invalid Input"), Message: verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		h.flashError(ctx, "Cannot find that campground!")
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
	case errors.Is(err, domain.ErrForbidden):
		h.flashError(ctx, "You do not have permission to do that!")
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		h.render(w, r, http.StatusInternalServerError, "error", errorPage{page: h.newPage(r, "Error"), Message: "Oh No, Something Went Wrong!"})
	}
}

func pathID(r *http.Request, key string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, key))
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return id, nil
}
