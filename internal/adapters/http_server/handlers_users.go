package httpserver

import (
	"errors"
	"net/http"

	"yelpcamp/internal/domain"
)

func (h *Handlers) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register", homePage{page: h.newPage(r, "Register")})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.Users.Register(ctx, r.FormValue("email"), r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
		h.flashError(ctx, err.Error())
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.signIn(r, u)
	h.flashSuccess(ctx, "Welcome to Yelp Camp!")
	http.Redirect(w, r, defaultReturnTo, http.StatusFound)
}

func (h *Handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", homePage{page: h.newPage(r, "Login")})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.Users.Authenticate(ctx, r.FormValue("username"), r.FormValue("password"))
	if errors.Is(err, domain.ErrInvalidCredentials) {
		h.flashError(ctx, "Invalid username or password")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.signIn(r, u)
	returnTo := h.Sess.PopString(ctx, sessionReturnTo)
	if returnTo == "" {
		returnTo = defaultReturnTo
	}
	h.flashSuccess(ctx, "Welcome back!")
	http.Redirect(w, r, returnTo, http.StatusFound)
}

// signIn rotates the session token before binding the subject, so a
// pre-login session id never survives authentication.
func (h *Handlers) signIn(r *http.Request, u domain.User) {
	ctx := r.Context()
	_ = h.Sess.RenewToken(ctx)
	h.Sess.Put(ctx, sessionUserKey, u.ID.Hex())
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_ = h.Sess.Destroy(ctx)
	h.flashSuccess(ctx, "Goodbye!")
	http.Redirect(w, r, defaultReturnTo, http.StatusFound)
}
