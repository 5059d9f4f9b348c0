package httpserver

import (
	"net/http"
	"strconv"

	"yelpcamp/internal/app"
)

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		h.fail(w, r, err)
		return
	}
	rating, _ := strconv.Atoi(r.FormValue("rating")) // 0 on junk, rejected by validation
	in := app.ReviewInput{Body: r.FormValue("body"), Rating: rating}
	uid, _ := h.currentUserID(ctx)
	if _, err := h.Revs.Create(ctx, campID, uid, in); err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashSuccess(ctx, "Created new review!")
	http.Redirect(w, r, "/campgrounds/"+campID.Hex(), http.StatusFound)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Revs.Delete(ctx, campID, revID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashSuccess(ctx, "Successfully deleted review")
	http.Redirect(w, r, "/campgrounds/"+campID.Hex(), http.StatusFound)
}
