package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"yelpcamp/internal/app"
	"yelpcamp/internal/domain"
)

func (h *Handlers) listCampgrounds(w http.ResponseWriter, r *http.Request) {
	camps, err := h.Camps.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "index", indexPage{page: h.newPage(r, "Campgrounds"), Campgrounds: camps})
}

func (h *Handlers) newCampgroundForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "new", homePage{page: h.newPage(r, "New Campground")})
}

func (h *Handlers) createCampground(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	in, err := parseCampgroundInput(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	uploaded, err := h.uploadFormImages(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	uid, _ := h.currentUserID(ctx)
	c, err := h.Camps.Create(ctx, uid, in, uploaded)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashSuccess(ctx, "Successfully made a new campground!")
	http.Redirect(w, r, "/campgrounds/"+c.ID.Hex(), http.StatusFound)
}

func (h *Handlers) showCampground(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	detail, err := h.Camps.Get(ctx, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	uid, _ := h.currentUserID(ctx)
	h.render(w, r, http.StatusOK, "show", showPage{
		page:     h.newPage(r, detail.Campground.Title),
		Detail:   detail,
		IsAuthor: uid == detail.Campground.Author,
	})
}

func (h *Handlers) editCampgroundForm(w http.ResponseWriter, r *http.Request) {
	c, ok := campgroundFrom(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrNotFound)
		return
	}
	h.render(w, r, http.StatusOK, "edit", editPage{page: h.newPage(r, "Edit Campground"), Campground: c})
}

func (h *Handlers) updateCampground(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := campgroundFrom(ctx)
	if !ok {
		h.fail(w, r, domain.ErrNotFound)
		return
	}
	in, err := parseCampgroundInput(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	uploaded, err := h.uploadFormImages(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	deleteNames := r.Form["deleteImages"]
	if _, err := h.Camps.Update(ctx, c.ID, in, uploaded, deleteNames); err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashSuccess(ctx, "Successfully updated campground!")
	http.Redirect(w, r, "/campgrounds/"+c.ID.Hex(), http.StatusFound)
}

func (h *Handlers) deleteCampground(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, ok := campgroundFrom(ctx)
	if !ok {
		h.fail(w, r, domain.ErrNotFound)
		return
	}
	if err := h.Camps.Delete(ctx, c.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	h.flashSuccess(ctx, "Successfully deleted campground")
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

// parseCampgroundInput accepts both multipart (with file uploads) and plain
// urlencoded form bodies.
func parseCampgroundInput(r *http.Request) (app.CampgroundInput, error) {
	if err := parseForm(r); err != nil {
		return app.CampgroundInput{}, err
	}
	in := app.CampgroundInput{
		Title:       r.FormValue("title"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}
	if ps := r.FormValue("price"); ps != "" {
		price, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return app.CampgroundInput{}, &domain.ValidationError{Violations: []string{"price must be a number"}}
		}
		in.Price = price
	}
	return in, nil
}

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(32 << 20)
	}
	return r.ParseForm()
}

// uploadFormImages pushes every "image" file to the external host before the
// service sees the request; the service only receives finished image records.
func (h *Handlers) uploadFormImages(r *http.Request) ([]domain.Image, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var out []domain.Image
	for _, fh := range r.MultipartForm.File["image"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		img, err := h.Images.Upload(r.Context(), fh.Filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
