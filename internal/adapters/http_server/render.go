package httpserver

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"yelpcamp/internal/domain"
)

// Minimal server-rendered pages. Real templating/CSS is out of scope; these
// shells exist so redirects, flashes and entity data have somewhere to land.
const pagesSrc = `
{{define "head"}}<!doctype html>
<html><head><title>{{.Title}} | YelpCamp</title></head><body>
{{if .Success}}<div class="alert alert-success">{{.Success}}</div>{{end}}
{{if .Error}}<div class="alert alert-danger">{{.Error}}</div>{{end}}
<nav><a href="/">YelpCamp</a> <a href="/campgrounds">Campgrounds</a>
{{if .Username}}<span>{{.Username}}</span> <a href="/logout">Logout</a>{{else}}<a href="/login">Login</a> <a href="/register">Register</a>{{end}}</nav>{{end}}
{{define "foot"}}</body></html>{{end}}

{{define "home"}}{{template "head" .}}<h1>Welcome to YelpCamp!</h1>
<p>Jump right in and explore our many campgrounds.</p>{{template "foot" .}}{{end}}

{{define "index"}}{{template "head" .}}<h1>All Campgrounds</h1><ul>
{{range .Campgrounds}}<li><a href="/campgrounds/{{.ID.Hex}}">{{.Title}}</a> - {{.Location}}</li>{{end}}
</ul>{{template "foot" .}}{{end}}

{{define "show"}}{{template "head" .}}<h1>{{.Detail.Campground.Title}}</h1>
<p>{{.Detail.Campground.Location}}</p>
<p>${{.Detail.Campground.Price}}/night</p>
<p>{{.Detail.Campground.Description}}</p>
<p>Submitted by {{.Detail.Author.Username}}</p>
{{range .Detail.Campground.Images}}<img src="{{.Thumbnail}}" alt="{{.Filename}}">{{end}}
{{if .IsAuthor}}<a href="/campgrounds/{{.Detail.Campground.ID.Hex}}/edit">Edit</a>
<form method="POST" action="/campgrounds/{{.Detail.Campground.ID.Hex}}?_method=DELETE"><button>Delete</button></form>{{end}}
<h2>Reviews</h2><ul>
{{range .Detail.Reviews}}<li>{{.Review.Rating}}/5 by {{.Author.Username}}: {{.Review.Body}}
{{if $.Username}}<form method="POST" action="/campgrounds/{{$.Detail.Campground.ID.Hex}}/reviews/{{.Review.ID.Hex}}?_method=DELETE"><button>Delete</button></form>{{end}}</li>{{end}}
</ul>
{{if .Username}}<form method="POST" action="/campgrounds/{{.Detail.Campground.ID.Hex}}/reviews">
<label>Rating <input type="number" name="rating" min="1" max="5"></label>
<label>Review <textarea name="body"></textarea></label>
<button>Submit</button></form>{{end}}{{template "foot" .}}{{end}}

{{define "new"}}{{template "head" .}}<h1>New Campground</h1>
<form method="POST" action="/campgrounds" enctype="multipart/form-data">
<label>Title <input name="title"></label>
<label>Location <input name="location"></label>
<label>Price <input name="price"></label>
<label>Description <textarea name="description"></textarea></label>
<label>Images <input type="file" name="image" multiple></label>
<button>Create</button></form>{{template "foot" .}}{{end}}

{{define "edit"}}{{template "head" .}}<h1>Edit Campground</h1>
<form method="POST" action="/campgrounds/{{.Campground.ID.Hex}}?_method=PUT" enctype="multipart/form-data">
<label>Title <input name="title" value="{{.Campground.Title}}"></label>
<label>Location <input name="location" value="{{.Campground.Location}}"></label>
<label>Price <input name="price" value="{{.Campground.Price}}"></label>
<label>Description <textarea name="description">{{.Campground.Description}}</textarea></label>
<label>Images <input type="file" name="image" multiple></label>
{{range .Campground.Images}}<label><input type="checkbox" name="deleteImages" value="{{.Filename}}"> delete {{.Filename}}</label>{{end}}
<button>Update</button></form>{{template "foot" .}}{{end}}

{{define "register"}}{{template "head" .}}<h1>Register</h1>
<form method="POST" action="/register">
<label>Email <input name="email"></label>
<label>Username <input name="username"></label>
<label>Password <input type="password" name="password"></label>
<button>Register</button></form>{{template "foot" .}}{{end}}

{{define "login"}}{{template "head" .}}<h1>Login</h1>
<form method="POST" action="/login">
<label>Username <input name="username"></label>
<label>Password <input type="password" name="password"></label>
<button>Login</button></form>{{template "foot" .}}{{end}}

{{define "error"}}{{template "head" .}}<h1>{{.Message}}</h1>{{template "foot" .}}{{end}}
`

var pages = template.Must(template.New("pages").Parse(pagesSrc))

// page is the data every template sees; concrete pages embed it.
type page struct {
	Title    string
	Success  string
	Error    string
	Username string
}

type homePage struct{ page }

type indexPage struct {
	page
	Campgrounds []domain.Campground
}

type showPage struct {
	page
	Detail   domain.CampgroundDetail
	IsAuthor bool
}

type editPage struct {
	page
	Campground domain.Campground
}

type errorPage struct {
	page
	Message string
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// newPage fills the shared shell: title, drained flashes and the session user.
func (h *Handlers) newPage(r *http.Request, title string) page {
	ctx := r.Context()
	success, errMsg := h.popFlashes(ctx)
	p := page{Title: title, Success: success, Error: errMsg}
	if uid, ok := h.currentUserID(ctx); ok {
		if u, err := h.Users.Get(ctx, uid); err == nil {
			p.Username = u.Username
		}
	}
	return p
}
