package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session keys. The subject is the user's ObjectID hex; flashes are one-shot
// and consumed by the next rendered page.
const (
	sessionUserKey  = "userID"
	sessionReturnTo = "returnTo"
	flashSuccessKey = "flash_success"
	flashErrorKey   = "flash_error"
	defaultReturnTo = "/campgrounds"
)

// NewSessionManager builds the Redis-backed cookie session manager.
func NewSessionManager(client *redis.Client, lifetime time.Duration) *scs.SessionManager {
	m := scs.New()
	m.Store = goredisstore.New(client)
	m.Lifetime = lifetime
	m.Cookie.HttpOnly = true
	m.Cookie.SameSite = http.SameSiteLaxMode
	return m
}

func (h *Handlers) currentUserID(ctx context.Context) (primitive.ObjectID, bool) {
	hex := h.Sess.GetString(ctx, sessionUserKey)
	if hex == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handlers) flashSuccess(ctx context.Context, msg string) {
	h.Sess.Put(ctx, flashSuccessKey, msg)
}

func (h *Handlers) flashError(ctx context.Context, msg string) {
	h.Sess.Put(ctx, flashErrorKey, msg)
}

// popFlashes drains both flash slots for the page being rendered.
func (h *Handlers) popFlashes(ctx context.Context) (success, errMsg string) {
	return h.Sess.PopString(ctx, flashSuccessKey), h.Sess.PopString(ctx, flashErrorKey)
}
