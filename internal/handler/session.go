package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
	"github.com/Tramle26/ai-economic-consultant/internal/repository"
)

type SessionStore interface {
	Get(ctx context.Context, id string) (model.Session, error)
	Save(ctx context.Context, s model.Session) error
	Ping(ctx context.Context) error
}

// Sessions binds a SessionStore to the session cookie.
type Sessions struct {
	store      SessionStore
	cookieName string
	ttl        time.Duration
}

func NewSessions(store SessionStore, cookieName string, ttl time.Duration) *Sessions {
	return &Sessions{store: store, cookieName: cookieName, ttl: ttl}
}

// Load returns the caller's session, starting a fresh one when the cookie
// is missing, malformed or points at nothing.
func (s *Sessions) Load(c *gin.Context) model.Session {
	id, err := c.Cookie(s.cookieName)
	if err != nil {
		return model.NewSession(uuid.NewString())
	}
	if _, err := uuid.Parse(id); err != nil {
		slog.Warn("invalid session cookie, starting new session", "value", id)
		return model.NewSession(uuid.NewString())
	}

	sess, err := s.store.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return model.NewSession(id)
	}
	if err != nil {
		// A fresh id keeps the stored session from being overwritten
		// once the store recovers.
		slog.Error("error loading session, starting new session", "session_id", id, "error", err)
		return model.NewSession(uuid.NewString())
	}
	return sess
}

// Save must run before the response body is written so the cookie header
// goes out.
func (s *Sessions) Save(c *gin.Context, sess model.Session) {
	if err := s.store.Save(c.Request.Context(), sess); err != nil {
		slog.Error("error saving session", "session_id", sess.ID, "error", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, sess.ID, int(s.ttl.Seconds()), "/", "", false, true)
}

func (s *Sessions) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
