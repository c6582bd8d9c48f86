package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, prefix string, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *SessionRepository) key(id string) string {
	return r.prefix + id
}

func (r *SessionRepository) Get(ctx context.Context, id string) (model.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("get session %s: %w", id, err)
	}

	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	if s.ChatHistory == nil {
		s.ChatHistory = []model.ChatTurn{}
	}
	return s, nil
}

// Save overwrites the stored session and refreshes its expiry. Concurrent
// writers for the same id are last-write-wins.
func (r *SessionRepository) Save(ctx context.Context, s model.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.ID, err)
	}

	if err := r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
