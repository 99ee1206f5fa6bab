package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spec-kit/warehouse-service/internal/persistence"
)

// SessionRepository owns the single current-token slot. Exactly one token
// is current at a time; storing a new one replaces the previous.
type SessionRepository interface {
	SaveToken(ctx context.Context, token string) error
	// GetToken returns the stored token and whether one exists.
	GetToken(ctx context.Context) (string, bool, error)
	// ClearToken removes the slot. Clearing an empty slot is not an error.
	ClearToken(ctx context.Context) error
}

type sessionRepository struct {
	store persistence.Store
}

// NewSessionRepository returns a substrate-backed implementation.
func NewSessionRepository(store persistence.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode %s: %w", persistence.KeyCurrentToken, err)
	}
	return r.store.Set(ctx, persistence.KeyCurrentToken, data)
}

func (r *sessionRepository) GetToken(ctx context.Context) (string, bool, error) {
	data, ok, err := r.store.Get(ctx, persistence.KeyCurrentToken)
	if err != nil || !ok {
		return "", false, err
	}
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return "", false, fmt.Errorf("decode %s: %w", persistence.KeyCurrentToken, err)
	}
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (r *sessionRepository) ClearToken(ctx context.Context) error {
	return r.store.Delete(ctx, persistence.KeyCurrentToken)
}
