// Package redis backs the wizard draft store and the submission guard with
// Redis so drafts survive restarts and the guard holds across instances.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"propbets-service/internal/domain"
	"propbets-service/internal/formstate"

	"github.com/redis/go-redis/v9"
)

// DraftStore stores each participant's draft as a JSON value with a TTL.
// Keys: draft:{participantName}
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func (d *DraftStore) Load(ctx context.Context, name string) (formstate.State, error) {
	raw, err := d.client.Get(ctx, d.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return formstate.State{}, domain.ErrDraftNotFound
	}
	if err != nil {
		return formstate.State{}, fmt.Errorf("load draft: %w", err)
	}
	var state formstate.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return formstate.State{}, fmt.Errorf("decode draft: %w", err)
	}
	return state, nil
}

func (d *DraftStore) Save(ctx context.Context, name string, state formstate.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := d.client.Set(ctx, d.key(name), raw, d.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (d *DraftStore) Delete(ctx context.Context, name string) error {
	if err := d.client.Del(ctx, d.key(name)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func (d *DraftStore) key(name string) string {
	return "draft:" + name
}
