package memory

import (
	"context"
	"sync"

	"propbets-service/internal/domain"
	"propbets-service/internal/formstate"
)

// DraftStore keeps wizard drafts in process memory.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]formstate.State
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]formstate.State)}
}

func (d *DraftStore) Load(_ context.Context, name string) (formstate.State, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	state, ok := d.drafts[name]
	if !ok {
		return formstate.State{}, domain.ErrDraftNotFound
	}
	return state, nil
}

func (d *DraftStore) Save(_ context.Context, name string, state formstate.State) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drafts[name] = state
	return nil
}

func (d *DraftStore) Delete(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.drafts, name)
	return nil
}
