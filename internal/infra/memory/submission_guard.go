package memory

import (
	"context"
	"sync"
)

// SubmissionGuard serializes submits per participant within one process. A
// name with a submit already in flight is refused rather than queued; the
// losing request would fail the already-submitted check anyway.
type SubmissionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmissionGuard() *SubmissionGuard {
	return &SubmissionGuard{inFlight: make(map[string]struct{})}
}

func (g *SubmissionGuard) Acquire(_ context.Context, name string) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[name]; busy {
		return nil, false, nil
	}
	g.inFlight[name] = struct{}{}
	release := func() {
		g.mu.Lock()
		delete(g.inFlight, name)
		g.mu.Unlock()
	}
	return release, true, nil
}
