// Package formstate holds the pick wizard's client state: who is filling the
// sheet, the answers entered so far, and which category page is active. The
// state is a draft only; whether a participant has submitted lives in the
// store, never here.
package formstate

import "context"

// State is the serializable wizard state. It survives page reloads by being
// saved to a DraftStore at well-defined points and reloaded on mount.
type State struct {
	ParticipantName string            `json:"participantName"`
	Answers         map[string]string `json:"answers"`
	CategoryIndex   int               `json:"currentCategoryIndex"`
}

// New returns the initial state: empty identity, no answers, first page.
func New() State {
	return State{Answers: map[string]string{}}
}

// SetParticipant resets the state to a fresh sheet for the named participant.
func (s *State) SetParticipant(name string) {
	*s = New()
	s.ParticipantName = name
}

// SetAnswer upserts one answer.
func (s *State) SetAnswer(questionID, answer string) {
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	s.Answers[questionID] = answer
}

// Advance moves to the next category page, clamped to the last page.
func (s *State) Advance(categoryCount int) {
	s.CategoryIndex = clamp(s.CategoryIndex+1, categoryCount)
}

// Retreat moves to the previous category page, clamped to the first page.
func (s *State) Retreat(categoryCount int) {
	s.CategoryIndex = clamp(s.CategoryIndex-1, categoryCount)
}

// Reset clears everything back to the initial state.
func (s *State) Reset() {
	*s = New()
}

func clamp(index, categoryCount int) int {
	if index < 0 {
		return 0
	}
	if max := categoryCount - 1; max >= 0 && index > max {
		return max
	}
	return index
}

// AnswersForCategory returns the subset of answers covering the given
// question IDs, skipping unanswered ones.
func (s *State) AnswersForCategory(questionIDs []string) map[string]string {
	out := make(map[string]string)
	for _, id := range questionIDs {
		if a, ok := s.Answers[id]; ok && a != "" {
			out[id] = a
		}
	}
	return out
}

// Progress reports how many of the given questions have a non-empty answer.
func (s *State) Progress(questionIDs []string) (answered, total int) {
	for _, id := range questionIDs {
		if s.Answers[id] != "" {
			answered++
		}
	}
	return answered, len(questionIDs)
}

// CategoryComplete is the forward-navigation guard: a page may only be left
// forward once every question on it has a non-empty answer.
func (s *State) CategoryComplete(questionIDs []string) bool {
	answered, total := s.Progress(questionIDs)
	return answered == total
}

// DraftStore persists wizard drafts per participant so a sheet in progress
// survives reloads and device switches.
type DraftStore interface {
	// Load returns domain.ErrDraftNotFound when no draft exists.
	Load(ctx context.Context, name string) (State, error)
	Save(ctx context.Context, name string, state State) error
	Delete(ctx context.Context, name string) error
}
