package memory

import (
	"context"
	"sync"

	"propbets-service/internal/domain"
)

// Store is an in-memory implementation of app.Store, used by tests and as a
// throwaway backend for local demos.
type Store struct {
	mu           sync.RWMutex
	participants []domain.Participant
	categories   []domain.Category
	questions    []domain.Question
	responses    []domain.Response
	submissions  []domain.Submission
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Participants(_ context.Context) ([]domain.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Participant(nil), s.participants...), nil
}

func (s *Store) Categories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...), nil
}

func (s *Store) Questions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Question(nil), s.questions...), nil
}

func (s *Store) Responses(_ context.Context) ([]domain.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Response(nil), s.responses...), nil
}

func (s *Store) Submissions(_ context.Context) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Submission(nil), s.submissions...), nil
}

func (s *Store) RecordSubmission(_ context.Context, responses []domain.Response, submission domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, responses...)
	s.submissions = append(s.submissions, submission)
	for i := range s.participants {
		if s.participants[i].Name == submission.ParticipantName {
			s.participants[i].HasSubmitted = true
			break
		}
	}
	return nil
}

func (s *Store) SeedIfEmpty(_ context.Context, participants []domain.Participant, categories []domain.Category, questions []domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.participants) > 0 {
		return nil
	}
	s.participants = append([]domain.Participant(nil), participants...)
	s.categories = append([]domain.Category(nil), categories...)
	s.questions = append([]domain.Question(nil), questions...)
	return nil
}
