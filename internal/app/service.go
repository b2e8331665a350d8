package app

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"propbets-service/internal/domain"
)

// Store abstracts how the five record collections are persisted
// (JSON file, Postgres, in-memory). Reads must reflect prior writes from
// the same process; no cross-process guarantee is required.
type Store interface {
	Participants(ctx context.Context) ([]domain.Participant, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Questions(ctx context.Context) ([]domain.Question, error)
	Responses(ctx context.Context) ([]domain.Response, error)
	Submissions(ctx context.Context) ([]domain.Submission, error)

	// RecordSubmission persists the responses, the submission record, and the
	// participant's submitted flag as a single write, so a crash cannot leave
	// responses behind without the matching submission.
	RecordSubmission(ctx context.Context, responses []domain.Response, submission domain.Submission) error

	// SeedIfEmpty populates the static collections once; it is a no-op when
	// participants already exist.
	SeedIfEmpty(ctx context.Context, participants []domain.Participant, categories []domain.Category, questions []domain.Question) error
}

// SubmissionGuard serializes submit attempts per participant so two
// concurrent submits for the same name cannot both pass the
// already-submitted check.
type SubmissionGuard interface {
	// Acquire returns ok=false when another submit for the same name is in
	// flight. The caller must invoke release when ok is true.
	Acquire(ctx context.Context, name string) (release func(), ok bool, err error)
}

// Catalog is the question wizard payload: categories in display order and
// the questions grouped per category.
type Catalog struct {
	Categories          []domain.Category            `json:"categories"`
	QuestionsByCategory map[string][]domain.Question `json:"questionsByCategory"`
}

// RosterEntry is one participant with their submission status, derived from
// the submission records rather than the stored flag.
type RosterEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Emoji        string `json:"emoji,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	HasSubmitted bool   `json:"has_submitted"`
}

// PickService contains the prop-bets use cases: the question catalog, the
// participant roster, the one-shot submission workflow, and the scored
// leaderboard with its cache and live subscribers.
type PickService struct {
	store Store
	guard SubmissionGuard
	key   domain.AnswerKey
	cache *leaderboardCache
	clock func() time.Time

	mu          sync.Mutex
	subscribers map[chan domain.Leaderboard]struct{}
}

func NewPickService(store Store, guard SubmissionGuard, key domain.AnswerKey, cacheTTL time.Duration) *PickService {
	s := &PickService{
		store:       store,
		guard:       guard,
		key:         key,
		clock:       time.Now,
		subscribers: make(map[chan domain.Leaderboard]struct{}),
	}
	s.cache = newLeaderboardCache(s.computeLeaderboard, cacheTTL)
	return s
}

// Catalog returns categories sorted by display order with their questions.
func (s *PickService) Catalog(ctx context.Context) (Catalog, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load categories: %w", err)
	}
	questions, err := s.store.Questions(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load questions: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})

	byCategory := make(map[string][]domain.Question, len(categories))
	for _, q := range questions {
		byCategory[q.CategoryID] = append(byCategory[q.CategoryID], q)
	}
	return Catalog{Categories: categories, QuestionsByCategory: byCategory}, nil
}

// Roster lists every participant and whether a submission record exists for
// them. The submission set, not the cached flag, decides has_submitted.
func (s *PickService) Roster(ctx context.Context) ([]RosterEntry, error) {
	participants, err := s.store.Participants(ctx)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	submissions, err := s.store.Submissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	submitted := make(map[string]bool, len(submissions))
	for _, sub := range submissions {
		submitted[sub.ParticipantName] = true
	}

	entries := make([]RosterEntry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, RosterEntry{
			ID:           p.Name,
			Name:         p.Name,
			Emoji:        p.Emoji,
			Abbreviation: p.Abbreviation,
			HasSubmitted: submitted[p.Name],
		})
	}
	return entries, nil
}

// Submit records a participant's picks. It rejects before any write when the
// name or answers are missing, the participant is unknown, or they have
// already submitted. The guard closes the window where two concurrent
// submits for the same name both pass the already-submitted check.
func (s *PickService) Submit(ctx context.Context, name string, answers map[string]string) error {
	if name == "" || len(answers) == 0 {
		return domain.ErrMissingFields
	}

	release, ok, err := s.guard.Acquire(ctx, name)
	if err != nil {
		return fmt.Errorf("acquire submit guard: %w", err)
	}
	if !ok {
		return domain.ErrAlreadySubmitted
	}
	defer release()

	participants, err := s.store.Participants(ctx)
	if err != nil {
		return fmt.Errorf("load participants: %w", err)
	}
	var participant *domain.Participant
	for i := range participants {
		if participants[i].Name == name {
			participant = &participants[i]
			break
		}
	}
	if participant == nil {
		return domain.ErrParticipantNotFound
	}
	if participant.HasSubmitted {
		return domain.ErrAlreadySubmitted
	}
	submissions, err := s.store.Submissions(ctx)
	if err != nil {
		return fmt.Errorf("load submissions: %w", err)
	}
	for _, sub := range submissions {
		if sub.ParticipantName == name {
			return domain.ErrAlreadySubmitted
		}
	}

	now := s.clock()
	questionIDs := make([]string, 0, len(answers))
	for qid := range answers {
		questionIDs = append(questionIDs, qid)
	}
	sort.Strings(questionIDs)

	responses := make([]domain.Response, 0, len(answers))
	for _, qid := range questionIDs {
		responses = append(responses, domain.Response{
			ID:              newRecordID(),
			ParticipantName: name,
			QuestionID:      qid,
			Answer:          answers[qid],
			CreatedAt:       now,
		})
	}
	submission := domain.Submission{
		ID:              newRecordID(),
		ParticipantName: name,
		CreatedAt:       now,
	}

	if err := s.store.RecordSubmission(ctx, responses, submission); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}

	s.cache.invalidate()
	if lb, err := s.Leaderboard(ctx); err == nil {
		s.broadcast(lb)
	}
	return nil
}

// Leaderboard returns the scored results, served from the TTL cache when
// fresh. Two calls with unchanged store data yield identical output.
func (s *PickService) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	return s.cache.get(ctx)
}

func (s *PickService) computeLeaderboard(ctx context.Context) (domain.Leaderboard, error) {
	participants, err := s.store.Participants(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load participants: %w", err)
	}
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load categories: %w", err)
	}
	questions, err := s.store.Questions(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load questions: %w", err)
	}
	responses, err := s.store.Responses(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load responses: %w", err)
	}
	submissions, err := s.store.Submissions(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load submissions: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})

	return domain.Leaderboard{
		Results:        Score(questions, responses, submissions, participants, s.key),
		Categories:     categories,
		TotalQuestions: len(questions),
		UpdatedAt:      s.clock(),
	}, nil
}

// Subscribe registers a live leaderboard listener. The current snapshot is
// delivered first; the caller must invoke cancel to avoid leaks.
func (s *PickService) Subscribe(ctx context.Context) (<-chan domain.Leaderboard, func(), error) {
	initial, err := s.Leaderboard(ctx)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan domain.Leaderboard, 8)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel, nil
}

func (s *PickService) broadcast(lb domain.Leaderboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- lb:
		default:
			// Drop the stale update so a slow client never blocks the rest.
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newRecordID mirrors the id shape the store has always held:
// millisecond timestamp, dash, seven base-36 characters.
func newRecordID() string {
	buf := make([]byte, 7)
	for i := range buf {
		buf[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), string(buf))
}
