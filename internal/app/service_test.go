package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"propbets-service/internal/app"
	"propbets-service/internal/domain"
	"propbets-service/internal/infra/memory"
)

func newTestService(t *testing.T, cacheTTL time.Duration) (*app.PickService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	err := store.SeedIfEmpty(context.Background(),
		[]domain.Participant{
			{Name: "Erica", Emoji: "🦅"},
			{Name: "Mike", Emoji: "🍕"},
		},
		[]domain.Category{
			{ID: "game", Title: "Game Flow", DisplayOrder: 1},
		},
		[]domain.Question{
			{ID: "q1", CategoryID: "game", Number: 1},
			{ID: "q3", CategoryID: "game", Number: 3},
		},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	key := domain.AnswerKey{"q1": "NO", "q3": "UNDER"}
	return app.NewPickService(store, memory.NewSubmissionGuard(), key, cacheTTL), store
}

func TestSubmitPersistsPicks(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService(t, 0)

	if err := service.Submit(ctx, "Erica", map[string]string{"q1": "NO", "q3": "OVER"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	responses, _ := store.Responses(ctx)
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	submissions, _ := store.Submissions(ctx)
	if len(submissions) != 1 || submissions[0].ParticipantName != "Erica" {
		t.Fatalf("expected 1 submission for Erica, got %+v", submissions)
	}
	participants, _ := store.Participants(ctx)
	for _, p := range participants {
		if p.Name == "Erica" && !p.HasSubmitted {
			t.Fatalf("expected submitted flag set")
		}
	}
}

func TestSubmitRejectionsLeaveStoreUnchanged(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		who     string
		answers map[string]string
		wantErr error
	}{
		{"missing name", "", map[string]string{"q1": "NO"}, domain.ErrMissingFields},
		{"missing answers", "Erica", nil, domain.ErrMissingFields},
		{"unknown participant", "Stranger", map[string]string{"q1": "NO"}, domain.ErrParticipantNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, store := newTestService(t, 0)
			err := service.Submit(ctx, tc.who, tc.answers)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if responses, _ := store.Responses(ctx); len(responses) != 0 {
				t.Fatalf("rejection wrote responses: %+v", responses)
			}
			if submissions, _ := store.Submissions(ctx); len(submissions) != 0 {
				t.Fatalf("rejection wrote submissions: %+v", submissions)
			}
		})
	}
}

func TestSecondSubmitRejected(t *testing.T) {
	ctx := context.Background()
	service, store := newTestService(t, 0)

	if err := service.Submit(ctx, "Erica", map[string]string{"q1": "NO"}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	err := service.Submit(ctx, "Erica", map[string]string{"q1": "YES"})
	if !errors.Is(err, domain.ErrAlreadySubmitted) {
		t.Fatalf("expected already submitted, got %v", err)
	}

	responses, _ := store.Responses(ctx)
	if len(responses) != 1 {
		t.Fatalf("duplicate submit wrote responses: %d", len(responses))
	}
	submissions, _ := store.Submissions(ctx)
	if len(submissions) != 1 {
		t.Fatalf("duplicate submit wrote submissions: %d", len(submissions))
	}
}

func TestLeaderboardEmptyWithoutSubmissions(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, 0)

	lb, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(lb.Results) != 0 {
		t.Fatalf("expected empty results, got %+v", lb.Results)
	}
	if lb.TotalQuestions != 2 {
		t.Fatalf("expected 2 total questions, got %d", lb.TotalQuestions)
	}
}

func TestLeaderboardIdempotentForUnchangedStore(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, 0)

	if err := service.Submit(ctx, "Erica", map[string]string{"q1": "no", "q3": "over"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	first, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	second, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(first.Results) != len(second.Results) {
		t.Fatalf("result count changed between calls")
	}
	for i := range first.Results {
		a, b := first.Results[i], second.Results[i]
		if a.Name != b.Name || a.Correct != b.Correct || a.Wrong != b.Wrong || a.Percentage != b.Percentage {
			t.Fatalf("results differ at %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestLeaderboardCacheRefreshesAfterSubmit(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, time.Minute)

	lb, err := service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(lb.Results) != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", lb.Results)
	}

	if err := service.Submit(ctx, "Erica", map[string]string{"q1": "NO", "q3": "UNDER"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	lb, err = service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(lb.Results) != 1 || lb.Results[0].Correct != 2 {
		t.Fatalf("expected cached leaderboard invalidated by submit, got %+v", lb.Results)
	}
}

func TestSubscribeReceivesUpdateAfterSubmit(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, 0)

	ch, cancel, err := service.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	initial := <-ch
	if len(initial.Results) != 0 {
		t.Fatalf("expected empty initial snapshot, got %+v", initial.Results)
	}

	if err := service.Submit(ctx, "Mike", map[string]string{"q1": "NO"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	select {
	case update := <-ch:
		if len(update.Results) != 1 || update.Results[0].Name != "Mike" {
			t.Fatalf("expected Mike on the pushed leaderboard, got %+v", update.Results)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no leaderboard update received")
	}
}

func TestRosterDerivedFromSubmissions(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, 0)

	if err := service.Submit(ctx, "Erica", map[string]string{"q1": "NO"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	roster, err := service.Roster(ctx)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(roster))
	}
	byName := map[string]bool{}
	for _, e := range roster {
		byName[e.Name] = e.HasSubmitted
		if e.ID != e.Name {
			t.Fatalf("expected id to mirror name, got %q for %q", e.ID, e.Name)
		}
	}
	if !byName["Erica"] || byName["Mike"] {
		t.Fatalf("wrong submission flags: %+v", byName)
	}
}

func TestCatalogGroupsQuestionsByCategory(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t, 0)

	catalog, err := service.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(catalog.Categories) != 1 || catalog.Categories[0].ID != "game" {
		t.Fatalf("unexpected categories: %+v", catalog.Categories)
	}
	if got := len(catalog.QuestionsByCategory["game"]); got != 2 {
		t.Fatalf("expected 2 questions under game, got %d", got)
	}
}
