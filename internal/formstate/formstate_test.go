package formstate

import (
	"encoding/json"
	"testing"
)

func TestSetParticipantResetsSheet(t *testing.T) {
	s := New()
	s.SetParticipant("Erica")
	s.SetAnswer("q1", "NO")
	s.Advance(3)

	s.SetParticipant("Mike")
	if s.ParticipantName != "Mike" {
		t.Fatalf("expected Mike, got %q", s.ParticipantName)
	}
	if len(s.Answers) != 0 || s.CategoryIndex != 0 {
		t.Fatalf("expected fresh sheet, got %+v", s)
	}
}

func TestSetAnswerUpserts(t *testing.T) {
	s := New()
	s.SetAnswer("q1", "YES")
	s.SetAnswer("q1", "NO")
	if s.Answers["q1"] != "NO" {
		t.Fatalf("expected upsert to NO, got %q", s.Answers["q1"])
	}
}

func TestNavigationClamps(t *testing.T) {
	s := New()
	const categories = 3

	s.Retreat(categories)
	if s.CategoryIndex != 0 {
		t.Fatalf("retreat below zero: %d", s.CategoryIndex)
	}

	for i := 0; i < 10; i++ {
		s.Advance(categories)
	}
	if s.CategoryIndex != categories-1 {
		t.Fatalf("advance past last page: %d", s.CategoryIndex)
	}

	s.Retreat(categories)
	if s.CategoryIndex != 1 {
		t.Fatalf("expected index 1, got %d", s.CategoryIndex)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := New()
	s.SetParticipant("Dana")
	s.SetAnswer("q1", "OVER")
	s.Advance(5)

	s.Reset()
	if s.ParticipantName != "" || len(s.Answers) != 0 || s.CategoryIndex != 0 {
		t.Fatalf("reset left state behind: %+v", s)
	}
}

func TestCategoryCompleteGuard(t *testing.T) {
	s := New()
	ids := []string{"q1", "q2", "q3"}

	if s.CategoryComplete(ids) {
		t.Fatalf("empty sheet should not pass the guard")
	}
	s.SetAnswer("q1", "YES")
	s.SetAnswer("q2", "UNDER")
	if s.CategoryComplete(ids) {
		t.Fatalf("partial category should not pass the guard")
	}
	s.SetAnswer("q3", "")
	if s.CategoryComplete(ids) {
		t.Fatalf("empty answer should not count as answered")
	}
	s.SetAnswer("q3", "Patriots")
	if !s.CategoryComplete(ids) {
		t.Fatalf("fully answered category should pass the guard")
	}

	answered, total := s.Progress(ids)
	if answered != 3 || total != 3 {
		t.Fatalf("progress %d/%d, want 3/3", answered, total)
	}
}

func TestAnswersForCategorySkipsUnanswered(t *testing.T) {
	s := New()
	s.SetAnswer("q1", "YES")
	s.SetAnswer("q9", "30-50 yards")

	got := s.AnswersForCategory([]string{"q1", "q2"})
	if len(got) != 1 || got["q1"] != "YES" {
		t.Fatalf("unexpected subset: %+v", got)
	}
}

func TestStateSurvivesSerialization(t *testing.T) {
	s := New()
	s.SetParticipant("Grandpa Joe")
	s.SetAnswer("q22", "Yellow/Green")
	s.Advance(6)

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var loaded State
	if err := json.Unmarshal(raw, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loaded.ParticipantName != "Grandpa Joe" || loaded.Answers["q22"] != "Yellow/Green" || loaded.CategoryIndex != 1 {
		t.Fatalf("round trip lost state: %+v", loaded)
	}
}
