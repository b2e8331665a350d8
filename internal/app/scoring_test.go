package app

import (
	"math"
	"testing"
	"time"

	"propbets-service/internal/domain"
)

func TestScoreOnlySubmittedParticipants(t *testing.T) {
	questions := []domain.Question{{ID: "q1"}, {ID: "q2"}}
	participants := []domain.Participant{{Name: "Erica"}, {Name: "Mike"}}
	submissions := []domain.Submission{{ID: "s1", ParticipantName: "Erica"}}
	responses := []domain.Response{
		{ID: "r1", ParticipantName: "Erica", QuestionID: "q1", Answer: "NO"},
		{ID: "r2", ParticipantName: "Mike", QuestionID: "q1", Answer: "YES"},
	}

	results := Score(questions, responses, submissions, participants, domain.AnswerKey{"q1": "NO"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "Erica" {
		t.Fatalf("expected Erica, got %s", results[0].Name)
	}
}

func TestScoreEricaScenario(t *testing.T) {
	questions := []domain.Question{
		{ID: "q1", CategoryID: "game", Number: 1},
		{ID: "q3", CategoryID: "game", Number: 3},
	}
	participants := []domain.Participant{{Name: "Erica", Emoji: "🦅"}}
	submissions := []domain.Submission{{ID: "s1", ParticipantName: "Erica"}}
	responses := []domain.Response{
		{ID: "r1", ParticipantName: "Erica", QuestionID: "q1", Answer: "NO"},
		{ID: "r2", ParticipantName: "Erica", QuestionID: "q3", Answer: "OVER"},
	}
	key := domain.AnswerKey{"q1": "NO", "q3": "UNDER"}

	results := Score(questions, responses, submissions, participants, key)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Correct != 1 || r.Wrong != 1 {
		t.Fatalf("expected correct=1 wrong=1, got correct=%d wrong=%d", r.Correct, r.Wrong)
	}
	if r.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", r.Percentage)
	}
}

func TestScoreCaseInsensitiveComparison(t *testing.T) {
	questions := []domain.Question{{ID: "q1"}}
	participants := []domain.Participant{{Name: "Sam"}}
	submissions := []domain.Submission{{ID: "s1", ParticipantName: "Sam"}}
	responses := []domain.Response{{ID: "r1", ParticipantName: "Sam", QuestionID: "q1", Answer: "yes"}}

	results := Score(questions, responses, submissions, participants, domain.AnswerKey{"q1": "YES"})
	if results[0].Correct != 1 {
		t.Fatalf("expected yes == YES, got correct=%d", results[0].Correct)
	}
}

func TestScoreUngradedQuestionsNeverCounted(t *testing.T) {
	questions := []domain.Question{{ID: "q1"}, {ID: "q7"}}
	participants := []domain.Participant{{Name: "Dana"}}
	submissions := []domain.Submission{{ID: "s1", ParticipantName: "Dana"}}
	responses := []domain.Response{
		{ID: "r1", ParticipantName: "Dana", QuestionID: "q1", Answer: "NO"},
		{ID: "r2", ParticipantName: "Dana", QuestionID: "q7", Answer: "YES"}, // q7 has no key entry
	}

	results := Score(questions, responses, submissions, participants, domain.AnswerKey{"q1": "NO"})
	r := results[0]
	if r.Correct != 1 || r.Wrong != 0 {
		t.Fatalf("ungraded question counted: correct=%d wrong=%d", r.Correct, r.Wrong)
	}
	// Still present in the detail output.
	if len(r.QuestionResults) != 2 {
		t.Fatalf("expected 2 question results, got %d", len(r.QuestionResults))
	}
	for _, qr := range r.QuestionResults {
		if qr.QuestionID == "q7" && qr.CorrectAnswer != nil {
			t.Fatalf("expected nil correct answer for ungraded q7")
		}
	}
	// Percentage uses the full question count, so 1/2 here.
	if r.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", r.Percentage)
	}
}

func TestScoreAllUngradedYieldsZeroPercent(t *testing.T) {
	questions := []domain.Question{{ID: "q7"}, {ID: "q10"}}
	participants := []domain.Participant{{Name: "Lily"}}
	submissions := []domain.Submission{{ID: "s1", ParticipantName: "Lily"}}
	responses := []domain.Response{
		{ID: "r1", ParticipantName: "Lily", QuestionID: "q7", Answer: "YES"},
		{ID: "r2", ParticipantName: "Lily", QuestionID: "q10", Answer: "OVER"},
	}

	results := Score(questions, responses, submissions, participants, domain.AnswerKey{})
	if results[0].Percentage != 0 || results[0].Correct != 0 || results[0].Wrong != 0 {
		t.Fatalf("expected all-zero scoring, got %+v", results[0])
	}
}

func TestScoreOrderingLaw(t *testing.T) {
	questions := []domain.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}}
	key := domain.AnswerKey{"q1": "A", "q2": "A", "q3": "A"}

	participants := []domain.Participant{
		{Name: "none"}, {Name: "two-right"}, {Name: "one-right-one-wrong"}, {Name: "one-right"},
	}
	var submissions []domain.Submission
	var responses []domain.Response
	add := func(name string, answers map[string]string) {
		submissions = append(submissions, domain.Submission{ID: "s-" + name, ParticipantName: name})
		for qid, a := range answers {
			responses = append(responses, domain.Response{ID: name + qid, ParticipantName: name, QuestionID: qid, Answer: a})
		}
	}
	add("none", map[string]string{"q1": "B"})
	add("two-right", map[string]string{"q1": "A", "q2": "A", "q3": "B"})
	add("one-right-one-wrong", map[string]string{"q1": "A", "q2": "B"})
	add("one-right", map[string]string{"q1": "A"})

	results := Score(questions, responses, submissions, participants, key)
	for i := 1; i < len(results); i++ {
		a, b := results[i-1], results[i]
		if !(a.Correct > b.Correct || (a.Correct == b.Correct && a.Wrong <= b.Wrong)) {
			t.Fatalf("ordering law violated at %d: %+v before %+v", i, a, b)
		}
	}
	if results[0].Name != "two-right" {
		t.Fatalf("expected two-right first, got %s", results[0].Name)
	}
	// Same correct count: fewer wrong ranks higher.
	if results[1].Name != "one-right" {
		t.Fatalf("expected one-right before one-right-one-wrong, got %s", results[1].Name)
	}
}

func TestScoreBoundsAndPercentage(t *testing.T) {
	questions := seedQuestions(5)
	key := domain.AnswerKey{"q0": "A", "q1": "A", "q2": "A"}
	participants := []domain.Participant{{Name: "Priya"}}
	submissions := []domain.Submission{{ID: "s1", ParticipantName: "Priya", CreatedAt: time.Now()}}
	responses := []domain.Response{
		{ID: "r0", ParticipantName: "Priya", QuestionID: "q0", Answer: "A"},
		{ID: "r1", ParticipantName: "Priya", QuestionID: "q1", Answer: "B"},
		{ID: "r2", ParticipantName: "Priya", QuestionID: "q3", Answer: "A"}, // ungraded
	}

	r := Score(questions, responses, submissions, participants, key)[0]
	if r.Correct+r.Wrong > len(questions) {
		t.Fatalf("correct+wrong exceeds total: %d+%d > %d", r.Correct, r.Wrong, len(questions))
	}
	want := int(math.Round(float64(r.Correct) / float64(len(questions)) * 100))
	if r.Percentage != want {
		t.Fatalf("percentage %d, want %d", r.Percentage, want)
	}
}

func seedQuestions(n int) []domain.Question {
	out := make([]domain.Question, n)
	for i := range out {
		out[i] = domain.Question{ID: "q" + string(rune('0'+i)), Number: i}
	}
	return out
}
