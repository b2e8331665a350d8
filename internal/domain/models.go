package domain

import "time"

// QuestionType enumerates the three prop-bet answer formats.
type QuestionType string

const (
	QuestionYesNo          QuestionType = "yesno"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionOverUnder      QuestionType = "over_under"
)

// Participant is a named individual eligible to submit picks exactly once.
// Name is the unique key; HasSubmitted is the only field that changes after seeding.
type Participant struct {
	Name         string `json:"name"`
	Emoji        string `json:"emoji,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	HasSubmitted bool   `json:"has_submitted"`
}

// Category groups related questions into one wizard page.
type Category struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Emoji        string `json:"emoji,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// OverUnder carries the threshold for an over/under question.
type OverUnder struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Question is a single prop bet with a type-specific answer format.
type Question struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"categoryId"`
	Type       QuestionType `json:"type"`
	Prompt     string       `json:"prompt"`
	Number     int          `json:"question_number"`
	Choices    []string     `json:"choices,omitempty"`
	OverUnder  *OverUnder   `json:"overUnder,omitempty"`
}

// Response is one participant's recorded answer to one question. Append-only.
type Response struct {
	ID              string    `json:"id"`
	ParticipantName string    `json:"participantName"`
	QuestionID      string    `json:"questionId"`
	Answer          string    `json:"answer"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Submission marks a participant's picks as finalized. Append-only; the
// presence of a record is what "has submitted" means server-side.
type Submission struct {
	ID              string    `json:"id"`
	ParticipantName string    `json:"participantName"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AnswerKey maps question IDs to the canonical correct answer. Questions
// absent from the key appear in result detail but are never graded.
type AnswerKey map[string]string

// QuestionResult is the per-question detail of one participant's scoring.
type QuestionResult struct {
	QuestionID    string  `json:"questionId"`
	Number        int     `json:"questionNumber"`
	Text          string  `json:"questionText"`
	CategoryID    string  `json:"categoryId"`
	UserAnswer    *string `json:"userAnswer"`
	CorrectAnswer *string `json:"correctAnswer"`
	Correct       bool    `json:"isCorrect"`
}

// ParticipantResult is one leaderboard row.
type ParticipantResult struct {
	Name            string           `json:"name"`
	Emoji           string           `json:"emoji"`
	Correct         int              `json:"correct"`
	Wrong           int              `json:"wrong"`
	Total           int              `json:"total"`
	Percentage      int              `json:"percentage"`
	QuestionResults []QuestionResult `json:"questionResults"`
}

// Leaderboard is the full scored output pushed to live subscribers.
type Leaderboard struct {
	Results        []ParticipantResult `json:"results"`
	Categories     []Category          `json:"categories"`
	TotalQuestions int                 `json:"totalQuestions"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
