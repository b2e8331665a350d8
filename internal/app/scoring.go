package app

import (
	"math"
	"sort"
	"strings"

	"propbets-service/internal/domain"
)

// Score grades every submitted participant against the answer key and
// returns the leaderboard rows in display order. Participants without a
// submission record are excluded, not scored as zero.
//
// A question counts toward the correct/wrong tally only when both the
// participant's answer and a key entry exist; comparison is a
// case-insensitive exact match. Percentage is computed against the full
// question count, so an all-ungraded sheet yields 0%.
func Score(questions []domain.Question, responses []domain.Response, submissions []domain.Submission, participants []domain.Participant, key domain.AnswerKey) []domain.ParticipantResult {
	answersByName := make(map[string]map[string]string)
	for _, r := range responses {
		byQuestion, ok := answersByName[r.ParticipantName]
		if !ok {
			byQuestion = make(map[string]string)
			answersByName[r.ParticipantName] = byQuestion
		}
		byQuestion[r.QuestionID] = r.Answer
	}

	submitted := make(map[string]bool, len(submissions))
	for _, s := range submissions {
		submitted[s.ParticipantName] = true
	}

	results := make([]domain.ParticipantResult, 0, len(submissions))
	for _, p := range participants {
		if !submitted[p.Name] {
			continue
		}
		results = append(results, scoreParticipant(p, questions, answersByName[p.Name], key))
	}

	// Most correct first, fewest wrong breaks ties. Equal pairs keep store
	// iteration order; the stable sort makes the remaining tie order
	// reproducible for a given store state.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Correct != results[j].Correct {
			return results[i].Correct > results[j].Correct
		}
		return results[i].Wrong < results[j].Wrong
	})
	return results
}

func scoreParticipant(p domain.Participant, questions []domain.Question, answers map[string]string, key domain.AnswerKey) domain.ParticipantResult {
	emoji := p.Emoji
	if emoji == "" {
		emoji = "👤"
	}

	correct, wrong := 0, 0
	details := make([]domain.QuestionResult, 0, len(questions))
	for _, q := range questions {
		var userAnswer, keyAnswer *string
		if a, ok := answers[q.ID]; ok {
			userAnswer = &a
		}
		if k, ok := key[q.ID]; ok {
			keyAnswer = &k
		}

		isCorrect := userAnswer != nil && keyAnswer != nil &&
			strings.EqualFold(*userAnswer, *keyAnswer)
		if userAnswer != nil && keyAnswer != nil {
			if isCorrect {
				correct++
			} else {
				wrong++
			}
		}

		details = append(details, domain.QuestionResult{
			QuestionID:    q.ID,
			Number:        q.Number,
			Text:          q.Prompt,
			CategoryID:    q.CategoryID,
			UserAnswer:    userAnswer,
			CorrectAnswer: keyAnswer,
			Correct:       isCorrect,
		})
	}

	percentage := 0
	if len(questions) > 0 {
		percentage = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}

	return domain.ParticipantResult{
		Name:            p.Name,
		Emoji:           emoji,
		Correct:         correct,
		Wrong:           wrong,
		Total:           len(questions),
		Percentage:      percentage,
		QuestionResults: details,
	}
}
