// Package seed holds the static event data: the family roster, the wizard
// categories, and the prop-bet questions for Super Bowl LX.
package seed

import "propbets-service/internal/domain"

func Participants() []domain.Participant {
	return []domain.Participant{
		{Name: "Erica", Emoji: "🦅", Abbreviation: "ER"},
		{Name: "Mike", Emoji: "🍕", Abbreviation: "MK"},
		{Name: "Dana", Emoji: "🎉", Abbreviation: "DN"},
		{Name: "Carlos", Emoji: "🌮", Abbreviation: "CR"},
		{Name: "Priya", Emoji: "🏈", Abbreviation: "PR"},
		{Name: "Sam", Emoji: "🎸", Abbreviation: "SM"},
		{Name: "Grandpa Joe", Emoji: "🧢", Abbreviation: "GJ"},
		{Name: "Lily", Emoji: "🐶", Abbreviation: "LY"},
	}
}

func Categories() []domain.Category {
	return []domain.Category{
		{ID: "game", Title: "Game Flow", Emoji: "🏈", DisplayOrder: 1},
		{ID: "scoring", Title: "Scoring", Emoji: "🎯", DisplayOrder: 2},
		{ID: "players", Title: "Player Props", Emoji: "💪", DisplayOrder: 3},
		{ID: "halftime", Title: "Halftime & Anthem", Emoji: "🎤", DisplayOrder: 4},
		{ID: "firsts", Title: "Firsts", Emoji: "⚡", DisplayOrder: 5},
		{ID: "wildcards", Title: "Wild Cards", Emoji: "🃏", DisplayOrder: 6},
	}
}

func Questions() []domain.Question {
	teams := []string{"Seahawks", "Patriots"}
	return []domain.Question{
		{ID: "q1", CategoryID: "game", Type: domain.QuestionYesNo, Prompt: "Will the game go to overtime?", Number: 1},
		{ID: "q2", CategoryID: "game", Type: domain.QuestionMultipleChoice, Prompt: "Which team will win the coin toss?", Number: 2, Choices: teams},
		{ID: "q3", CategoryID: "game", Type: domain.QuestionOverUnder, Prompt: "Total points scored by both teams", Number: 3, OverUnder: &domain.OverUnder{Value: 50.5, Label: "points"}},
		{ID: "q4", CategoryID: "game", Type: domain.QuestionYesNo, Prompt: "Will the winning margin be more than 7 points?", Number: 4},
		{ID: "q5", CategoryID: "game", Type: domain.QuestionMultipleChoice, Prompt: "Which team will score first?", Number: 5, Choices: teams},

		{ID: "q6", CategoryID: "scoring", Type: domain.QuestionOverUnder, Prompt: "Total touchdowns in the game", Number: 6, OverUnder: &domain.OverUnder{Value: 6.5, Label: "touchdowns"}},
		{ID: "q7", CategoryID: "scoring", Type: domain.QuestionYesNo, Prompt: "Will there be a safety?", Number: 7},
		{ID: "q8", CategoryID: "scoring", Type: domain.QuestionOverUnder, Prompt: "Total field goals made", Number: 8, OverUnder: &domain.OverUnder{Value: 3.5, Label: "field goals"}},
		{ID: "q9", CategoryID: "scoring", Type: domain.QuestionMultipleChoice, Prompt: "How long will the longest touchdown be?", Number: 9, Choices: []string{"Under 30 yards", "30-50 yards", "50+ yards"}},
		{ID: "q10", CategoryID: "scoring", Type: domain.QuestionOverUnder, Prompt: "Combined first-quarter points", Number: 10, OverUnder: &domain.OverUnder{Value: 10.5, Label: "points"}},

		{ID: "q11", CategoryID: "players", Type: domain.QuestionOverUnder, Prompt: "Winning quarterback passing yards", Number: 11, OverUnder: &domain.OverUnder{Value: 275.5, Label: "yards"}},
		{ID: "q12", CategoryID: "players", Type: domain.QuestionYesNo, Prompt: "Will any running back score 2+ touchdowns?", Number: 12},
		{ID: "q13", CategoryID: "players", Type: domain.QuestionOverUnder, Prompt: "Longest completion of the game", Number: 13, OverUnder: &domain.OverUnder{Value: 45.5, Label: "yards"}},
		{ID: "q14", CategoryID: "players", Type: domain.QuestionYesNo, Prompt: "Will an interception be returned for a touchdown?", Number: 14},
		{ID: "q15", CategoryID: "players", Type: domain.QuestionYesNo, Prompt: "Will there be a missed field goal?", Number: 15},

		{ID: "q19", CategoryID: "halftime", Type: domain.QuestionOverUnder, Prompt: "Halftime show length in minutes", Number: 19, OverUnder: &domain.OverUnder{Value: 13.5, Label: "minutes"}},
		{ID: "q20", CategoryID: "halftime", Type: domain.QuestionYesNo, Prompt: "Will there be a celebrity cameo during the halftime show?", Number: 20},
		{ID: "q21", CategoryID: "halftime", Type: domain.QuestionOverUnder, Prompt: "National anthem length in seconds", Number: 21, OverUnder: &domain.OverUnder{Value: 120.5, Label: "seconds"}},
		{ID: "q22", CategoryID: "halftime", Type: domain.QuestionMultipleChoice, Prompt: "What color will the Gatorade shower be?", Number: 22, Choices: []string{"Orange", "Yellow/Green", "Blue", "Red", "Purple", "Clear/Water"}},

		{ID: "q23", CategoryID: "firsts", Type: domain.QuestionMultipleChoice, Prompt: "Which team will call the first timeout?", Number: 23, Choices: teams},
		{ID: "q24", CategoryID: "firsts", Type: domain.QuestionMultipleChoice, Prompt: "What will the first scoring play be?", Number: 24, Choices: []string{"Touchdown", "Field Goal", "Safety"}},
		{ID: "q25", CategoryID: "firsts", Type: domain.QuestionYesNo, Prompt: "Will the first score come in the first quarter?", Number: 25},

		{ID: "q27", CategoryID: "wildcards", Type: domain.QuestionYesNo, Prompt: "Will a coach challenge a call?", Number: 27},
		{ID: "q28", CategoryID: "wildcards", Type: domain.QuestionYesNo, Prompt: "Will a fumble be recovered for a touchdown?", Number: 28},
		{ID: "q29", CategoryID: "wildcards", Type: domain.QuestionOverUnder, Prompt: "Total turnovers by both teams", Number: 29, OverUnder: &domain.OverUnder{Value: 3.5, Label: "turnovers"}},
		{ID: "q30", CategoryID: "wildcards", Type: domain.QuestionYesNo, Prompt: "Will there be a successful fake punt or field goal?", Number: 30},
	}
}
