package app

import (
	"fmt"
	"os"

	"propbets-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// DefaultAnswerKey is the graded outcome of Super Bowl LX (Seahawks 29,
// Patriots 13). Questions without an entry (q7, q10) stay ungraded. The key
// is never exposed over the API before scoring.
func DefaultAnswerKey() domain.AnswerKey {
	return domain.AnswerKey{
		"q1":  "NO",           // no overtime
		"q2":  "Patriots",     // won the toss and deferred
		"q3":  "UNDER",        // 42 total points
		"q4":  "YES",          // 16-point margin
		"q5":  "Seahawks",     // opening 33-yd field goal
		"q6":  "UNDER",        // 4 touchdowns
		"q8":  "OVER",         // 5 field goals
		"q9":  "30-50 yards",  // 45-yd pick-six
		"q11": "UNDER",        // 202 passing yards
		"q12": "NO",           // no rushing TDs at all
		"q13": "UNDER",        // longest completion 35 yds
		"q14": "YES",          // pick-six
		"q15": "NO",           // kicker went 5/5
		"q19": "OVER",         // 13:41 halftime show
		"q20": "YES",          // multiple cameos
		"q21": "UNDER",        // 111-second anthem
		"q22": "Yellow/Green", // lime Gatorade
		"q23": "Seahawks",     // first timeout
		"q24": "Field Goal",   // first scoring play
		"q25": "YES",          // scored in Q1
		"q27": "NO",           // no coach challenge
		"q28": "NO",           // fumble led to a FG drive, not a TD
		"q29": "UNDER",        // 3 turnovers
		"q30": "NO",           // no successful fakes
	}
}

// LoadAnswerKey reads a question-id to answer mapping from a YAML file,
// letting the key be corrected after kickoff without a rebuild.
func LoadAnswerKey(path string) (domain.AnswerKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer key: %w", err)
	}
	key := domain.AnswerKey{}
	if err := yaml.Unmarshal(raw, &key); err != nil {
		return nil, fmt.Errorf("decode answer key: %w", err)
	}
	return key, nil
}
