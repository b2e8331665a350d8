// Package postgres implements the pick store on Postgres for deployments
// that outgrow the JSON file (shared hosting, multiple instances).
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"propbets-service/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Participants(ctx context.Context) ([]domain.Participant, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, emoji, abbreviation, has_submitted FROM participants ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.Name, &p.Emoji, &p.Abbreviation, &p.HasSubmitted); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, title, emoji, display_order FROM categories ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Emoji, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Questions(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, category_id, type, prompt, question_number, choices, over_under FROM questions ORDER BY question_number`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []domain.Question
	for rows.Next() {
		var (
			q       domain.Question
			qType   string
			choices []byte
			overRaw []byte
		)
		if err := rows.Scan(&q.ID, &q.CategoryID, &qType, &q.Prompt, &q.Number, &choices, &overRaw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Type = domain.QuestionType(qType)
		if len(choices) > 0 {
			if err := json.Unmarshal(choices, &q.Choices); err != nil {
				return nil, fmt.Errorf("decode choices for %s: %w", q.ID, err)
			}
		}
		if len(overRaw) > 0 {
			var ou domain.OverUnder
			if err := json.Unmarshal(overRaw, &ou); err != nil {
				return nil, fmt.Errorf("decode over/under for %s: %w", q.ID, err)
			}
			q.OverUnder = &ou
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *Store) Responses(ctx context.Context) ([]domain.Response, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, participant_name, question_id, answer, created_at FROM responses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var out []domain.Response
	for rows.Next() {
		var r domain.Response
		if err := rows.Scan(&r.ID, &r.ParticipantName, &r.QuestionID, &r.Answer, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Submissions(ctx context.Context) ([]domain.Submission, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, participant_name, created_at FROM submissions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		if err := rows.Scan(&sub.ID, &sub.ParticipantName, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// RecordSubmission writes the responses, the submission, and the flag flip
// in one transaction.
func (s *Store) RecordSubmission(ctx context.Context, responses []domain.Response, submission domain.Submission) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		for _, r := range responses {
			if _, err := tx.Exec(ctx,
				`INSERT INTO responses (id, participant_name, question_id, answer, created_at) VALUES ($1, $2, $3, $4, $5)`,
				r.ID, r.ParticipantName, r.QuestionID, r.Answer, r.CreatedAt); err != nil {
				return fmt.Errorf("insert response: %w", err)
			}
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO submissions (id, participant_name, created_at) VALUES ($1, $2, $3)`,
			submission.ID, submission.ParticipantName, submission.CreatedAt); err != nil {
			return fmt.Errorf("insert submission: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE participants SET has_submitted = TRUE WHERE name = $1`,
			submission.ParticipantName); err != nil {
			return fmt.Errorf("mark submitted: %w", err)
		}
		return nil
	})
}

func (s *Store) SeedIfEmpty(ctx context.Context, participants []domain.Participant, categories []domain.Category, questions []domain.Question) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM participants`).Scan(&count); err != nil {
			return fmt.Errorf("count participants: %w", err)
		}
		if count > 0 {
			return nil
		}
		for _, p := range participants {
			if _, err := tx.Exec(ctx,
				`INSERT INTO participants (name, emoji, abbreviation, has_submitted) VALUES ($1, $2, $3, $4)`,
				p.Name, p.Emoji, p.Abbreviation, p.HasSubmitted); err != nil {
				return fmt.Errorf("insert participant: %w", err)
			}
		}
		for _, c := range categories {
			if _, err := tx.Exec(ctx,
				`INSERT INTO categories (id, title, emoji, display_order) VALUES ($1, $2, $3, $4)`,
				c.ID, c.Title, c.Emoji, c.DisplayOrder); err != nil {
				return fmt.Errorf("insert category: %w", err)
			}
		}
		for _, q := range questions {
			choices, err := json.Marshal(q.Choices)
			if err != nil {
				return fmt.Errorf("encode choices for %s: %w", q.ID, err)
			}
			var overRaw []byte
			if q.OverUnder != nil {
				if overRaw, err = json.Marshal(q.OverUnder); err != nil {
					return fmt.Errorf("encode over/under for %s: %w", q.ID, err)
				}
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO questions (id, category_id, type, prompt, question_number, choices, over_under) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				q.ID, q.CategoryID, string(q.Type), q.Prompt, q.Number, choices, overRaw); err != nil {
				return fmt.Errorf("insert question: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
