// Package jsonfile implements the pick store as a single JSON document on
// disk holding the five record collections. It is the default backend for
// the family-sized dataset this service carries.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"propbets-service/internal/domain"
)

type document struct {
	Participants []domain.Participant `json:"participants"`
	Categories   []domain.Category    `json:"categories"`
	Questions    []domain.Question    `json:"questions"`
	Responses    []domain.Response    `json:"responses"`
	Submissions  []domain.Submission  `json:"submissions"`
}

// Store reads and writes the whole document per call. A single mutex makes
// every read-modify-write cycle atomic within the process, and writes go
// through a temp file plus rename so a crash never leaves a torn file.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Participants(_ context.Context) ([]domain.Participant, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Participants, nil
}

func (s *Store) Categories(_ context.Context) ([]domain.Category, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

func (s *Store) Questions(_ context.Context) ([]domain.Question, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Questions, nil
}

func (s *Store) Responses(_ context.Context) ([]domain.Response, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Responses, nil
}

func (s *Store) Submissions(_ context.Context) ([]domain.Submission, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Submissions, nil
}

// RecordSubmission appends the responses and the submission record and flips
// the participant's flag in one document write.
func (s *Store) RecordSubmission(_ context.Context, responses []domain.Response, submission domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Responses = append(doc.Responses, responses...)
	doc.Submissions = append(doc.Submissions, submission)
	for i := range doc.Participants {
		if doc.Participants[i].Name == submission.ParticipantName {
			doc.Participants[i].HasSubmitted = true
			break
		}
	}
	return s.save(doc)
}

func (s *Store) SeedIfEmpty(_ context.Context, participants []domain.Participant, categories []domain.Category, questions []domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if len(doc.Participants) > 0 {
		return nil
	}
	doc.Participants = participants
	doc.Categories = categories
	doc.Questions = questions
	return s.save(doc)
}

func (s *Store) read() (document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load returns an empty document when the file does not exist yet.
func (s *Store) load() (document, error) {
	doc := document{
		Participants: []domain.Participant{},
		Categories:   []domain.Category{},
		Questions:    []domain.Question{},
		Responses:    []domain.Response{},
		Submissions:  []domain.Submission{},
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("read store file: %w", err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, fmt.Errorf("decode store file: %w", err)
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
