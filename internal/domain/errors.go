package domain

import "errors"

var (
	// ErrMissingFields is returned when a submit request lacks a participant name or answers.
	ErrMissingFields = errors.New("missing participant name or answers")
	// ErrParticipantNotFound is returned when the named participant is not in the roster.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrAlreadySubmitted is returned on a second submit attempt for the same participant.
	ErrAlreadySubmitted = errors.New("picks already submitted")
	// ErrDraftNotFound is returned when no saved form draft exists for a participant.
	ErrDraftNotFound = errors.New("draft not found")
)
