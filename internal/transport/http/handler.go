// Package http exposes the pick service over a JSON REST surface plus a
// websocket endpoint for live leaderboard updates.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"propbets-service/internal/app"
	"propbets-service/internal/domain"
	"propbets-service/internal/formstate"
)

type Handler struct {
	service *app.PickService
	drafts  formstate.DraftStore
}

func NewHandler(service *app.PickService, drafts formstate.DraftStore) *Handler {
	return &Handler{service: service, drafts: drafts}
}

// Register mounts every route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /questions", h.handleQuestions)
	mux.HandleFunc("GET /results", h.handleResults)
	mux.HandleFunc("GET /submissions/check", h.handleCheck)
	mux.HandleFunc("POST /submissions/submit", h.handleSubmit)
	mux.HandleFunc("GET /drafts/{name}", h.handleDraftGet)
	mux.HandleFunc("PUT /drafts/{name}", h.handleDraftPut)
	mux.HandleFunc("DELETE /drafts/{name}", h.handleDraftDelete)
	mux.HandleFunc("GET /ws/leaderboard", h.handleLeaderboardWS)
}

func (h *Handler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.Catalog(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to fetch questions")
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	lb, err := h.service.Leaderboard(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to compute results")
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{
		Results:        lb.Results,
		Categories:     categorySummaries(lb.Categories),
		TotalQuestions: lb.TotalQuestions,
	})
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	roster, err := h.service.Roster(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to fetch participants")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]app.RosterEntry{"participants": roster})
}

type submitRequest struct {
	ParticipantName string            `json:"participantName"`
	Answers         map[string]string `json:"answers"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := h.service.Submit(r.Context(), req.ParticipantName, req.Answers); err != nil {
		h.writeError(w, err, "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleDraftGet(w http.ResponseWriter, r *http.Request) {
	state, err := h.drafts.Load(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, err, "Failed to load draft")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) handleDraftPut(w http.ResponseWriter, r *http.Request) {
	var state formstate.State
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "Malformed draft payload")
		return
	}
	if err := h.drafts.Save(r.Context(), r.PathValue("name"), state); err != nil {
		h.writeError(w, err, "Failed to save draft")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleDraftDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.Delete(r.Context(), r.PathValue("name")); err != nil {
		h.writeError(w, err, "Failed to delete draft")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type resultsResponse struct {
	Results        []domain.ParticipantResult `json:"results"`
	Categories     []categorySummary          `json:"categories"`
	TotalQuestions int                        `json:"totalQuestions"`
}

type categorySummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Emoji string `json:"emoji"`
}

func categorySummaries(categories []domain.Category) []categorySummary {
	out := make([]categorySummary, 0, len(categories))
	for _, c := range categories {
		out = append(out, categorySummary{ID: c.ID, Title: c.Title, Emoji: c.Emoji})
	}
	return out
}

// writeError maps domain errors onto the response taxonomy: validation and
// conflicts are 400, unknown names are 404, everything else is a generic 500
// with the detail kept server-side.
func (h *Handler) writeError(w http.ResponseWriter, err error, generic string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeErrorJSON(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, domain.ErrAlreadySubmitted):
		writeErrorJSON(w, http.StatusBadRequest, "You have already submitted your picks")
	case errors.Is(err, domain.ErrParticipantNotFound):
		writeErrorJSON(w, http.StatusNotFound, "Participant not found")
	case errors.Is(err, domain.ErrDraftNotFound):
		writeErrorJSON(w, http.StatusNotFound, "Draft not found")
	default:
		log.Printf("request failed: %v", err)
		writeErrorJSON(w, http.StatusInternalServerError, generic)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
