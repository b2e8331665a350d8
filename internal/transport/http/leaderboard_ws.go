package http

import (
	"log"
	"net/http"

	"propbets-service/internal/domain"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type wsMessage struct {
	Type    string             `json:"type"`
	Payload domain.Leaderboard `json:"payload"`
}

// handleLeaderboardWS streams the leaderboard: the current snapshot on
// connect, then a push after every successful submission.
func (h *Handler) handleLeaderboardWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context())
	if err != nil {
		_ = conn.WriteJSON(map[string]string{"type": "error", "error": "Failed to compute results"})
		return
	}
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Reads are discarded; a read error means the client went away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case lb, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(wsMessage{Type: "leaderboard", Payload: lb}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
