package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type chatReply struct {
	Reply string `json:"reply"`
}

// handleChat accepts one message per request and returns one reply. The
// conversation field keys the dialogue session; an anonymous sender shares
// the "default" conversation.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg := strings.TrimSpace(r.Form.Get("message"))
	if msg == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	conversation := strings.TrimSpace(r.Form.Get("conversation"))
	if conversation == "" {
		conversation = "default"
	}

	reply, err := s.engine.HandleMessage(r.Context(), conversation, msg)
	if err != nil {
		// Ledger I/O failures land here; the turn fails, the session does not.
		slog.ErrorContext(r.Context(), "Failed to handle message",
			"error", err,
			"conversation", conversation)
		http.Error(w, "ledger unavailable, please try again", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(chatReply{Reply: reply}); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode reply", "error", err)
	}
}
