package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rappel-app/rappel/internal/responder"
)

type ParseMessageRequest struct {
	Message string `json:"message"`
}

type ChatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []responder.Turn `json:"conversation_history"`
}

func (s *Server) parseMessage(w http.ResponseWriter, r *http.Request) {
	var req ParseMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("corps de requête invalide: %v", err))
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message est requis")
		return
	}

	parsed, err := s.parser.Extract(r.Context(), req.Message, time.Now())
	if err != nil {
		s.logger.Error("failed to parse message", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors du parsing: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, parsed)
}

// chat never surfaces an internal error: the responder falls back to a fixed
// apologetic reply on any failure. Only an undecodable body is a 400.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("corps de requête invalide: %v", err))
		return
	}

	resp := s.chatter.Respond(r.Context(), req.Message, req.ConversationHistory)
	writeJSON(w, http.StatusOK, resp)
}
