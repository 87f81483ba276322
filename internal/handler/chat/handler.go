package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Shivam28kumar/cyber-suraksha/internal/service/relay"
	"github.com/Shivam28kumar/cyber-suraksha/pkg/utils"
)

// Handler exposes the chat relay over HTTP.
type Handler struct {
	relay *relay.Service
}

// New creates the chat handler.
func New(relaySvc *relay.Service) *Handler {
	return &Handler{relay: relaySvc}
}

// RegisterRoutes registers the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// handleChat relays one turn. Field names are fixed by the existing
// front-end contract.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.relay.Respond(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		// Only empty input reaches here; the session is untouched, so the
		// candidate ID is echoed back as-is.
		utils.RespondJSON(w, http.StatusBadRequest, chatResponse{
			Response:  relay.EmptyMessagePrompt,
			SessionID: strings.TrimSpace(payload.SessionID),
		})
		return
	}

	status := http.StatusOK
	if result.Degraded {
		status = http.StatusServiceUnavailable
	}
	utils.RespondJSON(w, status, chatResponse{
		Response:  result.Reply,
		SessionID: result.SessionID,
	})
}
