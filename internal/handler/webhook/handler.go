package webhook

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivam28kumar/cyber-suraksha/internal/model/report"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/fulfillment"
	"github.com/Shivam28kumar/cyber-suraksha/pkg/utils"
)

// Handler receives fulfillment callbacks from the NLU platform.
type Handler struct {
	pipeline *fulfillment.Pipeline
}

// New creates the webhook handler.
func New(pipeline *fulfillment.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// RegisterRoutes registers the fulfillment endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/webhook", h.handleWebhook)
}

// handleWebhook always answers 200 with a fulfillment envelope: the calling
// platform treats HTTP errors as fulfillment outages, so even a malformed
// payload gets the generic acknowledgment.
func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req report.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[webhook] malformed callback payload: %v", err)
		utils.RespondJSON(w, http.StatusOK, report.NewTextResponse(fulfillment.AcknowledgmentReply))
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.pipeline.Handle(r.Context(), &req))
}
