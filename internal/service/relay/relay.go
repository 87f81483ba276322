// Package relay orchestrates one chat turn: resolve the session, enrich the
// utterance with temporal context, and forward it to the NLU service.
package relay

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Shivam28kumar/cyber-suraksha/internal/nlu"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/session"
)

// ErrEmptyMessage rejects input that trims to nothing. Validation happens
// before any session state is touched.
var ErrEmptyMessage = errors.New("message is empty")

// User-facing copy for the two non-success outcomes.
const (
	EmptyMessagePrompt = "Please enter a message."
	DegradedReply      = "I'm having trouble processing your request. Please try again."
)

// Service relays chat turns under a stable session identity.
type Service struct {
	registry session.Registry
	client   nlu.Client
	now      func() time.Time
}

// NewService wires the relay to its collaborators.
func NewService(registry session.Registry, client nlu.Client) *Service {
	return &Service{registry: registry, client: client, now: time.Now}
}

// Result carries the outcome of one turn back to the HTTP layer. SessionID
// is always the resolved session's ID, including on the degraded path, so
// the caller can retry the same conversation after a transient outage.
type Result struct {
	SessionID string
	Reply     string
	Degraded  bool
}

// Respond handles one turn. The only error it returns is ErrEmptyMessage;
// NLU failures degrade to a fixed reply rather than propagating.
func (s *Service) Respond(ctx context.Context, candidateSessionID, message string) (Result, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return Result{}, ErrEmptyMessage
	}

	sess := s.registry.Resolve(ctx, candidateSessionID)
	enriched := Enrich(text, s.now())

	reply, err := s.client.DetectIntent(ctx, sess.ID, enriched)
	if err != nil {
		if errors.Is(err, nlu.ErrAuthFailed) {
			log.Printf("[relay] nlu credential failure for session=%s: %v", sess.ID, err)
		} else {
			log.Printf("[relay] nlu unavailable for session=%s: %v", sess.ID, err)
		}
		return Result{SessionID: sess.ID, Reply: DegradedReply, Degraded: true}, nil
	}

	return Result{SessionID: sess.ID, Reply: reply}, nil
}
