// Package fulfillment turns terminal-intent callbacks into persisted
// complaint rows and user-facing confirmation text.
package fulfillment

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Shivam28kumar/cyber-suraksha/internal/model/report"
	"github.com/Shivam28kumar/cyber-suraksha/internal/sheets"
)

// AcknowledgmentReply answers every callback whose intent is not the
// terminal submit-report intent, including malformed payloads.
const AcknowledgmentReply = "I can help you report cybercrime incidents. Please provide details about what happened."

// Pipeline handles fulfillment callbacks from the NLU platform.
type Pipeline struct {
	store          sheets.RecordStore
	terminalIntent string
	keyword        string
	idPrefix       string
	now            func() time.Time
}

// NewPipeline wires the pipeline to its record store. An intent is terminal
// when it equals terminalIntent exactly or contains keyword
// case-insensitively.
func NewPipeline(store sheets.RecordStore, terminalIntent, keyword, idPrefix string) *Pipeline {
	return &Pipeline{
		store:          store,
		terminalIntent: terminalIntent,
		keyword:        strings.ToLower(keyword),
		idPrefix:       idPrefix,
		now:            time.Now,
	}
}

// Handle processes one callback and returns the fulfillment envelope. The
// reference ID is generated before the persistence attempt and is embedded
// in the response text whether or not the append succeeds; it is the only
// handle the caller has to recover the report.
func (p *Pipeline) Handle(ctx context.Context, req *report.WebhookRequest) report.WebhookResponse {
	intent := req.IntentName()
	if !p.isTerminal(intent) {
		return report.NewTextResponse(AcknowledgmentReply)
	}

	now := p.now()
	complaint := report.NewComplaint(NewReferenceID(p.idPrefix, now), now, req.ParameterMap())

	if err := p.store.Append(ctx, complaint.Row()); err != nil {
		complaint.Status = report.StatusPersistFailed
		log.Printf("[fulfillment] persist failed for complaint=%s: %v", complaint.ID, err)
		return report.NewTextResponse(persistFailedText(complaint))
	}

	log.Printf("[fulfillment] complaint %s appended to record store", complaint.ID)
	return report.NewTextResponse(confirmationText(complaint))
}

// isTerminal applies the configured classification rule. Known to be
// permissive: any intent name containing the keyword matches.
func (p *Pipeline) isTerminal(intent string) bool {
	if intent == "" {
		return false
	}
	if intent == p.terminalIntent {
		return true
	}
	return p.keyword != "" && strings.Contains(strings.ToLower(intent), p.keyword)
}

func confirmationText(c *report.Complaint) string {
	return fmt.Sprintf(
		"Thank you! Your complaint has been registered successfully.\n\n"+
			"🔍 **Complaint ID:** %s\n"+
			"📅 **Date:** %s\n"+
			"📋 **Status:** Under Review\n\n"+
			"You will receive updates on your registered email address. "+
			"Please save your Complaint ID for future reference.",
		c.ID, c.SubmittedAt.Format(report.TimestampLayout),
	)
}

func persistFailedText(c *report.Complaint) string {
	return fmt.Sprintf(
		"Your complaint has been registered with ID: %s. "+
			"However, there was an issue saving to our database. "+
			"Please contact support with this ID.",
		c.ID,
	)
}
