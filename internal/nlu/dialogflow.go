package nlu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	dialogflow "google.golang.org/api/dialogflow/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DialogflowClient reaches the Dialogflow ES detectIntent endpoint. The
// underlying Google client refreshes its service-account token as needed;
// refresh failures surface here as ErrAuthFailed.
type DialogflowClient struct {
	svc          *dialogflow.Service
	projectID    string
	languageCode string
	timeout      time.Duration
}

// NewDialogflowClient builds the adapter from a service-account key.
func NewDialogflowClient(ctx context.Context, credentialsJSON []byte, projectID, languageCode string, timeout time.Duration) (*DialogflowClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("dialogflow project id is required")
	}

	svc, err := dialogflow.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(dialogflow.CloudPlatformScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create dialogflow service: %w", err)
	}

	return &DialogflowClient{
		svc:          svc,
		projectID:    projectID,
		languageCode: languageCode,
		timeout:      timeout,
	}, nil
}

// DetectIntent submits one utterance for the session and returns the reply
// text. The call is bounded by the configured timeout.
func (c *DialogflowClient) DetectIntent(ctx context.Context, sessionID, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sessionPath := fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sessionID)
	req := &dialogflow.GoogleCloudDialogflowV2DetectIntentRequest{
		QueryInput: &dialogflow.GoogleCloudDialogflowV2QueryInput{
			Text: &dialogflow.GoogleCloudDialogflowV2TextInput{
				Text:         text,
				LanguageCode: c.languageCode,
			},
		},
	}

	resp, err := c.svc.Projects.Agent.Sessions.DetectIntent(sessionPath, req).Context(ctx).Do()
	if err != nil {
		return "", classify(err)
	}
	return joinReply(resp.QueryResult), nil
}

// classify maps transport and credential failures onto the adapter's error
// kinds.
func classify(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// joinReply flattens the response's text fragments into one reply string:
// lines within a fragment are space-joined, then fragments are space-joined.
// An empty result yields the fixed fallback.
func joinReply(qr *dialogflow.GoogleCloudDialogflowV2QueryResult) string {
	if qr == nil {
		return FallbackReply
	}

	if text := strings.TrimSpace(qr.FulfillmentText); text != "" {
		return text
	}

	var fragments []string
	for _, msg := range qr.FulfillmentMessages {
		if msg == nil || msg.Text == nil {
			continue
		}
		if joined := strings.TrimSpace(strings.Join(msg.Text.Text, " ")); joined != "" {
			fragments = append(fragments, joined)
		}
	}
	if len(fragments) == 0 {
		return FallbackReply
	}
	return strings.Join(fragments, " ")
}
