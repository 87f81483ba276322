package report

import "strings"

// WebhookRequest mirrors the Dialogflow fulfillment callback payload. Newer
// platform versions nest everything under queryResult; older ones send the
// intent and parameters at the top level, so both layouts are accepted.
type WebhookRequest struct {
	QueryResult *QueryResult           `json:"queryResult"`
	Intent      *Intent                `json:"intent"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// QueryResult is the nested classification result.
type QueryResult struct {
	Intent     *Intent                `json:"intent"`
	Parameters map[string]interface{} `json:"parameters"`
}

// Intent names the classified conversational intent.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// IntentName returns the declared intent display name, or "" when the
// payload carries none.
func (r *WebhookRequest) IntentName() string {
	if r.QueryResult != nil && r.QueryResult.Intent != nil {
		return strings.TrimSpace(r.QueryResult.Intent.DisplayName)
	}
	if r.Intent != nil {
		return strings.TrimSpace(r.Intent.DisplayName)
	}
	return ""
}

// ParameterMap returns the extracted parameters regardless of payload layout.
// A nil map is fine for callers; lookups simply miss.
func (r *WebhookRequest) ParameterMap() map[string]interface{} {
	if r.QueryResult != nil && r.QueryResult.Parameters != nil {
		return r.QueryResult.Parameters
	}
	return r.Parameters
}

// WebhookResponse is the fulfillment envelope returned to the platform.
type WebhookResponse struct {
	FulfillmentText     string               `json:"fulfillmentText"`
	FulfillmentMessages []FulfillmentMessage `json:"fulfillmentMessages,omitempty"`
}

// FulfillmentMessage wraps one response fragment.
type FulfillmentMessage struct {
	Text *TextMessage `json:"text,omitempty"`
}

// TextMessage carries the fragment's text lines.
type TextMessage struct {
	Text []string `json:"text"`
}

// NewTextResponse builds a single-fragment fulfillment envelope.
func NewTextResponse(text string) WebhookResponse {
	return WebhookResponse{
		FulfillmentText: text,
		FulfillmentMessages: []FulfillmentMessage{
			{Text: &TextMessage{Text: []string{text}}},
		},
	}
}
