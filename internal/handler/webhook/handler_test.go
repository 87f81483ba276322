package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Shivam28kumar/cyber-suraksha/internal/service/fulfillment"
	"github.com/Shivam28kumar/cyber-suraksha/internal/sheets"
)

type fakeStore struct {
	rows [][]interface{}
	err  error
}

func (f *fakeStore) Append(_ context.Context, row []interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

func setupRouter(store sheets.RecordStore) *chi.Mux {
	pipeline := fulfillment.NewPipeline(store, "SubmitComplaint", "complaint", "CYB")
	handler := New(pipeline)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postWebhook(t *testing.T, r http.Handler, body []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestWebhookTerminalIntent(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	body := []byte(`{
		"queryResult": {
			"intent": {"displayName": "SubmitComplaint"},
			"parameters": {
				"person-name": "Asha Verma",
				"email": "asha@example.com",
				"crime-type": "phishing",
				"description": "Fake bank portal"
			}
		}
	}`)

	resp, decoded := postWebhook(t, r, body)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if len(store.rows) != 1 {
		t.Fatalf("expected exactly one appended row, got %d", len(store.rows))
	}

	text, _ := decoded["fulfillmentText"].(string)
	if !strings.Contains(text, "CYB-") {
		t.Fatalf("confirmation missing reference ID: %q", text)
	}
	if !strings.Contains(text, "registered successfully") {
		t.Fatalf("unexpected confirmation copy: %q", text)
	}
}

func TestWebhookUnrelatedIntent(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	body := []byte(`{"queryResult": {"intent": {"displayName": "Default Welcome Intent"}}}`)
	resp, decoded := postWebhook(t, r, body)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if len(store.rows) != 0 {
		t.Fatalf("unrelated intent must not persist, got %d rows", len(store.rows))
	}
	if decoded["fulfillmentText"] != fulfillment.AcknowledgmentReply {
		t.Fatalf("expected generic acknowledgment, got %v", decoded["fulfillmentText"])
	}
}

func TestWebhookPersistFailureStillReturnsID(t *testing.T) {
	store := &fakeStore{err: sheets.ErrUnavailable}
	r := setupRouter(store)

	body := []byte(`{"queryResult": {"intent": {"displayName": "SubmitComplaint"}, "parameters": {}}}`)
	resp, decoded := postWebhook(t, r, body)

	// The callback never fails at the HTTP level; the ID is the user's only
	// handle to recover the report.
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	text, _ := decoded["fulfillmentText"].(string)
	if !strings.Contains(text, "CYB-") {
		t.Fatalf("failure response missing reference ID: %q", text)
	}
	if !strings.Contains(text, "contact support") {
		t.Fatalf("failure response missing support guidance: %q", text)
	}
}

func TestWebhookMalformedPayload(t *testing.T) {
	store := &fakeStore{}
	r := setupRouter(store)

	resp, decoded := postWebhook(t, r, []byte("][ not json"))

	if resp.Code != http.StatusOK {
		t.Fatalf("malformed callback must not error, got %d", resp.Code)
	}
	if decoded["fulfillmentText"] != fulfillment.AcknowledgmentReply {
		t.Fatalf("expected generic acknowledgment, got %v", decoded["fulfillmentText"])
	}
	if len(store.rows) != 0 {
		t.Fatal("malformed callback must not persist anything")
	}
}
