// Package nlu wraps the external natural-language-understanding service
// behind a narrow capability interface so the relay never sees transport
// details and tests can substitute fakes.
package nlu

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds decided once at the adapter boundary. The relay degrades to a
// fallback reply on either; they are kept distinct so operators can tell a
// credential problem from an outage in the logs.
var (
	ErrUnavailable = errors.New("nlu service unavailable")
	ErrAuthFailed  = errors.New("nlu credential refresh failed")
)

// FallbackReply is returned when the service responds without any text.
const FallbackReply = "I'm sorry, I could not process a response."

// Client submits one enriched utterance for a session and returns the
// generated reply text. A single attempt is made per turn; callers do not
// retry.
type Client interface {
	DetectIntent(ctx context.Context, sessionID, text string) (string, error)
}

// Disabled returns a Client that always reports the service as unavailable.
// Used when credentials are not configured so the gateway still serves
// degraded replies instead of refusing to start.
func Disabled() Client {
	return disabledClient{}
}

type disabledClient struct{}

func (disabledClient) DetectIntent(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%w: credentials not configured", ErrUnavailable)
}
