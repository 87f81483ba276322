package relay

import (
	"fmt"
	"time"
)

// enrichDateLayout renders "Month Day, Year", e.g. "August 31, 2026".
const enrichDateLayout = "January 2, 2006"

// Enrich prefixes the raw user message with a system-context instruction
// carrying the current date. The NLU service has no reliable wall clock, so
// grounding every turn keeps relative dates ("yesterday", "last week") from
// being resolved against the wrong day.
func Enrich(raw string, now time.Time) string {
	return fmt.Sprintf(
		"System instruction: For context, the current date is %s. User message: %s",
		now.Format(enrichDateLayout), raw,
	)
}
