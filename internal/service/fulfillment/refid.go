package fulfillment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewReferenceID returns "<prefix>-<unix seconds>-<6 hex chars>", e.g.
// "CYB-1756600000-3FA2BC". The random suffix bounds the collision chance
// within one second at 1 in 16^6.
func NewReferenceID(prefix string, now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; keep the ID
		// well-formed anyway.
		return fmt.Sprintf("%s-%d-%06X", prefix, now.Unix(), now.Nanosecond()&0xFFFFFF)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now.Unix(), strings.ToUpper(hex.EncodeToString(buf)))
}
