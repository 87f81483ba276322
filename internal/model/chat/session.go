package chat

import "time"

// Session captures one ongoing conversation between a caller and the assistant.
// The ID is the only stable handle; callers echo it back on every turn.
type Session struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}
