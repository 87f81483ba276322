package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivam28kumar/cyber-suraksha/internal/model/chat"
)

// Registry resolves conversation identity for inbound chat turns. The
// front-end is the authority on identity continuity, so an unknown candidate
// ID is accepted as a new session rather than rejected. Resolution cannot
// fail.
type Registry interface {
	Resolve(ctx context.Context, candidateID string) chat.Session
}

// MemoryRegistry implements Registry with an in-process map, suitable for a
// single-instance deployment. Swap in a networked store behind the same
// interface if the gateway is ever scaled out.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	now      func() time.Time
}

// NewMemoryRegistry bootstraps an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]chat.Session),
		now:      time.Now,
	}
}

// Resolve returns the session for candidateID, creating it on first sight.
// A blank candidate gets a freshly generated UUID. LastActiveAt is bumped on
// every resolution; concurrent turns for the same session may interleave
// those updates, which is acceptable since turns do not depend on each other.
func (r *MemoryRegistry) Resolve(_ context.Context, candidateID string) chat.Session {
	id := strings.TrimSpace(candidateID)
	if id == "" {
		id = uuid.NewString()
	}

	now := r.now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		session = chat.Session{ID: id, CreatedAt: now}
	}
	session.LastActiveAt = now
	r.sessions[id] = session
	return session
}

// Get retrieves a session without touching its activity timestamp.
func (r *MemoryRegistry) Get(id string) (chat.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}
