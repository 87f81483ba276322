package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Shivam28kumar/cyber-suraksha/internal/service/session"
)

func TestResolveKnownCandidate(t *testing.T) {
	registry := session.NewMemoryRegistry()
	ctx := context.Background()

	first := registry.Resolve(ctx, "tab-1")
	if first.ID != "tab-1" {
		t.Fatalf("unexpected session ID: got %s want tab-1", first.ID)
	}
	if first.CreatedAt.IsZero() || first.LastActiveAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	second := registry.Resolve(ctx, "tab-1")
	if second.ID != first.ID {
		t.Fatalf("session identity not preserved: got %s want %s", second.ID, first.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("CreatedAt changed on re-resolution")
	}
	if second.LastActiveAt.Before(first.LastActiveAt) {
		t.Fatal("LastActiveAt went backwards")
	}
}

func TestResolveGeneratesIDWhenAbsent(t *testing.T) {
	registry := session.NewMemoryRegistry()
	ctx := context.Background()

	generated := registry.Resolve(ctx, "")
	if generated.ID == "" {
		t.Fatal("expected a generated session ID")
	}
	if _, err := uuid.Parse(generated.ID); err != nil {
		t.Fatalf("generated ID is not a UUID: %v", err)
	}

	// The generated ID is reusable on subsequent turns.
	again := registry.Resolve(ctx, generated.ID)
	if again.ID != generated.ID {
		t.Fatalf("generated ID not honored: got %s want %s", again.ID, generated.ID)
	}
}

func TestResolveBlankCandidatesGetDistinctSessions(t *testing.T) {
	registry := session.NewMemoryRegistry()
	ctx := context.Background()

	a := registry.Resolve(ctx, "")
	b := registry.Resolve(ctx, "  ")
	if a.ID == b.ID {
		t.Fatalf("two anonymous turns shared session %s", a.ID)
	}
}

func TestGetDoesNotTouchActivity(t *testing.T) {
	registry := session.NewMemoryRegistry()
	ctx := context.Background()

	created := registry.Resolve(ctx, "probe")
	got, ok := registry.Get("probe")
	if !ok {
		t.Fatal("expected session to exist")
	}
	if !got.LastActiveAt.Equal(created.LastActiveAt) {
		t.Fatal("Get must not bump LastActiveAt")
	}

	if _, ok := registry.Get("missing"); ok {
		t.Fatal("expected miss for unknown session")
	}
}
