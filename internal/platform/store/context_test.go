package store

import (
	"context"
	"testing"
)

// TestUserOf_SetAndGet sets a user id and retrieves it
func TestUserOf_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithUser(base, "u1")

	id, ok := UserOf(ctx)
	if !ok {
		t.Fatalf("UserOf not found")
	}
	if id != "u1" {
		t.Fatalf("UserOf mismatch got=%q want=%q", id, "u1")
	}
}

// TestUserOf_EmptyString reports false when empty string is stored
func TestUserOf_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithUser(context.Background(), "")

	id, ok := UserOf(ctx)
	if ok {
		t.Fatalf("UserOf ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("UserOf should be empty got=%q", id)
	}
}

// TestUserOf_NotPresent returns false on base context
func TestUserOf_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := UserOf(context.Background())
	if ok || id != "" {
		t.Fatalf("UserOf should be absent on base context")
	}
}

// TestUserOf_NoLeak ensures adding value returns a new ctx and base has no value
func TestUserOf_NoLeak(t *testing.T) {
	t.Parallel()

	base := context.Background()
	_ = WithUser(base, "u1")

	id, ok := UserOf(base)
	if ok || id != "" {
		t.Fatalf("base context should not have user value")
	}
}

// TestRequestID_SetAndGet sets a request id and retrieves it
func TestRequestID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithRequestID(base, "req-123")

	id, ok := RequestID(ctx)
	if !ok {
		t.Fatalf("RequestID not found")
	}
	if id != "req-123" {
		t.Fatalf("RequestID mismatch got=%q want=%q", id, "req-123")
	}
}

// TestRequestID_EmptyString reports false when empty string is stored
func TestRequestID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "")

	id, ok := RequestID(ctx)
	if ok {
		t.Fatalf("RequestID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("RequestID should be empty got=%q", id)
	}
}

// TestRequestID_NotPresent returns false on base context
func TestRequestID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := RequestID(context.Background())
	if ok || id != "" {
		t.Fatalf("RequestID should be absent on base context")
	}
}

// TestKeys_Isolation ensures user and request keys do not collide
func TestKeys_Isolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithUser(ctx, "u1")
	ctx = WithRequestID(ctx, "req-123")

	uid, uok := UserOf(ctx)
	req, rok := RequestID(ctx)

	if !uok || uid != "u1" {
		t.Fatalf("UserOf mismatch uok=%v uid=%q", uok, uid)
	}
	if !rok || req != "req-123" {
		t.Fatalf("RequestID mismatch rok=%v req=%q", rok, req)
	}
}
