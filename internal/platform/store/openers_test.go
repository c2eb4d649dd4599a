package store

import (
	"context"
	"testing"
)

// TestOpenCH_EmptyURL rejects a blank DSN before dialing
func TestOpenCH_EmptyURL(t *testing.T) {
	t.Parallel()

	cfg := Config{CH: CHConfig{Enabled: true}}
	c, err := openCH(context.Background(), cfg, nil)
	if err == nil {
		t.Fatalf("expected error for empty CH URL, got %T", c)
	}
}

// TestOpenPG_BadURL surfaces pool construction failures
func TestOpenPG_BadURL(t *testing.T) {
	t.Parallel()

	cfg := Config{PG: PGConfig{Enabled: true, URL: "://bad"}}
	s := &Store{}
	txr, err := openPG(context.Background(), cfg, s)
	if err == nil {
		t.Fatalf("expected error for bad PG URL, got %T", txr)
	}
}
