package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_EmptyURL rejects a blank DSN before dialing
func TestOpen_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "   "})
	if err == nil {
		t.Fatalf("Open expected error for empty URL")
	}
}

// TestOpen_BadDSN surfaces parse failures with context
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "::not-a-dsn::"})
	if err == nil {
		t.Fatalf("Open expected error for malformed DSN")
	}
	if !strings.Contains(err.Error(), "ch:") {
		t.Fatalf("error should carry the ch prefix, got %v", err)
	}
}

// TestBuildClientInfo_Products includes process identity fields
func TestBuildClientInfo_Products(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("mondegreen", "api")
	if len(ci.Products) == 0 {
		t.Fatalf("expected products, got none")
	}
	if ci.Products[0].Name != "mondegreen" || ci.Products[0].Version != "api" {
		t.Fatalf("first product = %+v, want mondegreen/api", ci.Products[0])
	}

	var sawGo, sawHost bool
	for _, p := range ci.Products {
		switch p.Name {
		case "go":
			sawGo = p.Version != ""
		case "host":
			sawHost = true
		}
	}
	if !sawGo || !sawHost {
		t.Fatalf("expected go and host products, got %+v", ci.Products)
	}
}

// TestBuildClientInfo_DefaultName falls back when name is blank
func TestBuildClientInfo_DefaultName(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo("  ", "api")
	if ci.Products[0].Name != "mondegreen" {
		t.Fatalf("first product = %+v, want default name", ci.Products[0])
	}
}
