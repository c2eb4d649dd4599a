package store

import (
	"context"
	"errors"
	"testing"
)

// fakeChRows satisfies ch.Rows for adapter tests
type fakeChRows struct {
	nexts  int
	closed bool
	err    error
	cols   []string
}

func (f *fakeChRows) Next() bool        { f.nexts++; return false }
func (f *fakeChRows) Scan(...any) error { return nil }
func (f *fakeChRows) Err() error        { return f.err }
func (f *fakeChRows) Close() error      { f.closed = true; return nil }
func (f *fakeChRows) Columns() []string { return f.cols }

// TestInsert_RejectsUnsupportedShape ensures the adapter guards the row shape
// before touching the driver
func TestInsert_RejectsUnsupportedShape(t *testing.T) {
	t.Parallel()

	a := &clickhouseAdapter{}
	err := a.Insert(context.Background(), "some_table", struct{}{})
	if err == nil {
		t.Fatalf("Insert expected error for non [][]any data")
	}
}

// TestRowsAdapter_Passthrough verifies iteration, error, columns, and close
// are forwarded to the underlying rows
func TestRowsAdapter_Passthrough(t *testing.T) {
	t.Parallel()

	f := &fakeChRows{err: errors.New("boom"), cols: []string{"a", "b"}}
	r := &rowsAdapter{r: f}

	if r.Next() {
		t.Fatalf("Next should report false")
	}
	if f.nexts != 1 {
		t.Fatalf("Next not forwarded, calls=%d", f.nexts)
	}
	if err := r.Scan(new(int)); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if r.Err() == nil {
		t.Fatalf("Err should forward the underlying error")
	}
	if got := r.Columns(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("Columns = %v, want [a b]", got)
	}
	r.Close()
	if !f.closed {
		t.Fatalf("Close not forwarded")
	}
}
