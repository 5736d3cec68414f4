package track

import (
	"context"
	"testing"

	"github.com/folio-dev/folio/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	s, err := NewStore(d)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestHashIPStableAndAnonymous(t *testing.T) {
	s := newTestStore(t)

	a := s.HashIP("203.0.113.7")
	b := s.HashIP("203.0.113.7")
	if a != b {
		t.Errorf("same IP hashed differently: %s vs %s", a, b)
	}
	if a == "203.0.113.7" {
		t.Error("hash must not equal the raw IP")
	}
	if len(a) != 16 {
		t.Errorf("hash length = %d, want 16", len(a))
	}
	if c := s.HashIP("203.0.113.8"); c == a {
		t.Error("different IPs produced the same hash")
	}
}

func TestRecordClick(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.RecordClick(ctx, "email", "203.0.113.7"); err != nil {
		t.Fatalf("RecordClick: %v", err)
	}
	if err := s.RecordClick(ctx, "github", "203.0.113.7"); err != nil {
		t.Fatalf("RecordClick: %v", err)
	}
	if err := s.RecordClick(ctx, "fax", "203.0.113.7"); err == nil {
		t.Error("expected error for unknown channel")
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.ClicksByChannel["email"] != 1 || st.ClicksByChannel["github"] != 1 {
		t.Errorf("clicks by channel = %v", st.ClicksByChannel)
	}
	if _, ok := st.ClicksByChannel["fax"]; ok {
		t.Error("rejected channel must not be counted")
	}
}

func TestRecordVisitAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, v := range []struct{ ip, path string }{
		{"203.0.113.7", "/"},
		{"203.0.113.7", "/"},
		{"203.0.113.9", "/"},
	} {
		if err := s.RecordVisit(ctx, v.ip, "test-agent", v.path); err != nil {
			t.Fatalf("RecordVisit: %v", err)
		}
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalVisits != 3 {
		t.Errorf("TotalVisits = %d, want 3", st.TotalVisits)
	}
	if st.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", st.UniqueVisitors)
	}
	if st.VisitsToday != 3 {
		t.Errorf("VisitsToday = %d, want 3", st.VisitsToday)
	}
}
