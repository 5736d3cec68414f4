package site

import (
	"errors"
	"strings"
	"testing"

	"github.com/folio-dev/folio/internal/portfolio"
)

func newTestRegistry() *Registry {
	return NewRegistry(portfolio.NewStore("unused"), []string{"alpha", "beta", "gamma"})
}

func TestRegistryFailureIsolation(t *testing.T) {
	r := newTestRegistry()
	r.Register("alpha", "alpha", func(*portfolio.Store) (string, error) {
		return "<p>alpha</p>", nil
	})
	r.Register("beta", "beta", func(*portfolio.Store) (string, error) {
		return "", errors.New("beta renderer exploded")
	})
	r.Register("gamma", "gamma", func(*portfolio.Store) (string, error) {
		return "<p>gamma</p>", nil
	})

	results := r.RefreshAll()
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("healthy sections should not be affected by beta's failure")
	}
	if results[1].Err == nil {
		t.Error("beta's failure should be carried in its result")
	}

	// Exactly one section-error block, in place of the failed section.
	errorBlocks := 0
	for _, name := range r.Names() {
		if strings.Contains(r.HTML(name), "section-error") {
			errorBlocks++
		}
	}
	if errorBlocks != 1 {
		t.Errorf("section-error blocks = %d, want exactly 1", errorBlocks)
	}
	if !strings.Contains(r.HTML("beta"), "beta") {
		t.Error("error block should name the failed section")
	}

	// Other sections still flagged populated.
	for _, name := range []string{"alpha", "gamma"} {
		st, ok := r.Get(name)
		if !ok || !st.Populated {
			t.Errorf("section %s should be populated despite beta's failure", name)
		}
	}
	if st, _ := r.Get("beta"); st.Populated {
		t.Error("beta should not be flagged populated")
	}
}

func TestRegistryMissingAnchorIsNonRenderable(t *testing.T) {
	r := newTestRegistry()
	r.Register("orphan", "no-such-anchor", func(*portfolio.Store) (string, error) {
		t.Error("populate must not run for a non-renderable component")
		return "", nil
	})

	st, ok := r.Get("orphan")
	if !ok {
		t.Fatal("non-renderable components stay registered")
	}
	if st.Renderable {
		t.Error("component with a missing anchor should be non-renderable")
	}
	if r.Refresh("orphan") {
		t.Error("refreshing a non-renderable component should report failure")
	}
}

func TestRegistryRefresh(t *testing.T) {
	r := newTestRegistry()
	calls := 0
	r.Register("alpha", "alpha", func(*portfolio.Store) (string, error) {
		calls++
		return "<p>ok</p>", nil
	})

	if !r.Refresh("alpha") {
		t.Error("refresh of a healthy component should succeed")
	}
	if !r.Refresh("alpha") {
		t.Error("refresh should be repeatable")
	}
	if calls != 2 {
		t.Errorf("populate calls = %d, want 2", calls)
	}
	if r.Refresh("missing") {
		t.Error("refresh of an unknown component should fail")
	}
}

func TestRegistryRefreshAllIndependentOfPriorState(t *testing.T) {
	r := newTestRegistry()
	failing := true
	r.Register("alpha", "alpha", func(*portfolio.Store) (string, error) {
		if failing {
			return "", errors.New("first pass fails")
		}
		return "<p>recovered</p>", nil
	})

	r.RefreshAll()
	if st, _ := r.Get("alpha"); st.Populated {
		t.Fatal("first pass should have failed")
	}

	failing = false
	r.RefreshAll()
	st, _ := r.Get("alpha")
	if !st.Populated {
		t.Error("second pass should re-populate a previously errored section")
	}
	if strings.Contains(r.HTML("alpha"), "section-error") {
		t.Error("recovered section should replace its error block")
	}
}

func TestRegistryAllSnapshotOrder(t *testing.T) {
	r := newTestRegistry()
	r.Register("beta", "beta", func(*portfolio.Store) (string, error) { return "b", nil })
	r.Register("alpha", "alpha", func(*portfolio.Store) (string, error) { return "a", nil })

	all := r.All()
	if len(all) != 2 || all[0].Name != "beta" || all[1].Name != "alpha" {
		t.Errorf("All() should preserve registration order, got %v", all)
	}
}
