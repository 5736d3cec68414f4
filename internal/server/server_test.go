package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/db"
	"github.com/folio-dev/folio/internal/portfolio"
	"github.com/folio-dev/folio/internal/site"
	"github.com/folio-dev/folio/internal/track"
)

func testData() portfolio.Data {
	return portfolio.Data{
		Personal: portfolio.PersonalInfo{
			Name:    "Jane Doe",
			Title:   "Engineer",
			Bio:     "Builds things.",
			Summary: "A builder of things.",
			Contact: portfolio.ContactInfo{Email: "jane@example.com"},
		},
		Experience: []portfolio.Experience{
			{ID: "exp-1", Company: "Acme", Title: "Engineer", Duration: "2020 - Present"},
		},
		Projects: []portfolio.Project{
			{ID: "p1", Title: "Pipeline", Description: "d", Tools: []string{"Go", "SQLite"}, Outcomes: []string{"shipped"}},
			{ID: "p2", Title: "Dashboard", Description: "d", Tools: []string{"React"}, Outcomes: []string{"shipped"}},
		},
		Skills: []portfolio.SkillCategory{
			{Category: "Cloud", Skills: []portfolio.Skill{{Name: "AWS"}, {Name: "Azure"}}},
			{Category: "Languages", Skills: []portfolio.Skill{{Name: "Go"}}},
		},
	}
}

func newTestServer(t *testing.T, tracking bool) *Server {
	t.Helper()

	raw, err := json.Marshal(testData())
	if err != nil {
		t.Fatal(err)
	}
	dataPath := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(dataPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	store := portfolio.NewStore(dataPath)
	outDir := t.TempDir()
	builder, err := site.NewBuilder(store, outDir, "light")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if _, err := builder.Build(context.Background()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	var tracker *track.Store
	if tracking {
		d, err := db.OpenMemory()
		if err != nil {
			t.Fatalf("OpenMemory: %v", err)
		}
		t.Cleanup(func() { d.Close() })
		tracker, err = track.NewStore(d)
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
	}

	return New(config.ServerConfig{Port: 0, Tracking: tracking}, builder, tracker, outDir)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, false)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestServesBuiltSite(t *testing.T) {
	s := newTestServer(t, false)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Jane Doe") {
		t.Error("index page should carry the portfolio content")
	}
}

func TestProjectsFragment(t *testing.T) {
	s := newTestServer(t, false)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fragments/projects?filter=go", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp fragmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
	if !strings.Contains(resp.HTML, "Pipeline") || strings.Contains(resp.HTML, "Dashboard") {
		t.Error("filter=go should keep only the Go project")
	}
}

func TestSkillsFragmentQuery(t *testing.T) {
	s := newTestServer(t, false)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fragments/skills?q=aws", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp fragmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
	if !strings.Contains(resp.HTML, "AWS") || strings.Contains(resp.HTML, "Azure") {
		t.Error("q=aws should keep only the AWS skill")
	}
}

func TestSkillsFragmentCategory(t *testing.T) {
	s := newTestServer(t, false)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fragments/skills?category=languages", nil))

	var resp fragmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 || !strings.Contains(resp.HTML, "Go") || strings.Contains(resp.HTML, "AWS") {
		t.Errorf("category filter should keep only Languages, got count=%d", resp.Count)
	}
}

func TestTrackClick(t *testing.T) {
	s := newTestServer(t, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(`{"channel":"email"}`))
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(`{"channel":"fax"}`))
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown channel status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}
	var stats track.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.ClicksByChannel["email"] != 1 {
		t.Errorf("clicks = %v", stats.ClicksByChannel)
	}
}

func TestTrackDisabled(t *testing.T) {
	s := newTestServer(t, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(`{"channel":"email"}`))
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("track without tracker should be a no-op, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("stats without tracker status = %d", rec.Code)
	}
}

func TestVisitTrackingRespectsDNT(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	s.Router().ServeHTTP(httptest.NewRecorder(), req)

	s.Router().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	stats, err := s.tracker.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisits != 1 {
		t.Errorf("visits = %d, want 1 (DNT request must not be recorded)", stats.TotalVisits)
	}
}

func TestHubBroadcastOnBuild(t *testing.T) {
	s := newTestServer(t, false)

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	// No clients connected: broadcast must not panic or block.
	s.ReloadHub().Broadcast("reload")
	if got := s.ReloadHub().Clients(); got != 0 {
		t.Errorf("clients = %d, want 0", got)
	}
}
