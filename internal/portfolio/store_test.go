package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func writeDataFile(t *testing.T, data Data) string {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeDataFile(t, validData())
	s := NewStore(path)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.UsedFallback() {
		t.Error("should not use fallback for a readable file")
	}
	if got := s.PersonalInfo().Name; got != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", got)
	}
	if len(s.ValidationErrors()) != 0 {
		t.Errorf("validation errors = %v, want none", s.ValidationErrors())
	}
}

func TestAccessorsBeforeLoad(t *testing.T) {
	s := NewStore("nowhere.json")
	if s.Loaded() {
		t.Error("Loaded should be false before Load")
	}
	if got := s.PersonalInfo(); got.Name != "" {
		t.Errorf("PersonalInfo before load = %+v, want zero value", got)
	}
	if got := s.Projects(); len(got) != 0 {
		t.Errorf("Projects before load = %v, want empty", got)
	}
	if got := s.Experience(); len(got) != 0 {
		t.Errorf("Experience before load = %v, want empty", got)
	}
	if got := s.Skills(); len(got) != 0 {
		t.Errorf("Skills before load = %v, want empty", got)
	}
}

func TestLoadFallbackAfterRepeatedFailures(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewStore(srv.URL + "/portfolio.json")
	err := s.Load(context.Background())
	if err == nil {
		t.Error("Load should report the fetch failure")
	}

	if got := attempts.Load(); got != maxAttempts {
		t.Errorf("attempts = %d, want %d", got, maxAttempts)
	}
	if !s.UsedFallback() {
		t.Error("store should have installed the fallback dataset")
	}
	if !s.Loaded() {
		t.Error("store should still be loaded after fallback")
	}
	if got, want := s.PersonalInfo().Name, FallbackData().Personal.Name; got != want {
		t.Errorf("fallback name = %q, want %q", got, want)
	}
}

func TestLoadRecoversAfterTransientFailures(t *testing.T) {
	raw, err := json.Marshal(validData())
	if err != nil {
		t.Fatal(err)
	}

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			http.Error(w, "not yet", http.StatusServiceUnavailable)
			return
		}
		w.Write(raw)
	}))
	defer srv.Close()

	s := NewStore(srv.URL + "/portfolio.json")
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.UsedFallback() {
		t.Error("should not fall back when the final attempt succeeds")
	}
	if got := s.PersonalInfo().Name; got != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", got)
	}
}

func TestLoadParseFailureFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	if err := s.Load(context.Background()); err == nil {
		t.Error("Load should report the parse failure")
	}
	if !s.UsedFallback() {
		t.Error("parse failure should install the fallback dataset")
	}
}

func TestLoadLenientOnInvalidData(t *testing.T) {
	d := validData()
	d.Personal.Contact.Email = "broken"
	path := writeDataFile(t, d)

	s := NewStore(path)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.UsedFallback() {
		t.Error("validation failure must not trigger fallback")
	}
	if len(s.ValidationErrors()) == 0 {
		t.Error("validation errors should be retained for inspection")
	}
	// The invalid data is still served as-is.
	if got := s.PersonalInfo().Contact.Email; got != "broken" {
		t.Errorf("email = %q, want the invalid value rendered as-is", got)
	}
}
