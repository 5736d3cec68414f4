package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	// maxAttempts caps the fetch retry loop before falling back.
	maxAttempts = 3
	// initialBackoff is the delay before the second attempt; it doubles
	// for each attempt after that.
	initialBackoff = 500 * time.Millisecond
	// fetchTimeout bounds a single HTTP attempt.
	fetchTimeout = 10 * time.Second
)

// Store loads and holds the portfolio document for the lifetime of a build
// or serve session. Load never fails: after the retry budget is exhausted
// the built-in fallback dataset is installed, so accessors always return
// renderable data.
type Store struct {
	// Source is a filesystem path or an http(s) URL to the data file.
	Source string

	client *http.Client

	mu             sync.RWMutex
	data           Data
	loaded         bool
	usedFallback   bool
	validationErrs []string
}

// NewStore creates a Store reading from the given source.
func NewStore(source string) *Store {
	return &Store{
		Source: source,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Load fetches, parses and validates the data file, retrying with
// exponential backoff on failure and installing the fallback dataset after
// the final attempt. The returned error describes the last fetch failure
// for logging purposes; the store is usable either way.
func (s *Store) Load(ctx context.Context) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		data, err := s.fetch(ctx)
		if err == nil {
			s.install(data, false)
			return nil
		}
		lastErr = err
		log.Printf("portfolio: attempt %d/%d failed: %v", attempt, maxAttempts, err)

		if attempt < maxAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				s.install(FallbackData(), true)
				return fmt.Errorf("loading portfolio data: %w", ctx.Err())
			}
			backoff *= 2
		}
	}

	s.install(FallbackData(), true)
	return fmt.Errorf("loading portfolio data (using fallback): %w", lastErr)
}

// fetch performs one attempt against the source.
func (s *Store) fetch(ctx context.Context) (Data, error) {
	var raw []byte
	var err error

	if strings.HasPrefix(s.Source, "http://") || strings.HasPrefix(s.Source, "https://") {
		raw, err = s.fetchHTTP(ctx)
	} else {
		raw, err = os.ReadFile(s.Source)
		if err != nil {
			err = fmt.Errorf("reading %s: %w", s.Source, err)
		}
	}
	if err != nil {
		return Data{}, err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parsing %s: %w", s.Source, err)
	}
	return data, nil
}

func (s *Store) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.Source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: status %d", s.Source, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// install stores the dataset and runs the advisory validation pass. The
// pass is logged and retained but never blocks: invalid data still renders.
func (s *Store) install(data Data, fallback bool) {
	result := Validate(data)

	s.mu.Lock()
	s.data = data
	s.loaded = true
	s.usedFallback = fallback
	s.validationErrs = result.Errors
	s.mu.Unlock()

	if result.Valid {
		log.Printf("portfolio: data validated ok")
	} else {
		log.Printf("portfolio: data has %d validation issue(s); rendering as-is", len(result.Errors))
		for _, e := range result.Errors {
			log.Printf("portfolio:   %s", e)
		}
	}
}

// Reload re-fetches the data file. Used by the dev server's file watcher.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// PersonalInfo returns the personal block, or its zero value before Load.
func (s *Store) PersonalInfo() PersonalInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Personal
}

// Experience returns the experience entries, or an empty list before Load.
func (s *Store) Experience() []Experience {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Experience
}

// Projects returns the project entries, or an empty list before Load.
func (s *Store) Projects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Projects
}

// Skills returns the skill categories, or an empty list before Load.
func (s *Store) Skills() []SkillCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Skills
}

// Data returns the full document snapshot.
func (s *Store) Data() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Loaded reports whether Load has completed at least once.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// UsedFallback reports whether the current dataset is the built-in one.
func (s *Store) UsedFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usedFallback
}

// ValidationErrors returns the error strings from the last validation pass.
func (s *Store) ValidationErrors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.validationErrs))
	copy(out, s.validationErrs)
	return out
}
