// Package server implements the folio dev server: it serves the built site,
// answers fragment requests for server-side filtering, records contact and
// visit analytics and pushes live-reload notifications.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/portfolio"
	"github.com/folio-dev/folio/internal/render"
	"github.com/folio-dev/folio/internal/site"
	"github.com/folio-dev/folio/internal/track"
)

// Server wires the built site, the fragment API and the tracking store
// behind one chi router.
type Server struct {
	cfg        config.ServerConfig
	builder    *site.Builder
	tracker    *track.Store
	siteDir    string
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server serving the static site from siteDir. tracker may be
// nil when tracking is disabled.
func New(cfg config.ServerConfig, builder *site.Builder, tracker *track.Store, siteDir string) *Server {
	s := &Server{
		cfg:     cfg,
		builder: builder,
		tracker: tracker,
		siteDir: siteDir,
		hub:     NewHub(),
	}

	// Every completed build pushes one reload to connected browsers.
	builder.Bus().Subscribe(func(ev site.LoadedEvent) {
		s.hub.Broadcast("reload")
	})

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	if s.tracker != nil {
		r.Use(s.visitTracker)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/fragments/projects", s.handleProjectsFragment)
		r.Get("/fragments/skills", s.handleSkillsFragment)
		r.Post("/track", s.handleTrack)
		r.Get("/stats", s.handleStats)
	})

	r.Get("/ws/reload", s.hub.HandleWS)

	// Static site, registered last so the API routes win.
	r.Handle("/*", http.FileServer(http.Dir(s.siteDir)))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub.
func (s *Server) ReloadHub() *Hub { return s.hub }

// visitTracker records page visits. API calls, asset requests and visitors
// sending Do-Not-Track are skipped.
func (s *Server) visitTracker(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet &&
			r.Header.Get("DNT") != "1" &&
			!strings.HasPrefix(r.URL.Path, "/api/") &&
			!strings.HasPrefix(r.URL.Path, "/ws/") &&
			!strings.Contains(r.URL.Path, ".") {
			if err := s.tracker.RecordVisit(r.Context(), r.RemoteAddr, r.UserAgent(), r.URL.Path); err != nil {
				log.Printf("server: recording visit: %v", err)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// fragmentResponse carries a rendered HTML fragment plus the visible count
// for the caller to update its count line.
type fragmentResponse struct {
	HTML  string `json:"html"`
	Count int    `json:"count"`
}

// handleProjectsFragment re-renders the project grid for a tool filter.
func (s *Server) handleProjectsFragment(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	visible := render.FilterProjects(s.builder.Store.Projects(), filter)
	writeJSON(w, http.StatusOK, fragmentResponse{
		HTML:  render.ProjectGrid(visible),
		Count: len(visible),
	})
}

// handleSkillsFragment re-renders the skill categories for a search query
// or a category filter. The two are mutually exclusive; the query wins.
func (s *Server) handleSkillsFragment(w http.ResponseWriter, r *http.Request) {
	categories := s.builder.Store.Skills()
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var visible []portfolio.SkillCategory
	switch {
	case query != "":
		visible = visibleCategories(categories, query)
	default:
		visible = render.FilterCategories(categories, category)
	}

	count := 0
	for _, c := range visible {
		count += len(c.Skills)
	}
	writeJSON(w, http.StatusOK, fragmentResponse{
		HTML:  render.SkillCategories(visible),
		Count: count,
	})
}

// visibleCategories reduces the full category list to the categories and
// skills a search query leaves visible.
func visibleCategories(categories []portfolio.SkillCategory, query string) []portfolio.SkillCategory {
	matches := render.MatchSkills(categories, query)
	var out []portfolio.SkillCategory
	for i, cm := range matches {
		if !cm.Visible {
			continue
		}
		kept := portfolio.SkillCategory{Category: cm.Category}
		for j, sm := range cm.Skills {
			if sm.Visible {
				kept.Skills = append(kept.Skills, categories[i].Skills[j])
			}
		}
		out = append(out, kept)
	}
	return out
}

// trackRequest is the JSON body for POST /api/track.
type trackRequest struct {
	Channel string `json:"channel"`
}

// handleTrack records one contact-channel click.
func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := s.tracker.RecordClick(r.Context(), req.Channel, r.RemoteAddr); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStats returns the tracking summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "tracking disabled"})
		return
	}
	stats, err := s.tracker.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
