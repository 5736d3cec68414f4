package site

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/folio-dev/folio/internal/portfolio"
	"github.com/folio-dev/folio/internal/render"
)

// Builder orchestrates a full page build: load data, populate every
// section, assemble the shell and write the output files. It is an
// explicit object handed to the caller; there is no package-level
// singleton to reach into.
type Builder struct {
	Store      *portfolio.Store
	OutputDir  string
	Theme      string
	LiveReload bool

	registry *Registry
	bus      *Bus
	tmpl     *template.Template
}

// Report summarises one build pass.
type Report struct {
	BuildID      string
	Components   []string
	Errored      []string
	UsedFallback bool
	Duration     time.Duration
}

// NewBuilder creates a Builder writing to outputDir with the given initial
// theme ("light" or "dark").
func NewBuilder(store *portfolio.Store, outputDir, theme string) (*Builder, error) {
	tmpl, err := template.New("shell").Parse(shellTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page shell: %w", err)
	}

	b := &Builder{
		Store:     store,
		OutputDir: outputDir,
		Theme:     theme,
		registry:  NewRegistry(store, shellAnchors),
		bus:       NewBus(),
		tmpl:      tmpl,
	}
	b.registerSections()
	return b, nil
}

// Registry exposes the component registry for inspection and refresh.
func (b *Builder) Registry() *Registry { return b.registry }

// Bus exposes the loaded-event bus for subscribers (live reload, loggers).
func (b *Builder) Bus() *Bus { return b.bus }

// registerSections wires each section's renderer to its shell anchor in
// the fixed initialization order.
func (b *Builder) registerSections() {
	b.registry.Register(SectionHero, SectionHero, func(s *portfolio.Store) (string, error) {
		return render.Hero(s.PersonalInfo())
	})
	b.registry.Register(SectionAbout, SectionAbout, func(s *portfolio.Store) (string, error) {
		return render.About(s.PersonalInfo())
	})
	b.registry.Register(SectionSummary, SectionSummary, func(s *portfolio.Store) (string, error) {
		return render.Summary(s.PersonalInfo())
	})
	b.registry.Register(SectionExperience, SectionExperience, func(s *portfolio.Store) (string, error) {
		return render.Experience(s.Experience())
	})
	b.registry.Register(SectionProjects, SectionProjects, func(s *portfolio.Store) (string, error) {
		return render.Projects(s.Projects())
	})
	b.registry.Register(SectionSkills, SectionSkills, func(s *portfolio.Store) (string, error) {
		return render.Skills(s.Skills())
	})
	b.registry.Register(SectionContact, SectionContact, func(s *portfolio.Store) (string, error) {
		return render.Contact(s.PersonalInfo())
	})
}

// shellData is the data passed to the shell template.
type shellData struct {
	Title      string
	Theme      string
	MetaTags   template.HTML
	Sections   map[string]template.HTML
	LiveReload bool
}

// Build runs one full pass. Every step degrades gracefully: a data-fetch
// failure substitutes the fallback dataset, a failed section renders its
// inline error block, and the pass always ends with the page written and
// one loaded event emitted.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := time.Now()

	if !b.Store.Loaded() {
		if err := b.Store.Load(ctx); err != nil {
			log.Printf("site: %v", err)
		}
	}

	results := b.registry.RefreshAll()
	var errored []string
	for _, res := range results {
		if res.Err != nil {
			errored = append(errored, res.Name)
		}
	}

	if err := b.writeOutput(); err != nil {
		return nil, err
	}

	report := &Report{
		BuildID:      uuid.NewString(),
		Components:   b.registry.Names(),
		Errored:      errored,
		UsedFallback: b.Store.UsedFallback(),
		Duration:     time.Since(start),
	}

	b.bus.Notify(LoadedEvent{
		BuildID:    report.BuildID,
		Components: report.Components,
		Errored:    report.Errored,
		Timestamp:  time.Now(),
	})

	return report, nil
}

// Rebuild re-fetches the data file and runs another full pass. Used by the
// dev server's file watcher.
func (b *Builder) Rebuild(ctx context.Context) (*Report, error) {
	if err := b.Store.Reload(ctx); err != nil {
		log.Printf("site: %v", err)
	}
	return b.Build(ctx)
}

// writeOutput assembles the shell and writes the page and its assets.
func (b *Builder) writeOutput() error {
	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	personal := b.Store.PersonalInfo()
	title := personal.Name
	if title == "" {
		title = "Portfolio"
	}

	sections := make(map[string]template.HTML, len(shellAnchors))
	for _, name := range shellAnchors {
		sections[name] = template.HTML(b.registry.HTML(name))
	}

	data := shellData{
		Title:      title,
		Theme:      b.Theme,
		MetaTags:   template.HTML(MetaTags(personal)),
		Sections:   sections,
		LiveReload: b.LiveReload,
	}

	f, err := os.Create(filepath.Join(b.OutputDir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	defer f.Close()
	if err := b.tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering page shell: %w", err)
	}

	if err := os.WriteFile(filepath.Join(b.OutputDir, "style.css"), []byte(render.CSS()), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "script.js"), []byte(render.Script()), 0o644); err != nil {
		return err
	}
	if b.LiveReload {
		if err := os.WriteFile(filepath.Join(b.OutputDir, "livereload.js"), []byte(liveReloadScript), 0o644); err != nil {
			return err
		}
	}
	return nil
}
