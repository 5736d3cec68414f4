package site

import (
	"fmt"
	"log"
	"sync"

	"github.com/folio-dev/folio/internal/portfolio"
)

// PopulateFunc renders one section's HTML from the current store data.
type PopulateFunc func(*portfolio.Store) (string, error)

// component is the registry's internal record for one registered section.
type component struct {
	name       string
	anchorID   string
	renderable bool
	populated  bool
	html       string
	err        error
	populate   PopulateFunc
}

// Status is a point-in-time snapshot of one component's state.
type Status struct {
	Name       string
	AnchorID   string
	Renderable bool
	Populated  bool
	HasContent bool
	Err        error
}

// SectionResult reports the outcome of one section's populate pass.
type SectionResult struct {
	Name string
	Err  error
}

// Registry tracks the page's section components. Each section is registered
// against a shell anchor; a component whose anchor does not exist in the
// shell is kept on record but marked non-renderable and never populated.
// Section failures are isolated: one renderer's error never stops the
// others from populating.
type Registry struct {
	mu      sync.Mutex
	store   *portfolio.Store
	anchors map[string]bool
	order   []string
	byName  map[string]*component
}

// NewRegistry creates a Registry whose valid anchors are anchorIDs.
func NewRegistry(store *portfolio.Store, anchorIDs []string) *Registry {
	anchors := make(map[string]bool, len(anchorIDs))
	for _, id := range anchorIDs {
		anchors[id] = true
	}
	return &Registry{
		store:   store,
		anchors: anchors,
		byName:  make(map[string]*component),
	}
}

// Register adds a component under name, bound to the shell anchor anchorID.
// Registering an existing name replaces its renderer while keeping its
// position in the registration order.
func (r *Registry) Register(name, anchorID string, fn PopulateFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	renderable := r.anchors[anchorID]
	if !renderable {
		log.Printf("site: component %s has no anchor %q in the page shell, skipping", name, anchorID)
	}

	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = &component{
		name:       name,
		anchorID:   anchorID,
		renderable: renderable,
		populate:   fn,
	}
}

// Get returns the snapshot for one component.
func (r *Registry) Get(name string) (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byName[name]
	if !ok {
		return Status{}, false
	}
	return c.status(), true
}

// All returns snapshots for every component in registration order.
func (r *Registry) All() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Status, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].status())
	}
	return out
}

// Names returns the registered component names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Refresh re-populates one component. It returns false for unknown or
// non-renderable components and for populate errors.
func (r *Registry) Refresh(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byName[name]
	if !ok || !c.renderable {
		return false
	}
	r.populateLocked(c)
	return c.err == nil
}

// RefreshAll populates every renderable component in registration order and
// returns one result per component. Prior state never carries over: a
// section that errored last pass is retried from scratch.
func (r *Registry) RefreshAll() []SectionResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]SectionResult, 0, len(r.order))
	for _, name := range r.order {
		c := r.byName[name]
		if !c.renderable {
			continue
		}
		r.populateLocked(c)
		results = append(results, SectionResult{Name: name, Err: c.err})
	}
	return results
}

// populateLocked runs one component's renderer. On error the component's
// HTML becomes an inline error block so the rest of the page still renders.
func (r *Registry) populateLocked(c *component) {
	html, err := c.populate(r.store)
	if err != nil {
		log.Printf("site: populating %s: %v", c.name, err)
		c.populated = false
		c.html = errorBlock(c.name)
		c.err = err
		return
	}
	c.populated = true
	c.html = html
	c.err = nil
}

// HTML returns the current rendered HTML for a component, which is the
// inline error block when its last populate failed.
func (r *Registry) HTML(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byName[name]
	if !ok {
		return ""
	}
	return c.html
}

func (c *component) status() Status {
	return Status{
		Name:       c.name,
		AnchorID:   c.anchorID,
		Renderable: c.renderable,
		Populated:  c.populated,
		HasContent: c.populated && c.html != "",
		Err:        c.err,
	}
}

// errorBlock is the inline placeholder shown for a failed section.
func errorBlock(name string) string {
	return fmt.Sprintf(`<div class="section-error" role="alert">Unable to load the %s section.</div>`, name)
}
