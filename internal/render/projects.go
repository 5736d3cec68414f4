package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
)

// AllProjectsFilter is the label of the filter button that clears filtering.
const AllProjectsFilter = "All Projects"

// ToolFilters returns the sorted union of all tools across projects,
// deduplicated case-insensitively with first-seen casing kept.
func ToolFilters(projects []portfolio.Project) []string {
	seen := make(map[string]string)
	for _, p := range projects {
		for _, tool := range p.Tools {
			key := strings.ToLower(tool)
			if _, ok := seen[key]; !ok {
				seen[key] = tool
			}
		}
	}
	tools := make([]string, 0, len(seen))
	for _, v := range seen {
		tools = append(tools, v)
	}
	sort.Slice(tools, func(i, j int) bool {
		return strings.ToLower(tools[i]) < strings.ToLower(tools[j])
	})
	return tools
}

// FilterProjects returns the projects whose tools match the filter with a
// case-insensitive substring test. An empty filter or AllProjectsFilter
// returns everything.
func FilterProjects(projects []portfolio.Project, filter string) []portfolio.Project {
	if filter == "" || strings.EqualFold(filter, AllProjectsFilter) || strings.EqualFold(filter, "all") {
		return projects
	}
	needle := strings.ToLower(filter)
	var out []portfolio.Project
	for _, p := range projects {
		for _, tool := range p.Tools {
			if strings.Contains(strings.ToLower(tool), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Projects renders the filter bar, the visible-count line and the card
// grid. It delegates to ProjectGrid so serve mode can re-render just the
// grid for a selected filter.
func Projects(projects []portfolio.Project) (string, error) {
	var b strings.Builder
	b.WriteString(`<h2 class="section-heading">Projects</h2>` + "\n")

	b.WriteString(`<div class="filter-bar" role="group" aria-label="Filter projects by tool">` + "\n")
	fmt.Fprintf(&b, `<button type="button" class="filter-btn active" data-filter="all">%s</button>`+"\n", AllProjectsFilter)
	for _, tool := range ToolFilters(projects) {
		fmt.Fprintf(&b, `<button type="button" class="filter-btn" data-filter="%s">%s</button>`+"\n",
			Escape(strings.ToLower(tool)), Escape(tool))
	}
	b.WriteString(`</div>` + "\n")

	fmt.Fprintf(&b, `<p class="project-count" id="project-count" aria-live="polite">%s</p>`+"\n",
		countLabel(len(projects)))

	b.WriteString(`<div class="project-grid" id="project-grid">` + "\n")
	b.WriteString(ProjectGrid(projects))
	b.WriteString(`</div>` + "\n")
	return b.String(), nil
}

// ProjectGrid renders just the cards, one per project.
func ProjectGrid(projects []portfolio.Project) string {
	var b strings.Builder
	for _, p := range projects {
		b.WriteString(projectCard(p))
	}
	return b.String()
}

// countLabel formats the visible-card count line.
func countLabel(n int) string {
	if n == 1 {
		return "1 project"
	}
	return fmt.Sprintf("%d projects", n)
}

func projectCard(p portfolio.Project) string {
	var b strings.Builder
	tools := make([]string, len(p.Tools))
	for i, t := range p.Tools {
		tools[i] = strings.ToLower(t)
	}

	fmt.Fprintf(&b, `<article class="project-card" id="project-%s" data-tools="%s">`+"\n",
		Slug(p.ID), Escape(strings.Join(tools, ",")))

	// First image is the card thumbnail; without images a generated
	// placeholder block stands in so no slot is ever left broken.
	if len(p.Images) > 0 {
		fmt.Fprintf(&b, `<img class="lazy-image project-thumb" data-src="%s" alt="%s">`+"\n",
			Escape(p.Images[0]), Escape(p.Title))
	} else {
		fmt.Fprintf(&b, `<div class="project-thumb placeholder" aria-hidden="true">%s</div>`+"\n",
			Escape(initials(p.Title)))
	}

	fmt.Fprintf(&b, `<h3 class="project-title">%s</h3>`+"\n", Escape(p.Title))
	b.WriteString(`<div class="project-description">` + "\n")
	b.WriteString(Markdown(p.Description))
	b.WriteString(`</div>` + "\n")

	b.WriteString(`<ul class="tool-tags">` + "\n")
	for _, tool := range p.Tools {
		fmt.Fprintf(&b, `<li><button type="button" class="tool-tag" data-tool="%s">%s</button></li>`+"\n",
			Escape(strings.ToLower(tool)), Escape(tool))
	}
	b.WriteString(`</ul>` + "\n")

	b.WriteString(`<ul class="project-outcomes">` + "\n")
	for _, o := range p.Outcomes {
		fmt.Fprintf(&b, `<li>%s</li>`+"\n", Escape(o))
	}
	b.WriteString(`</ul>` + "\n")

	if len(p.Links) > 0 {
		b.WriteString(`<ul class="project-links">` + "\n")
		for _, l := range p.Links {
			fmt.Fprintf(&b, `<li><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></li>`+"\n",
				Escape(l.URL), Escape(l.Name))
		}
		b.WriteString(`</ul>` + "\n")
	}

	b.WriteString(`</article>` + "\n")
	return b.String()
}

// initials derives a short placeholder glyph from a title.
func initials(title string) string {
	fields := strings.Fields(title)
	var b strings.Builder
	for i, f := range fields {
		if i == 2 {
			break
		}
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
