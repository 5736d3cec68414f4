package render

import (
	"fmt"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
)

// SkillMatch is the visibility decision for one skill under a query.
type SkillMatch struct {
	Name      string
	Visible   bool
	Highlight bool
}

// CategoryMatch is the visibility decision for one category under a query.
// A category with zero visible skills is itself hidden.
type CategoryMatch struct {
	Category string
	Visible  bool
	Skills   []SkillMatch
}

// MatchSkills applies the search semantics: case-insensitive substring
// matching across skill name AND category name. An empty query shows
// everything unhighlighted. A category-name match exposes all its skills.
func MatchSkills(categories []portfolio.SkillCategory, query string) []CategoryMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]CategoryMatch, 0, len(categories))

	for _, cat := range categories {
		cm := CategoryMatch{Category: cat.Category}
		categoryHit := query != "" && strings.Contains(strings.ToLower(cat.Category), query)

		anyVisible := false
		for _, s := range cat.Skills {
			m := SkillMatch{Name: s.Name}
			if query == "" {
				m.Visible = true
			} else if strings.Contains(strings.ToLower(s.Name), query) {
				m.Visible = true
				m.Highlight = true
			} else if categoryHit {
				m.Visible = true
				m.Highlight = true
			}
			if m.Visible {
				anyVisible = true
			}
			cm.Skills = append(cm.Skills, m)
		}

		cm.Visible = anyVisible
		out = append(out, cm)
	}
	return out
}

// FilterCategories returns the categories whose name matches the selected
// category filter exactly (case-insensitive), or all for an empty filter.
// The category filter and the free-text search are mutually exclusive in
// the browser; last interaction wins there.
func FilterCategories(categories []portfolio.SkillCategory, category string) []portfolio.SkillCategory {
	if category == "" || strings.EqualFold(category, "all") {
		return categories
	}
	var out []portfolio.SkillCategory
	for _, c := range categories {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}

// Skills renders the search box, category filter and the category browser.
func Skills(categories []portfolio.SkillCategory) (string, error) {
	var b strings.Builder
	b.WriteString(`<h2 class="section-heading">Skills</h2>` + "\n")

	b.WriteString(`<div class="skills-controls">` + "\n")
	b.WriteString(`<input type="search" id="skills-search" class="skills-search" placeholder="Search skills..." aria-label="Search skills" autocomplete="off">` + "\n")
	b.WriteString(`<div class="category-filter" role="group" aria-label="Filter by category">` + "\n")
	b.WriteString(`<button type="button" class="category-btn active" data-category="all">All</button>` + "\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, `<button type="button" class="category-btn" data-category="%s">%s</button>`+"\n",
			Escape(strings.ToLower(cat.Category)), Escape(cat.Category))
	}
	b.WriteString(`</div>` + "\n")
	b.WriteString(`</div>` + "\n")

	b.WriteString(`<div class="skills-browser" id="skills-browser">` + "\n")
	b.WriteString(SkillCategories(categories))
	b.WriteString(`</div>` + "\n")
	return b.String(), nil
}

// SkillCategories renders the category blocks, used both for the full
// section and for serve-mode fragment responses.
func SkillCategories(categories []portfolio.SkillCategory) string {
	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(skillCategory(cat))
	}
	return b.String()
}

func skillCategory(cat portfolio.SkillCategory) string {
	var b strings.Builder
	slug := Slug(cat.Category)

	fmt.Fprintf(&b, `<section class="skill-category" id="category-%s" data-category="%s">`+"\n",
		slug, Escape(strings.ToLower(cat.Category)))
	fmt.Fprintf(&b, `<button type="button" class="category-toggle" aria-expanded="true" aria-controls="skills-%s">%s</button>`+"\n",
		slug, Escape(cat.Category))
	fmt.Fprintf(&b, `<ul class="skill-list" id="skills-%s">`+"\n", slug)

	for _, s := range cat.Skills {
		prof := s.EffectiveProficiency()
		fmt.Fprintf(&b, `<li class="skill-item" data-skill="%s" data-category="%s" tabindex="0">`+"\n",
			Escape(strings.ToLower(s.Name)), Escape(strings.ToLower(cat.Category)))
		if s.Icon != "" {
			fmt.Fprintf(&b, `<img class="skill-icon" src="%s" alt="">`+"\n", Escape(s.Icon))
		}
		fmt.Fprintf(&b, `<span class="skill-name">%s</span>`+"\n", Escape(s.Name))
		fmt.Fprintf(&b, `<span class="skill-proficiency proficiency-%s">%s</span>`+"\n",
			Escape(string(prof)), Escape(string(prof)))
		// Detail panel, collapsed; the page script keeps at most one open.
		fmt.Fprintf(&b, `<div class="skill-detail" hidden>%s — %s proficiency</div>`+"\n",
			Escape(s.Name), Escape(string(prof)))
		b.WriteString(`</li>` + "\n")
	}

	b.WriteString(`</ul>` + "\n")
	b.WriteString(`</section>` + "\n")
	return b.String()
}
