package render

import (
	"fmt"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
)

// Hero renders the hero banner: name and professional title.
func Hero(p portfolio.PersonalInfo) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `<h1 id="hero-title" class="hero-title">%s</h1>`+"\n", Escape(p.Name))
	if p.Title != "" {
		fmt.Fprintf(&b, `<p id="hero-subtitle" class="hero-subtitle">%s</p>`+"\n", Escape(p.Title))
	}
	b.WriteString(`<a href="#contact" class="hero-cta" data-scroll>Get in touch</a>` + "\n")
	return b.String(), nil
}

// Summary renders the professional summary as markdown paragraphs.
func Summary(p portfolio.PersonalInfo) (string, error) {
	if strings.TrimSpace(p.Summary) == "" {
		return "", nil
	}
	var b strings.Builder
	b.WriteString(`<h2 class="section-heading">Summary</h2>` + "\n")
	b.WriteString(`<div class="summary-body">` + "\n")
	b.WriteString(Markdown(p.Summary))
	b.WriteString(`</div>` + "\n")
	return b.String(), nil
}

// About renders the bio and optional headshot. Without a headshot the image
// slot is omitted entirely and the section reflows to a single column.
func About(p portfolio.PersonalInfo) (string, error) {
	var b strings.Builder
	layout := "about-grid"
	if p.Headshot == "" {
		layout = "about-grid single-column"
	}

	b.WriteString(`<h2 class="section-heading">About</h2>` + "\n")
	fmt.Fprintf(&b, `<div class="%s">`+"\n", layout)

	if p.Headshot != "" {
		b.WriteString(`<div class="about-photo">` + "\n")
		fmt.Fprintf(&b, `<img class="lazy-image" data-src="%s" alt="%s" width="320" height="320">`+"\n",
			Escape(p.Headshot), Escape(p.Name))
		b.WriteString(`</div>` + "\n")
	}

	b.WriteString(`<div class="about-bio">` + "\n")
	b.WriteString(Markdown(p.Bio))
	b.WriteString(`</div>` + "\n")
	b.WriteString(`</div>` + "\n")
	return b.String(), nil
}
