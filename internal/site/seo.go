package site

import (
	"fmt"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
	"github.com/folio-dev/folio/internal/render"
)

// maxDescription caps the meta description length. Search engines truncate
// around this size anyway.
const maxDescription = 160

// MetaTags builds the head metadata for the page from the personal info:
// a description taken from the summary plus Open Graph tags for link
// previews. All values are escaped before interpolation.
func MetaTags(p portfolio.PersonalInfo) string {
	desc := render.Escape(metaDescription(p.Summary))
	ogTitle := render.Escape(p.Name)
	if p.Title != "" {
		ogTitle = render.Escape(p.Name + " — " + p.Title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<meta name="description" content="%s">`+"\n", desc)
	fmt.Fprintf(&b, `<meta property="og:title" content="%s">`+"\n", ogTitle)
	fmt.Fprintf(&b, `<meta property="og:description" content="%s">`+"\n", desc)
	fmt.Fprintf(&b, `<meta property="og:type" content="website">`)
	if p.Headshot != "" {
		fmt.Fprintf(&b, "\n"+`<meta property="og:image" content="%s">`, render.Escape(p.Headshot))
	}
	return b.String()
}

// metaDescription flattens the summary to a single line and truncates it on
// a word boundary.
func metaDescription(summary string) string {
	flat := strings.Join(strings.Fields(summary), " ")
	if len(flat) <= maxDescription {
		return flat
	}
	cut := flat[:maxDescription]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
