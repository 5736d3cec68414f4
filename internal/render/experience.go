package render

import (
	"fmt"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
)

// achievementStagger is the per-item reveal delay stride in milliseconds.
const achievementStagger = 100

// Experience renders the experience timeline. Entries with no achievements
// get no toggle control and no list, not an empty one.
func Experience(entries []portfolio.Experience) (string, error) {
	var b strings.Builder
	b.WriteString(`<h2 class="section-heading">Experience</h2>` + "\n")
	b.WriteString(`<div class="experience-timeline">` + "\n")

	for _, e := range entries {
		id := Slug(e.ID)
		fmt.Fprintf(&b, `<article class="experience-entry" id="experience-%s">`+"\n", id)
		fmt.Fprintf(&b, `<h3 class="experience-title">%s</h3>`+"\n", Escape(e.Title))
		fmt.Fprintf(&b, `<p class="experience-company">%s</p>`+"\n", Escape(e.Company))
		fmt.Fprintf(&b, `<p class="experience-duration">%s</p>`+"\n", Escape(e.Duration))

		if len(e.Technologies) > 0 {
			b.WriteString(`<ul class="tech-tags">` + "\n")
			for _, tech := range e.Technologies {
				fmt.Fprintf(&b, `<li class="tech-tag">%s</li>`+"\n", Escape(tech))
			}
			b.WriteString(`</ul>` + "\n")
		}

		if len(e.Achievements) > 0 {
			fmt.Fprintf(&b, `<button type="button" class="achievements-toggle" aria-expanded="true" aria-controls="achievements-%s" data-show-label="Show Achievements" data-hide-label="Hide Achievements">Hide Achievements</button>`+"\n", id)
			fmt.Fprintf(&b, `<ul class="achievements" id="achievements-%s">`+"\n", id)
			for i, a := range e.Achievements {
				fmt.Fprintf(&b, `<li class="achievement" data-stagger="%d">%s</li>`+"\n",
					i*achievementStagger, Escape(a))
			}
			b.WriteString(`</ul>` + "\n")
		}

		b.WriteString(`</article>` + "\n")
	}

	b.WriteString(`</div>` + "\n")
	return b.String(), nil
}
