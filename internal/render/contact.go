package render

import (
	"fmt"
	"strings"

	"github.com/folio-dev/folio/internal/portfolio"
)

// contactChannel pairs a channel name with how its link is built.
type contactChannel struct {
	name     string
	label    string
	href     func(portfolio.ContactInfo) string
	external bool
}

// channels lists the contact channels in their fixed render order.
var channels = []contactChannel{
	{"email", "Email", func(c portfolio.ContactInfo) string {
		if c.Email == "" {
			return ""
		}
		return "mailto:" + c.Email
	}, false},
	{"linkedin", "LinkedIn", func(c portfolio.ContactInfo) string { return c.LinkedIn }, true},
	{"github", "GitHub", func(c portfolio.ContactInfo) string { return c.GitHub }, true},
	{"behance", "Behance", func(c portfolio.ContactInfo) string { return c.Behance }, true},
}

// Contact renders one link per present channel in fixed order. External
// links open in a new tab with rel="noopener noreferrer". Clicks are
// reported through the page script's tracking hook via data-channel.
func Contact(p portfolio.PersonalInfo) (string, error) {
	var b strings.Builder
	b.WriteString(`<h2 class="section-heading">Contact</h2>` + "\n")
	b.WriteString(`<ul class="contact-links" id="contact-links">` + "\n")

	for _, ch := range channels {
		href := ch.href(p.Contact)
		if href == "" {
			continue
		}
		attrs := ""
		if ch.external {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		fmt.Fprintf(&b, `<li><a class="contact-link" data-channel="%s" href="%s"%s>%s</a></li>`+"\n",
			ch.name, Escape(href), attrs, ch.label)
	}

	b.WriteString(`</ul>` + "\n")
	return b.String(), nil
}
