package render

import (
	"strings"
	"testing"

	"github.com/folio-dev/folio/internal/portfolio"
)

func TestContactFixedOrder(t *testing.T) {
	p := portfolio.PersonalInfo{Contact: portfolio.ContactInfo{
		Email:    "a@b.com",
		LinkedIn: "https://linkedin.com/in/a",
		GitHub:   "https://github.com/a",
		Behance:  "https://behance.net/a",
	}}

	html, err := Contact(p)
	if err != nil {
		t.Fatal(err)
	}

	order := []string{`data-channel="email"`, `data-channel="linkedin"`, `data-channel="github"`, `data-channel="behance"`}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		if idx == -1 {
			t.Fatalf("missing channel %s", marker)
		}
		if idx < last {
			t.Errorf("channel %s out of order", marker)
		}
		last = idx
	}
}

func TestContactOmitsAbsentChannels(t *testing.T) {
	p := portfolio.PersonalInfo{Contact: portfolio.ContactInfo{
		Email:  "a@b.com",
		GitHub: "https://github.com/a",
	}}

	html, err := Contact(p)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(html, "linkedin") || strings.Contains(html, "behance") {
		t.Error("absent channels must be omitted, not rendered empty")
	}
	if got := strings.Count(html, `class="contact-link"`); got != 2 {
		t.Errorf("contact links = %d, want 2", got)
	}
}

func TestContactLinkAttributes(t *testing.T) {
	p := portfolio.PersonalInfo{Contact: portfolio.ContactInfo{
		Email:  "a@b.com",
		GitHub: "https://github.com/a",
	}}

	html, err := Contact(p)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(html, `href="mailto:a@b.com"`) {
		t.Error("email channel should be a mailto link")
	}
	// mailto links stay in-tab; external channels open new tabs.
	if strings.Contains(html, `data-channel="email" href="mailto:a@b.com" target`) {
		t.Error("email link should not have target=_blank")
	}
	if !strings.Contains(html, `href="https://github.com/a" target="_blank" rel="noopener noreferrer"`) {
		t.Error("external links need target=_blank rel=noopener noreferrer")
	}
}
