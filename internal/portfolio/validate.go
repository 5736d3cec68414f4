package portfolio

import (
	"fmt"
	"net/url"
	"strings"
)

// Result is the outcome of validating one entity. Errors preserves the
// order in which checks ran so diagnostics read top to bottom.
type Result struct {
	Valid  bool
	Errors []string
}

// merge folds a child result into the parent under a readable prefix.
// The parent becomes invalid if the child is, and the child's errors are
// appended in order as "prefix: child error".
func (r *Result) merge(prefix string, child Result) {
	if child.Valid {
		return
	}
	r.Valid = false
	for _, e := range child.Errors {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %s", prefix, e))
	}
}

// fail records a single error on the result.
func (r *Result) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ok returns a passing result.
func ok() Result { return Result{Valid: true} }

// isEmailShaped checks the basic local@domain shape.
func isEmailShaped(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	// Exactly one @ and no whitespace.
	if strings.Count(s, "@") != 1 || strings.ContainsAny(s, " \t\n") {
		return false
	}
	return true
}

// isHTTPURL checks that s parses as an absolute http(s) URL.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateContact checks the four required contact channels.
func ValidateContact(c ContactInfo) Result {
	r := ok()
	if c.Email == "" {
		r.fail("email is required")
	} else if !isEmailShaped(c.Email) {
		r.fail("email %q is not a valid address", c.Email)
	}
	for _, link := range []struct {
		name, value string
	}{
		{"linkedin", c.LinkedIn},
		{"github", c.GitHub},
		{"behance", c.Behance},
	} {
		if link.value == "" {
			r.fail("%s is required", link.name)
		} else if !isHTTPURL(link.value) {
			r.fail("%s %q must be an http(s) URL", link.name, link.value)
		}
	}
	return r
}

// ValidatePersonal checks the personal info block, including its contact
// info as a child entity.
func ValidatePersonal(p PersonalInfo) Result {
	r := ok()
	if strings.TrimSpace(p.Name) == "" {
		r.fail("name is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		r.fail("title is required")
	}
	if strings.TrimSpace(p.Bio) == "" {
		r.fail("bio is required")
	}
	if strings.TrimSpace(p.Summary) == "" {
		r.fail("summary is required")
	}
	r.merge("contact", ValidateContact(p.Contact))
	return r
}

// ValidateExperience checks one experience entry. An empty achievements
// list is valid (the entry renders without a toggle), but present
// achievements must be non-empty strings.
func ValidateExperience(e Experience) Result {
	r := ok()
	if e.ID == "" {
		r.fail("id is required")
	}
	if e.Company == "" {
		r.fail("company is required")
	}
	if e.Title == "" {
		r.fail("title is required")
	}
	if e.Duration == "" {
		r.fail("duration is required")
	}
	for i, a := range e.Achievements {
		if strings.TrimSpace(a) == "" {
			r.fail("achievement %d is empty", i+1)
		}
	}
	for i, t := range e.Technologies {
		if strings.TrimSpace(t) == "" {
			r.fail("technology %d is empty", i+1)
		}
	}
	return r
}

// ValidateProject checks one project. Tools and outcomes are mandatory
// non-empty lists; the UI depends on them to build the filter bar and the
// outcomes block.
func ValidateProject(p Project) Result {
	r := ok()
	if p.ID == "" {
		r.fail("id is required")
	}
	if p.Title == "" {
		r.fail("title is required")
	}
	if p.Description == "" {
		r.fail("description is required")
	}
	if len(p.Tools) == 0 {
		r.fail("tools must not be empty")
	}
	if len(p.Outcomes) == 0 {
		r.fail("outcomes must not be empty")
	}
	for i, l := range p.Links {
		if l.Name == "" {
			r.fail("link %d has no name", i+1)
		}
		if !isHTTPURL(l.URL) {
			r.fail("link %d url %q must be an http(s) URL", i+1, l.URL)
		}
	}
	return r
}

// ValidateSkill checks one skill. Proficiency is optional but must be a
// recognized value when present.
func ValidateSkill(s Skill) Result {
	r := ok()
	if s.Name == "" {
		r.fail("name is required")
	}
	if s.Proficiency != "" && !ValidProficiencies[s.Proficiency] {
		r.fail("proficiency %q must be one of beginner, intermediate, advanced, expert", s.Proficiency)
	}
	return r
}

// ValidateSkillCategory checks one category. A category with zero skills is
// invalid since the browser relies on non-empty lists to render the block.
func ValidateSkillCategory(c SkillCategory) Result {
	r := ok()
	if c.Category == "" {
		r.fail("category name is required")
	}
	if len(c.Skills) == 0 {
		r.fail("skills must not be empty")
	}
	for _, s := range c.Skills {
		name := s.Name
		if name == "" {
			name = "(unnamed)"
		}
		r.merge(fmt.Sprintf("skill %s", name), ValidateSkill(s))
	}
	return r
}

// Validate runs the full validation pass over a portfolio document. The
// result is advisory: callers log it and render the data as-is regardless,
// so the site never shows a blank page over a schema quibble.
func Validate(d Data) Result {
	r := ok()
	r.merge("personal", ValidatePersonal(d.Personal))

	expIDs := make(map[string]bool)
	for i, e := range d.Experience {
		label := e.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		r.merge(fmt.Sprintf("experience %s", label), ValidateExperience(e))
		if e.ID != "" {
			if expIDs[e.ID] {
				r.fail("experience %s: duplicate id", e.ID)
			}
			expIDs[e.ID] = true
		}
	}

	projIDs := make(map[string]bool)
	for i, p := range d.Projects {
		label := p.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		r.merge(fmt.Sprintf("project %s", label), ValidateProject(p))
		if p.ID != "" {
			if projIDs[p.ID] {
				r.fail("project %s: duplicate id", p.ID)
			}
			projIDs[p.ID] = true
		}
	}

	cats := make(map[string]bool)
	for _, c := range d.Skills {
		label := c.Category
		if label == "" {
			label = "(unnamed)"
		}
		r.merge(fmt.Sprintf("skills %s", label), ValidateSkillCategory(c))
		if c.Category != "" {
			if cats[c.Category] {
				r.fail("skills %s: duplicate category name", c.Category)
			}
			cats[c.Category] = true
		}
	}

	return r
}
