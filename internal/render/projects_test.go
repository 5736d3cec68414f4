package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/folio-dev/folio/internal/portfolio"
)

func testProjects() []portfolio.Project {
	return []portfolio.Project{
		{
			ID: "alpha", Title: "Alpha", Description: "First.",
			Tools:    []string{"Go", "SQLite"},
			Outcomes: []string{"Shipped"},
		},
		{
			ID: "beta", Title: "Beta", Description: "Second.",
			Tools:    []string{"go", "React"},
			Outcomes: []string{"Launched"},
			Images:   []string{"images/beta.png"},
			Links:    []portfolio.ProjectLink{{Name: "Demo", URL: "https://example.com/beta"}},
		},
	}
}

func TestToolFiltersUnionSorted(t *testing.T) {
	got := ToolFilters(testProjects())
	// "Go" and "go" dedupe case-insensitively, first-seen casing kept.
	want := []string{"Go", "React", "SQLite"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToolFilters = %v, want %v", got, want)
	}
}

func TestFilterProjects(t *testing.T) {
	projects := testProjects()

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"alpha", "beta"}},
		{AllProjectsFilter, []string{"alpha", "beta"}},
		{"all", []string{"alpha", "beta"}},
		{"react", []string{"beta"}},
		{"GO", []string{"alpha", "beta"}},
		{"sql", []string{"alpha"}}, // substring match
		{"rust", nil},
	}

	for _, tt := range tests {
		got := FilterProjects(projects, tt.filter)
		var ids []string
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if !reflect.DeepEqual(ids, tt.want) {
			t.Errorf("FilterProjects(%q) = %v, want %v", tt.filter, ids, tt.want)
		}
	}
}

func TestProjectsFilterBar(t *testing.T) {
	html, err := Projects(testProjects())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(html, ">All Projects</button>") {
		t.Error("filter bar should start with the All Projects button")
	}
	for _, tool := range []string{"Go", "React", "SQLite"} {
		if !strings.Contains(html, ">"+tool+"</button>") {
			t.Errorf("filter bar should contain a button for %s", tool)
		}
	}
	// One button per unique tool plus All.
	if got := strings.Count(html, `class="filter-btn`); got != 4 {
		t.Errorf("filter buttons = %d, want 4", got)
	}
	if !strings.Contains(html, ">2 projects</p>") {
		t.Error("count line should report 2 projects")
	}
}

func TestProjectCardEscapesTitle(t *testing.T) {
	projects := []portfolio.Project{{
		ID:          "xss",
		Title:       `<script>alert(1)</script>`,
		Description: "desc",
		Tools:       []string{"Go"},
		Outcomes:    []string{"done"},
	}}

	html, err := Projects(projects)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("card markup should contain the escaped sequence")
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("card markup must not contain an executable script tag")
	}
}

func TestProjectThumbnail(t *testing.T) {
	html, err := Projects(testProjects())
	if err != nil {
		t.Fatal(err)
	}

	// beta has an image, rendered lazily; alpha gets a placeholder.
	if !strings.Contains(html, `data-src="images/beta.png"`) {
		t.Error("first image should become the lazy card thumbnail")
	}
	if !strings.Contains(html, `class="project-thumb placeholder"`) {
		t.Error("projects without images should get a placeholder block")
	}
}

func TestProjectLinksExternal(t *testing.T) {
	html, err := Projects(testProjects())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `target="_blank" rel="noopener noreferrer"`) {
		t.Error("project links should open externally with noopener noreferrer")
	}
}

func TestCountLabel(t *testing.T) {
	if got := countLabel(1); got != "1 project" {
		t.Errorf("countLabel(1) = %q", got)
	}
	if got := countLabel(3); got != "3 projects" {
		t.Errorf("countLabel(3) = %q", got)
	}
}
