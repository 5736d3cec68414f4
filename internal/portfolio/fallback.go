package portfolio

// FallbackData returns the built-in dataset used when the real data file
// cannot be fetched or parsed after all retries. It is complete and valid
// so the generated site always has visible content in every section.
func FallbackData() Data {
	return Data{
		Personal: PersonalInfo{
			Name:    "Alex Morgan",
			Title:   "Software Engineer",
			Bio:     "Software engineer focused on building reliable, maintainable systems.\n\nThis page is showing placeholder content because the portfolio data file could not be loaded.",
			Summary: "Experienced engineer with a background in web platforms and developer tooling.",
			Contact: ContactInfo{
				Email:    "hello@example.com",
				LinkedIn: "https://www.linkedin.com/in/example",
				GitHub:   "https://github.com/example",
				Behance:  "https://www.behance.net/example",
			},
		},
		Experience: []Experience{
			{
				ID:       "placeholder-role",
				Company:  "Example Co",
				Title:    "Software Engineer",
				Duration: "2022 - Present",
				Achievements: []string{
					"Shipped and maintained production services.",
					"Improved build and deploy tooling for the team.",
				},
				Technologies: []string{"Go", "TypeScript", "PostgreSQL"},
			},
		},
		Projects: []Project{
			{
				ID:          "placeholder-project",
				Title:       "Sample Project",
				Description: "A placeholder project shown while the portfolio data is unavailable.",
				Tools:       []string{"Go", "SQLite"},
				Outcomes:    []string{"Demonstrates the portfolio layout with fallback content."},
			},
		},
		Skills: []SkillCategory{
			{
				Category: "Languages",
				Skills: []Skill{
					{Name: "Go", Proficiency: ProficiencyAdvanced},
					{Name: "JavaScript", Proficiency: ProficiencyIntermediate},
				},
			},
			{
				Category: "Tools",
				Skills: []Skill{
					{Name: "Git"},
					{Name: "Docker"},
				},
			},
		},
	}
}
