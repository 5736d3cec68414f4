package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/folio-dev/folio/internal/portfolio"
)

// RunWizard runs an interactive setup wizard, saves folio.yml and writes a
// starter portfolio data file the user can fill in.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	namePrompt := promptui.Prompt{
		Label: "Your name",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("name prompt: %w", err)
	}

	titlePrompt := promptui.Prompt{
		Label:   "Professional title",
		Default: "Software Engineer",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}

	emailPrompt := promptui.Prompt{
		Label: "Contact email",
		Validate: func(s string) error {
			if s != "" && !strings.Contains(s, "@") {
				return fmt.Errorf("must look like local@domain")
			}
			return nil
		},
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("email prompt: %w", err)
	}

	githubPrompt := promptui.Prompt{
		Label:   "GitHub profile URL",
		Default: "https://github.com/",
	}
	github, err := githubPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("github prompt: %w", err)
	}

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{"light", "dark"},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Theme = Theme(themeStr)

	if err := cfg.Save(configPath); err != nil {
		return nil, err
	}

	if err := writeStarterData(cfg.Data, name, title, email, github); err != nil {
		return nil, err
	}

	fmt.Printf("\nWrote %s and %s. Edit %s, then run `folio build`.\n",
		configPath, cfg.Data, cfg.Data)
	return cfg, nil
}

// writeStarterData creates the initial portfolio document unless one
// already exists.
func writeStarterData(path, name, title, email, github string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s already exists, leaving it alone.\n", path)
		return nil
	}

	starter := portfolio.FallbackData()
	starter.Personal.Name = name
	starter.Personal.Title = title
	starter.Personal.Bio = fmt.Sprintf("Hi, I'm %s. Replace this bio with your own story.", name)
	starter.Personal.Summary = "Replace this with a short professional summary."
	if email != "" {
		starter.Personal.Contact.Email = email
	}
	if github != "" && github != "https://github.com/" {
		starter.Personal.Contact.GitHub = github
	}

	data, err := json.MarshalIndent(starter, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling starter data: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing starter data to %s: %w", path, err)
	}
	return nil
}
