package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Static portfolio site generator and dev server",
	Long: `Folio turns a single JSON document describing a person's work into a
static portfolio site: hero, about, experience, projects, skills and
contact sections with client-side filtering and search. The serve
command adds a dev server with live reload and visitor analytics.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
