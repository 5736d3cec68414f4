package cmd

import (
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a folio config and starter data interactively",
	Long:  `Walks through a short wizard and writes folio.yml plus a starter portfolio.json you can edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
