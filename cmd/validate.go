package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/portfolio"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the portfolio data document",
	Long:  `Loads the portfolio data and reports every validation problem. Exits non-zero when the document is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store := portfolio.NewStore(cfg.Data)
		if err := store.Load(context.Background()); err != nil {
			return fmt.Errorf("loading %s: %w", cfg.Data, err)
		}
		if store.UsedFallback() {
			return fmt.Errorf("could not load %s", cfg.Data)
		}

		result := portfolio.Validate(store.Data())
		if result.Valid {
			fmt.Printf("%s is valid\n", cfg.Data)
			return nil
		}
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e)
		}
		return fmt.Errorf("%s: %d problem(s) found", cfg.Data, len(result.Errors))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
