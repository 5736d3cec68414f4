package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/assets"
	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/portfolio"
	"github.com/folio-dev/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static portfolio site",
	Long:  `Loads the portfolio data, renders every section and writes the site to the output directory along with any static assets.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "output directory (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := portfolio.NewStore(cfg.Data)
	builder, err := site.NewBuilder(store, cfg.OutputDir, string(cfg.Theme))
	if err != nil {
		return err
	}

	report, err := builder.Build(context.Background())
	if err != nil {
		return err
	}

	copied, err := assets.Copy(cfg.AssetsDir, cfg.OutputDir, cfg.Include, cfg.Exclude, assets.NewReporter())
	if err != nil {
		return fmt.Errorf("copying assets: %w", err)
	}

	fmt.Printf("Built %d sections to %s in %s (%d assets)\n",
		len(report.Components), cfg.OutputDir, report.Duration.Round(time.Millisecond), copied)
	if report.UsedFallback {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s, built with placeholder data\n", cfg.Data)
	}
	for _, name := range report.Errored {
		fmt.Fprintf(os.Stderr, "Warning: the %s section failed to render\n", name)
	}
	if verbose {
		for _, e := range store.ValidationErrors() {
			fmt.Fprintf(os.Stderr, "data: %s\n", e)
		}
	}
	return nil
}
