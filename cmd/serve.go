package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/assets"
	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/db"
	"github.com/folio-dev/folio/internal/portfolio"
	"github.com/folio-dev/folio/internal/server"
	"github.com/folio-dev/folio/internal/site"
	"github.com/folio-dev/folio/internal/track"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with live reload",
	Long: `Builds the portfolio site and starts a local dev server. Changes to the
data file trigger a rebuild and connected browsers reload automatically.
Visits and contact clicks are recorded unless tracking is disabled.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")
	serveCmd.Flags().Bool("no-tracking", false, "disable visitor tracking")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if off, _ := cmd.Flags().GetBool("no-tracking"); off {
		cfg.Server.Tracking = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := portfolio.NewStore(cfg.Data)
	builder, err := site.NewBuilder(store, cfg.OutputDir, string(cfg.Theme))
	if err != nil {
		return err
	}
	builder.LiveReload = true

	ctx := context.Background()
	report, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	if _, err := assets.Copy(cfg.AssetsDir, cfg.OutputDir, cfg.Include, cfg.Exclude, assets.NewReporter()); err != nil {
		return fmt.Errorf("copying assets: %w", err)
	}
	if report.UsedFallback {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s, serving placeholder data\n", cfg.Data)
	}

	var tracker *track.Store
	if cfg.Server.Tracking {
		if err := os.MkdirAll(cfg.Server.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		database, err := db.Open(filepath.Join(cfg.Server.DataDir, "folio.db"))
		if err != nil {
			return fmt.Errorf("opening tracking db: %w", err)
		}
		defer database.Close()
		tracker, err = track.NewStore(database)
		if err != nil {
			return err
		}
	}

	srv := server.New(cfg.Server, builder, tracker, cfg.OutputDir)

	// Only file sources can be watched for live reload.
	if !strings.HasPrefix(cfg.Data, "http://") && !strings.HasPrefix(cfg.Data, "https://") {
		if err := server.WatchData(ctx, cfg.Data, builder); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: live reload unavailable: %v\n", err)
		}
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	fmt.Printf("Serving %s at http://localhost:%d\n", cfg.OutputDir, cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
