package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tailblocks/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the component gallery with live reload",
	Long: `Serve a gallery of every component and fixture example. Fixture files under
components.fixture_paths are watched and open pages reload when they change.

Examples:
  tailblocks serve                 # http://localhost:8080
  tailblocks serve -p 3000         # Different port
  tailblocks serve --host 0.0.0.0  # Listen on all interfaces`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")

	AddFlagValidation(serveCmd, "port", ValidatePort)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	srv, err := server.New(a.cfg, a.registry, a.loader, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d components at http://%s\n", a.registry.Count(), a.cfg.Addr())

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start server on %s: %w", a.cfg.Addr(), err)
	}
	return nil
}
