package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/domweave/domweave/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the schema reference with live reload",
		Long: `Start the preview server for the schema reference page.

The server watches the schema file and refreshes connected browsers
when it changes. Schema errors show up as an overlay in the browser.
Prometheus metrics are exposed on /metrics.

Examples:
  domweave preview
  domweave preview --port=8080
  domweave preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from domweave.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from domweave.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log file changes")

	return cmd
}

func runPreview(port int, host string, verbose bool) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}

	srv := preview.NewServer(preview.ServerOptions{
		Config:  cfg,
		Verbose: verbose,
		OnReload: func(clients int) {
			info("Reloaded %d browser(s)", clients)
		},
	})

	printBanner()
	fmt.Println()
	info("Reference at %s", srv.URL())
	info("Metrics at   %s/metrics", srv.URL())
	info("Press Ctrl+C to stop")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
