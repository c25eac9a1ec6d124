package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/cyb3rnet/xhtml/internal/metrics"
	"github.com/cyb3rnet/xhtml/internal/preview"
	"github.com/cyb3rnet/xhtml/pkg/document"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Serve the document over HTTP, rebuilding it on every request.

Connected browsers reload when the blueprint or xhtml.json changes,
and show an error overlay when the rebuild fails. Build metrics are
exposed at /metrics.

Examples:
  xhtml serve
  xhtml serve --port=8080
  xhtml serve --no-watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, port, host, noWatch)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from xhtml.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from xhtml.json)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable file watching and live reload")

	return cmd
}

func runServe(cmd *cobra.Command, flags *globalFlags, port int, host string, noWatch bool) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	watch := cfg.Preview.Watch && !noWatch

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	collector := metrics.New(metrics.WithRegistry(registry))

	server := preview.New(preview.Config{
		Addr:        cfg.PreviewAddress(),
		ContentType: cfg.Preview.ContentType,
		LiveReload:  watch,
		Gatherer:    registry,
		Logger:      slog.Default(),
	}, func(ctx context.Context) (*document.Document, error) {
		fresh, err := loadConfig(flags)
		if err != nil {
			return nil, err
		}
		return assemble(ctx, fresh, document.WithObserver(collector))
	})

	if watch {
		w, err := server.Watch(ctx, []string{cfg.BlueprintPath(), cfg.Path()}, cfg.DebounceDuration())
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	out := cmd.OutOrStdout()
	success(out, "Previewing %s", cfg.BlueprintPath())
	info(out, "%s", cfg.PreviewURL())
	if watch {
		info(out, "Watching for changes")
	}

	return server.ListenAndServe(ctx)
}
