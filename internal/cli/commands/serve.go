package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dictlint/internal/cli/config"
	"github.com/leapstack-labs/dictlint/internal/server"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Long: `Start an HTTP server exposing the rule catalog and batch validation.

Endpoints:
  GET  /healthz          - liveness probe
  GET  /api/v1/rules     - rule catalog as JSON
  POST /api/v1/validate  - validate a JSON batch ({"tables": [...]})`,
		Example: `  # Serve on the configured address (default :8484)
  dictlint serve

  # Serve on a custom address
  dictlint serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (default: :8484)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	c := NewCommandContext(cmd)

	// CLI flag overrides config file
	addr := c.Cfg.Serve.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}
	if addr == "" {
		addr = config.DefaultServeAddr
	}

	eng, err := buildEngine(c.Cfg, c.Logger, nil)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:   addr,
		Engine: eng,
		Logger: c.Logger,
	})

	c.Renderer.Printf("Serving validation API on %s\n", addr)
	c.Renderer.Println("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return srv.Serve(ctx)
}
