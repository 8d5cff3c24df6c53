package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"workbook-generator/internal/config"
	"workbook-generator/internal/platform"
	"workbook-generator/internal/web"
	"workbook-generator/internal/workbook"
)

// ServeCmd returns the serve command.
func ServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the workbook generation HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := newServer(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)

			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			slog.Info("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return <-errCh
		},
	}
}

func newServer(cfg *config.Config) (*web.Server, error) {
	rc, err := workbook.ParseReferenceCheck(cfg.Generation.ReferenceCheck)
	if err != nil {
		return nil, err
	}

	deps := web.Deps{
		Introspector: newIntrospector(cfg, nil),
		Options: workbook.Options{
			ReferenceCheck: rc,
			Workers:        cfg.Generation.Workers,
		},
	}

	if cfg.Platform.Enabled() {
		client, err := platform.NewClient(cfg.Platform.URL, cfg.Platform.APIKey)
		if err != nil {
			return nil, err
		}

		deps.Creator = client
	}

	return web.NewServer(cfg.Server, deps), nil
}
