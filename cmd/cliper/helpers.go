package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-clip-keeper/internal/client"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
)

// runFunc is the body of a command that needs the wired application.
type runFunc func(ctx context.Context, cmd *cobra.Command, app *client.App, log *logger.Logger) error

// withApp loads the configuration, builds the logger and the application,
// and runs fn with a context cancelled on SIGINT/SIGTERM. An unusable data
// directory is fatal.
func withApp(role string, fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetStructuredConfig(cmd.Flags())
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		log := logger.NewLogger(role, logger.Options{
			Level:  cfg.Log.Level,
			Format: logger.ParseFormat(cfg.Log.Format),
		})
		log.Debug().Any("config", redacted(cfg)).Msg("received configs")

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		ctx, log = log.WithTraceID(ctx)

		application, err := client.NewApp(ctx, cfg, log)
		if err != nil {
			if errors.Is(err, store.ErrStorageInit) {
				log.Fatal().Err(err).Str("data_dir", cfg.Storage.DataDir).Msg("data directory is unusable")
			}
			return err
		}
		defer func() {
			if cerr := application.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("error closing application")
			}
		}()

		return fn(ctx, cmd, application, log)
	}
}

// redacted returns a copy of cfg that is safe to log.
func redacted(cfg *config.StructuredConfig) config.StructuredConfig {
	out := *cfg
	if out.Keystore.Passphrase != "" {
		out.Keystore.Passphrase = "***"
	}
	return out
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}
