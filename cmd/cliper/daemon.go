package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-clip-keeper/internal/client"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Capture the clipboard until interrupted",
		Long: `Polls the system clipboard and stores every change.

The master key is unlocked at start unless --start-locked is set. While the
key is locked only file references are captured. Send SIGHUP to unlock a
running daemon (for example after auto-lock).`,
		Args: cobra.NoArgs,
		RunE: withApp("cliper-daemon", runDaemon),
	}
}

func runDaemon(ctx context.Context, _ *cobra.Command, app *client.App, log *logger.Logger) error {
	info := buildInfo()
	log.Info().
		Str("version", valueOr(info.BuildVersion(), "N/A")).
		Str("commit", valueOr(info.BuildCommit(), "N/A")).
		Msg("cliper daemon starting")

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	unlockOnHUP := workers.WorkerFunc(func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-hup:
				if err := app.Clip().Unlock(ctx); err != nil {
					log.Err(err).Msg("unlock on SIGHUP failed")
					continue
				}
				log.Info().Msg("unlocked on SIGHUP")
			}
		}
	})

	return app.RunDaemon(ctx, unlockOnHUP)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
