package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/tui"
	"github.com/MKhiriev/go-clip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cliper: %s\n", app.UserMessage(err))
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cliper",
		Short: "Encrypted local clipboard history",
		Long: `cliper keeps a local history of everything copied to the system clipboard.

Text and images are encrypted with AES-256-GCM under a master key kept in the
OS keyring (or a passphrase-sealed file). File references are stored as paths.

Run "cliper daemon" to capture the clipboard, then use list/copy/pin/delete
from any shell.

Precedence (lowest to highest): defaults, JSON file (--config),
CLIPER_* env vars, flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newDaemonCmd(),
		newListCmd(),
		newCopyCmd(),
		newPinCmd(),
		newDeleteCmd(),
		newClearCmd(),
		newResetKeyCmd(),
		newPreviewCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBuildInfo(buildInfo()))
		},
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
