package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-clip-keeper/internal/client"
	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/tui"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const defaultListLimit = 50

func newListCmd() *cobra.Command {
	var (
		limit  int
		kinds  []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent items, pinned first",
		Args:  cobra.NoArgs,
		RunE: withApp("cliper-cli", func(ctx context.Context, cmd *cobra.Command, app *client.App, log *logger.Logger) error {
			filter := make([]models.Kind, 0, len(kinds))
			for _, k := range kinds {
				kind, err := models.ParseKind(k)
				if err != nil {
					return err
				}
				filter = append(filter, kind)
			}

			// previews need the key; listing still works without it
			if err := app.Clip().Unlock(ctx); err != nil {
				log.Warn().Err(err).Msg("could not unlock, text previews are hidden")
			}

			views, err := app.Clip().ListRecent(ctx, limit, filter...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			_, err = fmt.Fprint(out, tui.RenderItems(views, !app.Clip().IsUnlocked(), time.Now()))
			return err
		}),
	}

	f := cmd.Flags()
	f.IntVarP(&limit, "limit", "n", defaultListLimit, "Maximum number of items (0 lists everything)")
	f.StringSliceVarP(&kinds, "kind", "k", nil, "Only list these kinds: text,image,file")
	f.BoolVar(&asJSON, "json", false, "Print items as JSON")

	return cmd
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy ID",
		Short: "Put a stored item back on the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp("cliper-cli", func(ctx context.Context, _ *cobra.Command, app *client.App, _ *logger.Logger) error {
				if err := app.Clip().Unlock(ctx); err != nil {
					return err
				}
				return app.Clip().CopyItem(ctx, id)
			})(cmd, args)
		},
	}
}

func newPinCmd() *cobra.Command {
	var unpin bool

	cmd := &cobra.Command{
		Use:   "pin ID",
		Short: "Pin an item to the top of the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp("cliper-cli", func(ctx context.Context, _ *cobra.Command, app *client.App, _ *logger.Logger) error {
				return app.Clip().PinItem(ctx, id, !unpin)
			})(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&unpin, "unpin", false, "Clear the pin instead")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete one item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp("cliper-cli", func(ctx context.Context, _ *cobra.Command, app *client.App, _ *logger.Logger) error {
				return app.Clip().DeleteItem(ctx, id)
			})(cmd, args)
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole history",
		Args:  cobra.NoArgs,
		RunE: withApp("cliper-cli", func(ctx context.Context, cmd *cobra.Command, app *client.App, _ *logger.Logger) error {
			n, err := app.Clip().ClearHistory(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d items\n", n)
			return err
		}),
	}
}

func newResetKeyCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-key",
		Short: "Replace the master key",
		Long: `Deletes the stored master key and creates a new one.

Every item stored so far becomes permanently unreadable. Rows are kept and
can be removed with "cliper clear".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset the master key without --yes")
			}
			return withApp("cliper-cli", func(ctx context.Context, cmd *cobra.Command, app *client.App, _ *logger.Logger) error {
				if err := app.Clip().ResetMasterKey(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "master key replaced")
				return err
			})(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm that existing items become unreadable")

	return cmd
}

func newPreviewCmd() *cobra.Command {
	var (
		out     string
		maxSide int
	)

	cmd := &cobra.Command{
		Use:   "preview ID",
		Short: "Write a scaled PNG preview of an image item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp("cliper-cli", func(ctx context.Context, cmd *cobra.Command, app *client.App, _ *logger.Logger) error {
				if err := app.Clip().Unlock(ctx); err != nil {
					return err
				}
				png, err := app.Clip().ImagePreview(ctx, id, maxSide)
				if err != nil {
					return err
				}
				if out == "" || out == "-" {
					_, err = cmd.OutOrStdout().Write(png)
					return err
				}
				return os.WriteFile(out, png, 0o600)
			})(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	f.IntVar(&maxSide, "max", clipboard.DefaultPreviewSide, "Longest side of the preview in pixels")

	return cmd
}
