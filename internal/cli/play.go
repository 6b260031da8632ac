package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tamalife/internal/game"
	"tamalife/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the pet screen (the default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			foreground := func(ctx context.Context) error {
				return ui.Run(ctx, a.session, a.cfg.TickInterval)
			}
			if plain {
				foreground = func(ctx context.Context) error {
					return game.Run(ctx, a.session, ui.NewConsole(cmd.OutOrStdout()), ui.NewLineReader(cmd.InOrStdin()))
				}
			}
			a.log.Info("session started", "plain", plain, "storage", a.cfg.Storage)
			return game.RunWithAutosave(ctx, a.session, a.cfg.AutosaveInterval, foreground)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "use a line-based console instead of the full screen")
	return cmd
}
