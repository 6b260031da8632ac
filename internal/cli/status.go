package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tamalife/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print a one-line status, suitable for a shell prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			a.session.Tick()
			s := a.session.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", s.StageEmoji, s.Name, s.Status)
			return a.session.Save(ctx)
		},
	}
	return cmd
}

func newStatsCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the full character sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			a.session.Tick()
			if err := a.session.Save(ctx); err != nil {
				return err
			}
			s := a.session.Snapshot()
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), ui.StatsCard(s))
				return nil
			}
			return ui.DisplayStats(s)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print instead of opening a screen")
	return cmd
}
