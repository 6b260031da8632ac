package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tamalife/internal/game"
	"tamalife/internal/pet"
	"tamalife/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List items, decorations and legacy bonuses for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.session.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Coins", s.Coins)+"   "+ui.LabelValue("Stardust", ui.Gold.Render(fmt.Sprintf("✨ %d", s.Stardust))))
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.Heading.Render("Items"))
			for _, item := range pet.Items() {
				fmt.Fprintf(out, "  %s %-13s %4d  %s\n", item.Emoji, item.Name, item.Price,
					ui.Muted.Render(fmt.Sprintf("(have %d)", s.Inventory[item.Name])))
			}

			fmt.Fprintln(out, ui.Heading.Render("Decorations"))
			for _, d := range pet.Decorations() {
				owned := ""
				if s.HasDecor(d.Name) {
					owned = ui.Good.Render("owned")
				}
				fmt.Fprintf(out, "  %s %-13s %4d  %s\n", d.Emoji, d.Name, d.Price, owned)
			}

			fmt.Fprintln(out, ui.Heading.Render("Legacy (stardust)"))
			for _, name := range pet.LegacyBonuses {
				fmt.Fprintf(out, "  %-16s %4d  %s\n", name, s.LegacyCost(name),
					ui.Muted.Render(fmt.Sprintf("(now x%.1f)", s.Legacy(name))))
			}
			return nil
		},
	}
	return cmd
}

func newLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Spend stardust and browse retired pets",
	}

	buy := &cobra.Command{
		Use:   "buy <" + strings.Join(pet.LegacyBonuses, "|") + ">",
		Short: "Buy a permanent legacy bonus with stardust",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, game.Command{Action: pet.ActionBuyLegacy, Arg: strings.ToLower(args[0])})
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "List retired pets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			retired, err := a.codec.History(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(retired) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No retired pets yet."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading.Render("Hall of fame"))
			for _, r := range retired {
				fmt.Fprintf(out, "  %s  %-12s lv %-3d %-8s\n", r.RetiredAt.Local().Format("2006-01-02"), r.Name, r.Level, r.Evolution)
			}
			return nil
		},
	}

	cmd.AddCommand(buy, history)
	return cmd
}
