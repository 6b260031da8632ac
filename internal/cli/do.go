package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tamalife/internal/game"
	"tamalife/internal/pet"
	"tamalife/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <action> [arg]",
		Short: "Perform one action without opening the screen",
		Long:  "Perform one action without opening the screen.\n\n" + game.HelpText(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("action is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := game.ParseCommand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			switch c.Action {
			case game.ActionQuit, game.ActionStatus, game.ActionHelp:
				return fmt.Errorf("%s only works inside play", c.Action)
			}
			return runAction(cmd, c)
		},
	}
	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item|decoration>",
		Short: "Buy from the shop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, game.Command{Action: pet.ActionBuy, Arg: strings.ToLower(args[0])})
		},
	}
	return cmd
}

func newRetireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Retire an elder and start a new life with its stardust",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, game.Command{Action: pet.ActionRetire})
		},
	}
	return cmd
}

// runAction loads the pet, performs one command and saves. A rejected action
// is reported but still saves the ticked pet.
func runAction(cmd *cobra.Command, c game.Command) error {
	ctx := context.Background()
	a, cleanup, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out, actErr := a.session.Act(ctx, c)
	if err := a.session.Save(ctx); err != nil {
		return err
	}

	var rejected *pet.ActionError
	if errors.As(actErr, &rejected) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(rejected.Reason.Message()))
		return nil
	}
	if actErr != nil {
		return actErr
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(out.Message))
	if out.XP > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("+%.1f xp", out.XP)))
	}
	return nil
}
