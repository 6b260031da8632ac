package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tamalife/internal/ui"
)

const Version = "0.3.0"

type rootOptions struct {
	configPath string
	profile    string
	dataDir    string
	storage    string
	notifier   string
	seed       uint64
	logMode    string
}

var opts rootOptions

var rootCmd = &cobra.Command{
	Use:           "tamalife",
	Short:         "A virtual pet that grows up in your terminal",
	Long:          "tamalife raises a pet through egg, child, teen, adult and elder stages, with skills, a shop and a legacy that carries into the next life.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/tamalife/config.yaml)")
	flags.StringVar(&opts.profile, "profile", "", "save profile name")
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory for saves and logs")
	flags.StringVar(&opts.storage, "storage", "", "storage backend: json or sqlite")
	flags.StringVar(&opts.notifier, "notifier", "", "notifications: termux, log or none")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	flags.StringVar(&opts.logMode, "log-mode", "", "log mode: dev or prod")

	play := newPlayCmd()
	rootCmd.RunE = play.RunE
	rootCmd.Flags().AddFlagSet(play.Flags())

	rootCmd.AddCommand(
		play,
		newStatusCmd(),
		newStatsCmd(),
		newDoCmd(),
		newShopCmd(),
		newBuyCmd(),
		newRetireCmd(),
		newLegacyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}
