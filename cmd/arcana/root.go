package main

import (
	"github.com/spf13/cobra"
)

// options are the flags shared by the root and play commands.
type options struct {
	config   string
	deck     string
	seed     uint64
	script   string
	showFPS  bool
	debug    bool
	logLevel string
}

var opts options

// RootCmd plays the table when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:   "arcana",
	Short: "An interactive table of tarot cards",
	Long: `Arcana deals a deck onto a grid. Drag a card onto another to swap
their places, or tap it to turn it over.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&opts.config, "config", "arcana.yaml", "settings file; a missing file means defaults")
	RootCmd.PersistentFlags().StringVar(&opts.deck, "deck", "", "deck directory (overrides deck.path)")
	RootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides log.level)")

	addPlayFlags(RootCmd)
	addPlayFlags(playCmd)

	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(checkCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for stars, tilts and rare backs; 0 picks one")
	f.StringVar(&opts.script, "script", "", "YAML input script to replay")
	f.BoolVar(&opts.showFPS, "fps", false, "show FPS and TPS")
	f.BoolVar(&opts.debug, "debug", false, "log frame statistics")
}
