package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	colorize "github.com/fatih/color"
	"github.com/phanxgames/arcana/internal/deck"
	"github.com/spf13/cobra"
)

var checkVerbose bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a deck directory",
	Long: `Check reads deck.toml from the deck directory and verifies that every
card and back it names exists. With --verbose it also lists each image's size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return checkDeck(cmd.OutOrStdout(), cfg.Deck.Path, cfg.Deck.Cards, checkVerbose, deckFS(cfg))
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "list every image with its size")
}

var errCheckFailed = errors.New("deck check failed")

func checkDeck(w io.Writer, path string, want int, verbose bool, fsys fs.FS) error {
	m, err := deck.LoadManifest(fsys)
	var unknown *deck.UnknownKeysError
	switch {
	case errors.As(err, &unknown):
	case err != nil:
		return fmt.Errorf("%s: %w", path, err)
	}

	res := m.Validate(fsys, want)
	if unknown != nil {
		for _, k := range unknown.Keys {
			res.Warnings = append(res.Warnings, "unknown key "+k)
		}
	}

	fmt.Fprintf(w, "%s %s\n", colorize.HiWhiteString(m.Deck.Name), colorize.CyanString("(%s %s)", m.Deck.ID, m.Deck.Version))
	if m.Deck.Author != "" {
		fmt.Fprintf(w, "by %s\n", m.Deck.Author)
	}

	if verbose {
		fmt.Fprintln(w)
		for i, c := range m.Cards {
			fmt.Fprintf(w, "%2d. %-24s %s\n", i+1, c.Name, imageSize(fsys, c.Image))
		}
		fmt.Fprintf(w, "    %-24s %s\n", "common back", imageSize(fsys, m.Backs.Common))
		if m.Backs.Rare != "" {
			fmt.Fprintf(w, "    %-24s %s\n", "rare back", imageSize(fsys, m.Backs.Rare))
		}
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, colorize.YellowString("Warnings:"))
		for i, warn := range res.Warnings {
			fmt.Fprintf(w, "%d. %s\n", i+1, warn)
		}
	}

	fmt.Fprintln(w)
	if !res.OK() {
		fmt.Fprintln(w, colorize.RedString("%d errors:", len(res.Errors)))
		for i, e := range res.Errors {
			fmt.Fprintf(w, "%d. %s\n", i+1, e)
		}
		return errCheckFailed
	}
	fmt.Fprintln(w, colorize.GreenString("%d cards, deck is valid", len(m.Cards)))
	return nil
}

func imageSize(fsys fs.FS, name string) string {
	cfg, err := deck.DecodeConfig(fsys, name)
	if err != nil {
		return colorize.RedString("unreadable")
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
}
