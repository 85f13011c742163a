// Command letters solves a Countdown letters game: given a pool of
// letters and a word list, it prints the words spellable from the
// pool, longest first, up to the -m result cap.
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conwaylabs/countdown/internal/config"
	"github.com/conwaylabs/countdown/internal/countdown"
	"github.com/conwaylabs/countdown/internal/countdown/letters"
	"github.com/conwaylabs/countdown/internal/countdown/printer"
	"github.com/conwaylabs/countdown/internal/countdown/wordlist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var maxResults int
	var wordListFlag string

	cmd := &cobra.Command{
		Use:          "letters LETTERS",
		Short:        "Solve a Countdown letters game.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxResults <= 0 {
				return countdown.Errorf("max-results must be positive: %d", maxResults)
			}
			path := wordListFlag
			if path == "" {
				path = defaultWordListPath()
			}
			cfg := config.New()
			cfg.SetMaxResults(maxResults)
			cfg.SetWordListPath(path)
			return run(cmd.OutOrStdout(), args[0], cfg)
		},
	}
	cmd.Flags().IntVarP(&maxResults, "max-results", "m", config.DefaultMaxResults,
		"maximum number of output results")
	cmd.Flags().StringVarP(&wordListFlag, "word-list", "w", "",
		"word list file name (default "+config.DefaultWordListFile+")")
	return cmd
}

func run(w io.Writer, pool string, cfg *config.Config) error {
	words, err := wordlist.Load(cfg.WordListPath())
	if err != nil {
		return err
	}

	results := letters.Solve(pool, words, cfg.MaxResults())
	for _, r := range results {
		printer.Int(w, r.Length, r.Word)
	}
	return nil
}

// defaultWordListPath resolves the default dictionary next to the
// letters binary rather than relative to the caller's working
// directory.
func defaultWordListPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.DefaultWordListFile
	}
	return filepath.Join(filepath.Dir(exe), config.DefaultWordListFile)
}
