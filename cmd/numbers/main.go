// Command numbers solves a Countdown numbers game: given a target and
// a multiset of input numbers, it prints arithmetic expressions over
// the inputs whose value is a positive integer, ranked by closeness
// to the target.
package main

import (
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/conwaylabs/countdown/internal/config"
	"github.com/conwaylabs/countdown/internal/countdown"
	"github.com/conwaylabs/countdown/internal/countdown/numbers"
	"github.com/conwaylabs/countdown/internal/countdown/printer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:          "numbers TARGET NUMBER [NUMBER ...]",
		Short:        "Solve a Countdown numbers game.",
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxResults <= 0 {
				return countdown.Errorf("max-results must be positive: %d", maxResults)
			}
			cfg := config.New()
			cfg.SetMaxResults(maxResults)
			return run(cmd.OutOrStdout(), args, cfg)
		},
	}
	cmd.Flags().IntVarP(&maxResults, "max-results", "m", config.DefaultMaxResults,
		"maximum number of output results")
	return cmd
}

// run is the command's core: parse, compute, print, and turn any
// internal invariant violation that escapes as a panic of our own
// countdown.Error type into a returned error rather than a crash,
// while letting every other panic (a genuine programmer error)
// through unchanged.
func run(w io.Writer, args []string, cfg *config.Config) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if cerr, ok := r.(countdown.Error); ok {
			err = cerr
			return
		}
		panic(r)
	}()

	target, err := parsePositiveInt(args[0])
	if err != nil {
		return err
	}

	operands := make([]*big.Int, len(args)-1)
	for i, a := range args[1:] {
		v, err := parsePositiveInt(a)
		if err != nil {
			return err
		}
		operands[i] = v
	}

	results := numbers.Solve(target, operands, cfg.MaxResults())
	for _, r := range results {
		printer.Line(w, r.Value, r.Text)
	}
	return nil
}

func parsePositiveInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, countdown.Errorf("not integer: %q", s)
	}
	if v.Sign() <= 0 {
		return nil, countdown.Errorf("not positive: %q", s)
	}
	return v, nil
}
