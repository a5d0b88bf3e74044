package cmd

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/calebcase/eseries"
	"github.com/calebcase/eseries/internal/config"
)

type roundFlags struct {
	series    string
	direction string
	tolerance float64
	workers   int
}

func newRoundCmd() *cobra.Command {
	f := &roundFlags{}

	cmd := &cobra.Command{
		Use:   "round VALUE...",
		Short: "Round values to a series",
		Long: `Round each VALUE to the configured series and print the input and the
rounded value separated by a tab.

With --tolerance the series is chosen from the tolerance class. The rounded
value is NOT guaranteed to be within that tolerance of the input.`,
		Example: `  eseries round 53000
  eseries round -s E12 -d up 4.9e-9 120e3
  eseries round -t 1 1234`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRound(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.series, "series", "s", "", "series, e.g. E24 or E12|E48")
	flags.StringVarP(&f.direction, "direction", "d", "", "nearest, up or down")
	flags.Float64VarP(&f.tolerance, "tolerance", "t", 0, "select the series by tolerance in percent")
	flags.IntVarP(&f.workers, "workers", "w", 0, "number of values rounded concurrently")

	return cmd
}

func runRound(cmd *cobra.Command, f *roundFlags, args []string) (err error) {
	cfg, err := config.Find(cfgFile)
	if err != nil {
		return cmdError("loading config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("series") {
		cfg.Series = f.series
		cfg.Tolerance = nil
	}
	if flags.Changed("direction") {
		cfg.Direction = f.direction
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = &f.tolerance
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}

	r, err := cfg.Validate()
	if err != nil {
		return cmdError("invalid configuration", err)
	}

	s := r.Series

	glog.V(1).Infof("rounding %d values: series=%v direction=%v workers=%d", len(args), s, r.Direction, r.Workers)

	values := make([]float64, len(args))
	for i, arg := range args {
		values[i], err = strconv.ParseFloat(arg, 64)
		if err != nil {
			return cmdError("invalid value", err)
		}
	}

	results, err := eseries.RoundAll(cmd.Context(), values, s, r.Direction, r.Workers)
	if err != nil {
		return cmdError("rounding failed", err)
	}

	out := cmd.OutOrStdout()
	for i := range values {
		fmt.Fprintf(out, "%s\t%g\n", args[i], results[i])
	}

	return nil
}
