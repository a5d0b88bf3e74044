package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/eseries/decade"
	"github.com/calebcase/eseries/internal/config"
	"github.com/calebcase/eseries/series"
)

func newSeriesCmd() *cobra.Command {
	var exponent int

	cmd := &cobra.Command{
		Use:   "series [NAME]",
		Short: "List the values of a series",
		Example: `  eseries series E12
  eseries series --decade 3 E6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Find(cfgFile)
			if err != nil {
				return cmdError("loading config", err)
			}

			name := cfg.Series
			if len(args) == 1 {
				name = args[0]
			}

			s, err := series.Parse(name)
			if err != nil {
				return cmdError("invalid series", err)
			}

			t, err := s.Table()
			if err != nil {
				return cmdError("invalid series", err)
			}

			tolerance, err := s.Tolerance()
			if err != nil {
				return cmdError("invalid series", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s: %d values, %g%%\n", s, t.Len(), tolerance)
			for i := 0; i < t.Len(); i++ {
				fmt.Fprintf(out, "%g\n", decade.Scale(float64(t.Hundredths(i)), exponent-2))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&exponent, "decade", 0, "power of ten to scale the values by")

	return cmd
}
