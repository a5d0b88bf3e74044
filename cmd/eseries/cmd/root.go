// Package cmd implements the eseries command line.
package cmd

import (
	goflag "flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/calebcase/eseries/internal/config"
)

var cfgFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eseries",
		Short: "Round component values to IEC 60063 E series",
		Long: `eseries rounds resistance, capacitance and inductance values to the
IEC 60063 preferred-value series independent of scale.

Series:
  E3    >20%   E6   20%   E12  10%   E24  5%
  E48     2%   E96   1%   E192 0.5%`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the standard flag set.
			return goflag.CommandLine.Parse(nil)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or "+config.DefaultPath+")")
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(newRoundCmd())
	root.AddCommand(newSeriesCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// cmdError logs err with its trace and returns it with msg prepended. cobra
// prints the returned error once; warnings stay out of stderr unless
// -stderrthreshold is lowered.
func cmdError(msg string, err error) error {
	glog.Warningf("%s: %+v", msg, err)

	return fmt.Errorf("%s: %w", msg, err)
}
