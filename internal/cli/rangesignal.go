package cli

import (
	"github.com/spf13/cobra"

	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/pkg/expload"
)

var rangeSignalType string

var rangeSignalCmd = &cobra.Command{
	Use:   "range-signal",
	Short: "Load range/interval signal parameters (not implemented)",
	Long: `Load range/interval signal parameters.

The subcommand and its --type enumeration are part of the stable CLI surface
but no load behavior exists yet; every invocation fails with "not
implemented" before touching the input file or Redis.`,
	RunE: runRangeSignal,
}

func init() {
	rootCmd.AddCommand(rangeSignalCmd)

	rangeSignalCmd.Flags().StringVarP(&rangeSignalType, "type", "t", "",
		"Signal file type: tempt-click|fill-rate|show-rate|click-rate (required)")
	_ = rangeSignalCmd.MarkFlagRequired("type")
}

func runRangeSignal(cmd *cobra.Command, args []string) error {
	signal, err := expload.ParseSignalType(rangeSignalType)
	if err != nil {
		return err
	}

	// Validate the shared flags the same way the other subcommands do, but
	// never connect: the stub must perform no I/O.
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}

	_, err = services.LoadRangeSignal(signal)
	return err
}
