package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/pkg/expload"
)

var abParamsType string

var abParamsCmd = &cobra.Command{
	Use:   "ab-params",
	Short: "Load AB experiment parameters",
	Long: `Load AB experiment parameters into the cfg:exp:ab hash.

Each non-blank line of the input file is a key=value record; the field name
is "<key>:<type>" with the document type from --type. Lines that are not a
single key=value pair are skipped, not fatal: AB parameter files are edited
by hand and one typo must not block the rest of the file.

Examples:
  expload ab-params -t fill -f ab_fill.txt
  expload ab-params -t click -f ab_click.txt --redis-addr 10.0.0.5:6379`,
	RunE: runABParams,
}

func init() {
	rootCmd.AddCommand(abParamsCmd)

	abParamsCmd.Flags().StringVarP(&abParamsType, "type", "t", "",
		"AB document type: fill|show|click (required)")
	_ = abParamsCmd.MarkFlagRequired("type")
}

func runABParams(cmd *cobra.Command, args []string) error {
	kind, err := expload.ParseABKind(abParamsType)
	if err != nil {
		return err
	}

	return runLoad(cmd, "ab-params", func(ctx context.Context, svc *services.LoadService, cfg expload.LoadConfig) (*expload.Summary, error) {
		return svc.LoadABParams(ctx, cfg.FilePath, kind)
	})
}
