package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/pkg/expload"
)

var actionValueCmd = &cobra.Command{
	Use:   "action-value",
	Short: "Load the default target-CTR vector",
	Long: `Load the default target-CTR vector into cfg:exp:action:targetctr:default.

The entire input file must be a single "<key>=<JSON numeric array>" record.
Each array element is written as its own field, named by the zero-based
index (the action id).

Example:
  expload action-value -f targetctr.txt
  # targetctr.txt: default=[0.01,0.02,0.05]`,
	RunE: runActionValue,
}

func init() {
	rootCmd.AddCommand(actionValueCmd)
}

func runActionValue(cmd *cobra.Command, args []string) error {
	return runLoad(cmd, "action-value", func(ctx context.Context, svc *services.LoadService, cfg expload.LoadConfig) (*expload.Summary, error) {
		return svc.LoadActionValues(ctx, cfg.FilePath)
	})
}
