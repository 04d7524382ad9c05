package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/pkg/expload"
)

var actionChoiceCmd = &cobra.Command{
	Use:   "action-choice",
	Short: "Load default action choices per ad id",
	Long: `Load default action choices into the exp:default:adid:choices hash.

Each line of the input file is an "<ad id>=<action index>" record. The whole
file is parsed first and written in a single bulk HSET; the first malformed
line aborts the command before anything is written, and an empty file writes
nothing at all.

Example:
  expload action-choice -f choices.txt`,
	RunE: runActionChoice,
}

func init() {
	rootCmd.AddCommand(actionChoiceCmd)
}

func runActionChoice(cmd *cobra.Command, args []string) error {
	return runLoad(cmd, "action-choice", func(ctx context.Context, svc *services.LoadService, cfg expload.LoadConfig) (*expload.Summary, error) {
		return svc.LoadActionChoice(ctx, cfg.FilePath)
	})
}
