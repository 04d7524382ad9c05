package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/pkg/expload"
)

var actionScoreCmd = &cobra.Command{
	Use:   "action-score",
	Short: "Load per-version action scores",
	Long: `Load per-version action scores into expversion:score:default:<version>.

Each line of the input file is "<version>=<JSON numeric array>". Every line
targets its own hash named after the version; array elements become fields
named by their zero-based index (the action id). The first malformed line or
invalid array aborts the command; hashes written for earlier lines stay.

Example:
  expload action-score -f scores.txt
  # scores.txt: v20231101=[0.12,0.34,0.56]`,
	RunE: runActionScore,
}

func init() {
	rootCmd.AddCommand(actionScoreCmd)
}

func runActionScore(cmd *cobra.Command, args []string) error {
	return runLoad(cmd, "action-score", func(ctx context.Context, svc *services.LoadService, cfg expload.LoadConfig) (*expload.Summary, error) {
		return svc.LoadActionScores(ctx, cfg.FilePath)
	})
}
