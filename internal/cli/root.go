package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "expload",
	Short: "Load experiment parameter files into Redis",
	Long: `expload reads structured experiment-parameter files from disk and publishes
them into Redis hashes under the namespaces the online serving side reads:
AB test parameters, default action choices and per-version action scores.

One file, one command, one Redis connection. No retries, no partial-success
reporting: the first fatal error aborts the run and earlier writes stay
committed.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Redis connection failed
  12 - Input file missing or unreadable
  13 - Store write failed
  14 - Malformed input record
  15 - Value was not a JSON numeric array
  16 - Subcommand not implemented`,
	SilenceUsage: true,
}

// globalFlagValues holds the persistent flags shared by every subcommand.
type globalFlagValues struct {
	redisAddr  string
	redisPwd   string
	file       string
	webhookURL string
}

var globalFlags globalFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	rootCmd.PersistentFlags().StringVar(&globalFlags.redisAddr, "redis-addr", "",
		"Redis address as host:port\n"+
			"Precedence: --redis-addr > $EXPLOAD_REDIS_ADDR > expload.yaml > 127.0.0.1:6379")
	rootCmd.PersistentFlags().StringVar(&globalFlags.redisPwd, "redis-pwd", "",
		"Redis password (default: none)\n"+
			"Precedence: --redis-pwd > $EXPLOAD_REDIS_PWD > expload.yaml")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.file, "file", "f", "",
		"Target filename to be loaded (required)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.webhookURL, "webhook-url", "",
		"Webhook URL notified after a successful load (optional)\n"+
			"Must be an absolute URL when given")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
