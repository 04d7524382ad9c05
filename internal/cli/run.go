package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qiyin-tech/expload/internal/config"
	"github.com/qiyin-tech/expload/internal/logging"
	"github.com/qiyin-tech/expload/internal/notify"
	"github.com/qiyin-tech/expload/internal/services"
	"github.com/qiyin-tech/expload/internal/store"
	"github.com/qiyin-tech/expload/pkg/expload"
)

// resolveConfig layers flags, environment and expload.yaml into a validated
// LoadConfig for the invoking subcommand.
func resolveConfig(cmd *cobra.Command) (expload.LoadConfig, error) {
	flags := config.Flags{
		RedisAddr:        globalFlags.redisAddr,
		RedisAddrSet:     cmd.Flags().Changed("redis-addr"),
		RedisPassword:    globalFlags.redisPwd,
		RedisPasswordSet: cmd.Flags().Changed("redis-pwd"),
		FilePath:         globalFlags.file,
		WebhookURL:       globalFlags.webhookURL,
		WebhookURLSet:    cmd.Flags().Changed("webhook-url"),
		Verbose:          getVerboseFlag(cmd),
	}
	return config.Resolve(flags)
}

// loadFunc runs one loader against a ready LoadService.
type loadFunc func(ctx context.Context, svc *services.LoadService, cfg expload.LoadConfig) (*expload.Summary, error)

// runLoad is the shared command runner: resolve configuration, connect to
// Redis, execute the loader, report the summary and fire the optional
// webhook. The connection is held for the whole command and released on
// every exit path.
func runLoad(cmd *cobra.Command, command string, fn loadFunc) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(cfg.Verbose)
	logger.Info("command: %s", command)
	logger.Info("redis_addr: %s", cfg.RedisAddr)
	logger.Info("file: %s", cfg.FilePath)

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling load...")
		cancel()
	}()

	st, err := store.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := services.NewLoadService(st, logger)
	logger.Verbose("Run ID: %s", svc.RunID())

	summary, err := fn(ctx, svc, cfg)
	if err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}

	logger.Info("Loaded %d record(s), %d field(s), %d skipped in %s",
		summary.Records, summary.Fields, summary.Skipped,
		summary.Duration.Round(time.Millisecond))

	notify.NewNotifier(cfg.WebhookURL, logger).Notify(ctx, summary)
	return nil
}
