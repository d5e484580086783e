package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jreidinger/pull-requests-reminder/internal/config"
	"github.com/jreidinger/pull-requests-reminder/internal/domain"
	"github.com/jreidinger/pull-requests-reminder/internal/gateway"
	"github.com/jreidinger/pull-requests-reminder/internal/logging"
	"github.com/jreidinger/pull-requests-reminder/internal/report"
	"github.com/jreidinger/pull-requests-reminder/internal/usecase"
)

func runRemind(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return domain.ErrUsage
	}
	org, whitelist := args[0], args[1:]

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.New(cfg.Verbose)

	// Inject dependencies and run the main business logic.
	githubGateway, err := gateway.NewGitHubGateway(gateway.Options{
		Token:            cfg.Token,
		BaseURL:          cfg.APIURL,
		MaxSecondaryWait: cfg.MaxSecondaryWait,
	}, logger.WithName("gateway"))
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	reminder := usecase.NewReminder(
		usecase.NewAggregator(githubGateway, logger.WithName("aggregator"), cfg.MaxPages),
		usecase.NewFilter(githubGateway, logger.WithName("filter"), time.Now),
		cfg.Concurrency,
		logger.WithName("reminder"),
	)

	result, err := reminder.Run(cmd.Context(), org, whitelist)
	if err != nil {
		return fmt.Errorf("failed to collect pending pull requests of %s: %w", org, err)
	}

	// The digest is printed even when the run was cut short.
	if err := report.Print(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	if result.Truncated() {
		return fmt.Errorf("report is incomplete: %w", result.Err)
	}
	return nil
}
