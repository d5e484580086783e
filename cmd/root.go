// Package cmd contains the CLI of the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jreidinger/pull-requests-reminder/internal/config"
	"github.com/jreidinger/pull-requests-reminder/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "pr-reminder <organization> [repository...]",
	Short: "Prints pull requests of a GitHub organization that wait for too long.",
	Long: `pr-reminder lists the open pull requests of every repository of a GitHub
organization and prints those not updated for more than 3 days (5 days on
Mondays and Tuesdays, so weekends do not count). Draft pull requests are ignored.
Pass repository names after the organization to restrict the report to them.

The API token is read from GH_API_TOKEN, or from a file named api_token next to
the executable. Without a token, requests are sent anonymously.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRemind,
}

// Execute runs the root command and exits with a status derived from the error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetOut(os.Stdout)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to process exit codes:
// 1 usage or general failure, 2 report cut short by an API error, 3 network failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrRequest):
		return 2
	case errors.Is(err, domain.ErrNetworkFailure):
		return 3
	default:
		return 1
	}
}

func init() {
	// Add a persistent flag for verbose output.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	config.RegisterFlags(rootCmd.PersistentFlags())
}
