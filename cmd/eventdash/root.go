package main

import (
	"context"
	"os"

	"github.com/sandevgo/eventdash/internal/config"
	"github.com/sandevgo/eventdash/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "eventdash",
	Short: "EventDash — sourcing event dashboard API",
	Long:  `EventDash composes SAP Ariba sourcing events and serves them to the dashboard, with an AI assistant for summaries and chat.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
