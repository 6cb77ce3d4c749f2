package main

import (
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sandevgo/eventdash/internal/config"
	"github.com/sandevgo/eventdash/internal/providers/ariba"
	"github.com/sandevgo/eventdash/internal/providers/llm"
	"github.com/sandevgo/eventdash/internal/server"
	"github.com/sandevgo/eventdash/internal/service/composer"
	"github.com/sandevgo/eventdash/internal/service/orchestrator"
	"github.com/sandevgo/eventdash/pkg/log"
	"github.com/sandevgo/eventdash/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		// Optional .env for local development
		if err := godotenv.Load(); err == nil {
			logger.Debug().Msg("loaded .env")
		}

		logger.Info().Msg("starting eventdash")

		aribaCfg := config.NewAribaConfig(ctx)
		llmCfg := config.NewLLMConfig(ctx)
		serverCfg := config.NewServerConfig(ctx)

		gen, err := llm.NewProvider(llmCfg)
		if err != nil {
			return err
		}
		if gen == nil {
			logger.Warn().Msg("no AI credential configured, chat endpoint will report errors")
		}

		handler := server.NewHandler(
			composer.New(ariba.NewTokenClient(aribaCfg), ariba.NewClient(aribaCfg)),
			orchestrator.New(gen),
		)

		services := []srv.Service{
			server.New(serverCfg, handler),
		}

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)

		logger.Info().Msg("eventdash has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
