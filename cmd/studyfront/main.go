package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/image-ranking-studies/studyfront/internal/config"
	"github.com/image-ranking-studies/studyfront/internal/logger"
	"github.com/image-ranking-studies/studyfront/internal/server"
	"github.com/image-ranking-studies/studyfront/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "studyfront",
		Short: "Study front-end server",
		Long:  `Front-end server for crowdsourced image ranking and rating studies`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return err
	}

	log := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
	slog.SetDefault(log)

	log.Info("starting study front-end",
		slog.String("version", version.Get().Version),
		slog.String("environment", cfg.Environment),
	)

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.Error("failed to set up server", slog.String("error", err.Error()))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		return err
	}

	log.Info("shutdown complete")
	return nil
}
