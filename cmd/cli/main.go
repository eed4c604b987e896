package main

import (
	"context"
	"fmt"
	"os"

	"contabilidad_orquestador/internal/adapter/cli"
	"contabilidad_orquestador/internal/config"
	"contabilidad_orquestador/internal/infrastructure/sources"
	"contabilidad_orquestador/internal/logger"
	"contabilidad_orquestador/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	var log *zap.Logger

	factory := func(ctx context.Context) (usecase.IDebtUseCase, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		// stdout carries the command output.
		if log, err = logger.NewWithOutput(cfg.LogLevel, "stderr"); err != nil {
			return nil, err
		}
		gateway, err := sources.NewSourceGateway(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return usecase.NewDebtUseCase(gateway, log, cfg.ReportTopDefault), nil
	}

	err := cli.NewRootCommand(factory).ExecuteContext(context.Background())
	if log != nil {
		_ = log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
