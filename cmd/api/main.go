package main

import (
	"fmt"
	"os"

	_ "contabilidad_orquestador/docs"
	"contabilidad_orquestador/internal/adapter/http/routes"
	"contabilidad_orquestador/internal/config"
	"contabilidad_orquestador/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Contabilidad Orquestador API
// @version         1.0
// @description     Consolida facturas, pagos y clientes de los servicios contables y calcula deuda y morosidad.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(cfg, log); err != nil {
		log.Error("failed to run the application", zap.Error(err))
		os.Exit(1)
	}
}
