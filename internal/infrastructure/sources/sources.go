package sources

import (
	"context"
	"fmt"

	"contabilidad_orquestador/internal/adapter/persistence/repository"
	"contabilidad_orquestador/internal/config"
	"contabilidad_orquestador/internal/infrastructure/database"
	"contabilidad_orquestador/internal/infrastructure/upstream"
	"contabilidad_orquestador/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NewSourceGateway picks the collection backend named in cfg.Sources.Backend.
func NewSourceGateway(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.ISourceGateway, error) {
	switch cfg.Sources.Backend {
	case config.BackendHTTP:
		log.Info("using http sources",
			zap.String("invoices", cfg.Sources.InvoicesURL()),
			zap.String("payments", cfg.Sources.PaymentsURL()),
			zap.String("customers", cfg.Sources.CustomersURL()),
			zap.Duration("timeout", cfg.Sources.Timeout),
		)
		return upstream.NewHTTPSourceGateway(cfg.Sources, nil, log), nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		log.Info("using dynamodb sources",
			zap.String("region", cfg.DynamoDB.Region),
			zap.String("endpoint", cfg.DynamoDB.Endpoint),
			zap.Duration("timeout", cfg.Sources.Timeout),
		)
		return repository.NewSourceDynamoRepository(ddb, cfg.DynamoDB, cfg.Sources.Timeout, log), nil
	}
	return nil, fmt.Errorf("unknown sources backend %q", cfg.Sources.Backend)
}
