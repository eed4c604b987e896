package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "contabilidad_orquestador/docs"
	"contabilidad_orquestador/internal/adapter/http/handlers"
	"contabilidad_orquestador/internal/adapter/http/middleware"
	"contabilidad_orquestador/internal/config"
	"contabilidad_orquestador/internal/infrastructure/sources"
	"contabilidad_orquestador/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI         = "/api"
	PathSwaggerHome = "/swagger/index.html"

	shutdownTimeout = 10 * time.Second
)

// Run builds the source gateway and use case from cfg and serves HTTP until
// SIGINT/SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway, err := sources.NewSourceGateway(ctx, cfg, log)
	if err != nil {
		return err
	}
	debtUseCase := usecase.NewDebtUseCase(gateway, log, cfg.ReportTopDefault)

	gin.SetMode(cfg.GinMode)
	router := NewRouter(debtUseCase, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires middlewares, handlers, swagger and metrics on a fresh engine.
func NewRouter(debtUseCase usecase.IDebtUseCase, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	debtHandler := handlers.NewDebtHandler(debtUseCase, log)
	sourceHandler := handlers.NewSourceHandler(debtUseCase)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", sourceHandler.Liveness)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, PathSwaggerHome)
	})

	api := router.Group(PathAPI)
	addContabilidadRoutes(api, debtHandler, sourceHandler)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.Recovery(log))
}
