package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "b2b_sourcing/docs" // registers swagger docs
	"b2b_sourcing/internal/adapter/http/handlers"
	"b2b_sourcing/internal/adapter/persistence/repository"
	"b2b_sourcing/internal/domain/quotegen"
	"b2b_sourcing/internal/infrastructure/config"
	"b2b_sourcing/internal/infrastructure/database"
	"b2b_sourcing/internal/infrastructure/metrics"
	"b2b_sourcing/internal/infrastructure/payments"
	"b2b_sourcing/internal/infrastructure/vendors"
	"b2b_sourcing/internal/usecase"
	"b2b_sourcing/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything the HTTP surface needs.
type Dependencies struct {
	Requests usecase.IQuoteRequestUseCase
	Orders   usecase.IOrderUseCase
	Metrics  *metrics.Recorder
	Logger   *zap.Logger
}

// Run wires the service from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	deps, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
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

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Build assembles repositories, adapters and use cases for the configured backend.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Dependencies, error) {
	directory, err := vendors.Load(cfg.VendorDirectoryFile)
	if err != nil {
		return Dependencies{}, fmt.Errorf("load vendor directory: %w", err)
	}

	var (
		requestRepo interfaces.IQuoteRequestRepository
		orderRepo   interfaces.IOrderRepository
	)
	switch cfg.StorageBackend {
	case config.StorageMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		requestRepo = repository.NewQuoteRequestMemoryRepository()
		orderRepo = repository.NewOrderMemoryRepository()
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg, logger)
		if err != nil {
			return Dependencies{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		requestRepo = repository.NewQuoteRequestDynamoRepository(ddb, cfg.QuoteRequestsTable)
		orderRepo = repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	recorder := metrics.New()
	requests := usecase.NewQuoteRequestUseCase(requestRepo, directory, quotegen.New(cfg.QuoteGeneratorSeed), cfg.RequestExpiryWindow, logger).
		WithMetrics(recorder)
	orders := usecase.NewOrderUseCase(orderRepo, requests, gateway, cfg.CompleteOnPayment, logger).
		WithMetrics(recorder)

	return Dependencies{Requests: requests, Orders: orders, Metrics: recorder, Logger: logger}, nil
}

// NewRouter mounts middleware, ops endpoints and the /v1 API.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", handlers.HeaderActorRole, handlers.HeaderActorID},
		MaxAge:          12 * time.Hour,
	}))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requestHandler := handlers.NewQuoteRequestHandler(deps.Requests, logger)
	orderHandler := handlers.NewOrderHandler(deps.Orders, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSourcingRoutes(v1, requestHandler, orderHandler)
	return router
}
