package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "b2b_sourcing/docs"
	"b2b_sourcing/internal/adapter/http/routes"
	"b2b_sourcing/internal/infrastructure/config"
	"b2b_sourcing/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           B2B Sourcing API
// @version         1.0
// @description     Quote requests, ranked vendor quotes and order tracking backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorRole
// @in header
// @name X-Actor-Role
// @description buyer, vendor or admin.

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-ID

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("failed to start up the application", zap.Error(err))
	}
}
