package main

import (
	"log"

	_ "assistencia_tecnica/docs"
	"assistencia_tecnica/internal/adapter/http/routes"
	"assistencia_tecnica/internal/config"
	"assistencia_tecnica/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Assistência Técnica API
// @version         1.0
// @description     Clients, equipment, service tickets and quotes of a repair shop.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	lg.Info("starting api",
		zap.Int("port", cfg.Port),
		zap.String("store", cfg.StoreDriver),
		zap.Bool("auth_required", cfg.AuthRequired),
	)
	if err := routes.Run(cfg, lg); err != nil {
		lg.Fatal("failed to startup the application", zap.Error(err))
	}
}
