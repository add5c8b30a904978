package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	_ "assistencia_tecnica/docs"
	"assistencia_tecnica/internal/adapter/http/handlers"
	"assistencia_tecnica/internal/adapter/persistence/dynamostore"
	"assistencia_tecnica/internal/adapter/persistence/repository"
	"assistencia_tecnica/internal/adapter/persistence/sqlitestore"
	"assistencia_tecnica/internal/config"
	"assistencia_tecnica/internal/infrastructure/auth"
	"assistencia_tecnica/internal/infrastructure/database"
	"assistencia_tecnica/internal/infrastructure/metrics"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// app holds the wired use cases behind the router.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	data     *usecase.DataAggregator
	catalog  *usecase.ServiceCatalogUseCase
	profiles *usecase.UserProfileUseCase
	close    func()
}

// Run wires the store, loads the initial snapshot and serves HTTP until
// the server fails.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	a, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	// The service starts even when the first load fails; clients retry
	// through /v1/state/reload.
	if err := a.data.ReloadAll(ctx); err != nil {
		logger.Warn("initial load failed", zap.Error(err))
	}

	return a.router().Run(":" + strconv.Itoa(cfg.Port))
}

func build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	identity := auth.ContextIdentity{}
	clients := repository.NewClientRepository(store, identity, logger, cfg.CascadeParallelism)
	equipment := repository.NewEquipmentRepository(store, identity, logger, cfg.CascadeParallelism)
	tickets := repository.NewTicketRepository(store, identity, logger)
	descriptions := repository.NewServiceDescriptionRepository(store, logger)
	profiles := repository.NewUserProfileRepository(store, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		data:     usecase.NewDataAggregator(clients, equipment, tickets, loc, logger.Named("aggregator")),
		catalog:  usecase.NewServiceCatalogUseCase(descriptions, identity),
		profiles: usecase.NewUserProfileUseCase(profiles, identity),
		close:    closeStore,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (interfaces.IDocumentStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlitestore.New(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return metrics.NewInstrumentedStore(store, config.DriverSQLite), func() { db.Close() }, nil
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		store := dynamostore.New(ddb, cfg.DynamoDB.TablePrefix)
		return metrics.NewInstrumentedStore(store, config.DriverDynamoDB), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

func (a *app) router() *gin.Engine {
	router := gin.New()
	a.setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	clientHandler := handlers.NewClientHandler(a.data)
	serviceHandler := handlers.NewServiceHandler(a.data)
	catalogHandler := handlers.NewCatalogHandler(a.catalog, a.profiles)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(auth.Middleware(auth.NewVerifier(a.cfg.JWTSecret), a.cfg.AuthRequired, a.logger))
	addDataRoutes(private, clientHandler, serviceHandler)
	addCatalogRoutes(private, catalogHandler)

	return router
}

func (a *app) setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		a.logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
