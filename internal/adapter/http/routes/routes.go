package routes

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "agency_estimator/docs" // generated by swag init
	"agency_estimator/internal/adapter/http/handlers"
	"agency_estimator/internal/adapter/persistence/repository"
	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/infrastructure/catalog"
	"agency_estimator/internal/infrastructure/config"
	"agency_estimator/internal/infrastructure/contacts"
	"agency_estimator/internal/infrastructure/database"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/infrastructure/metrics"
	"agency_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// application holds everything the router needs once dependencies are wired.
type application struct {
	log                 logger.Logger
	rdb                 *redis.Client
	catalogHandler      *handlers.CatalogHandler
	estimateHandler     *handlers.EstimateHandler
	wizardHandler       *handlers.WizardHandler
	consultationHandler *handlers.ConsultationHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()
	appLog := logger.NewZapAdapter(zl)

	if cfg.HTTP.Port <= 0 {
		cfg.HTTP.Port = 8080
	}
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := build(context.Background(), cfg, appLog)
	if err != nil {
		appLog.WithError(err).Error("failed to wire dependencies", nil)
		os.Exit(1)
	}
	defer func() { _ = app.rdb.Close() }()

	router := newRouter(app)
	appLog.Info("estimator api listening", map[string]interface{}{"port": cfg.HTTP.Port})
	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		appLog.WithError(err).Error("failed to startup the application", nil)
		os.Exit(1)
	}
}

func build(ctx context.Context, cfg *config.Config, appLog logger.Logger) (*application, error) {
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	estimator, err := pricing.NewEstimator(cat, cfg.Pricing.RangeBand)
	if err != nil {
		return nil, err
	}

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	if err := database.PingRedis(ctx, rdb); err != nil {
		// Sessions fail per request until Redis is back; the catalog and stateless quotes keep working.
		appLog.WithError(err).Warn("redis unreachable at startup", nil)
	}

	awsCfg, err := database.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	ddb := database.NewDynamoDB(awsCfg, cfg.DynamoDB)

	gateway, err := contacts.New(cfg.Contacts, awsCfg, appLog)
	if err != nil {
		return nil, err
	}

	sessionRepo := repository.NewWizardSessionRedisRepository(rdb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable)
	consultationRepo := repository.NewConsultationDynamoRepository(ddb, cfg.DynamoDB.ConsultationsTable)

	catalogUseCase := usecase.NewCatalogUseCase(cat, estimator.RangeBand())
	estimateUseCase := usecase.NewEstimateUseCase(estimator, appLog)
	wizardUseCase := usecase.NewWizardUseCase(sessionRepo, estimator, cfg.Wizard.SessionTTL, appLog)
	consultationUseCase := usecase.NewConsultationUseCase(sessionRepo, quoteRepo, consultationRepo, gateway, estimator, appLog)

	appLog.Info("dependencies wired", map[string]interface{}{
		"services":         len(cat.Services()),
		"contacts_mode":    gateway.Provider(),
		"session_ttl":      cfg.Wizard.SessionTTL.String(),
		"default_currency": string(cat.DefaultCurrency()),
	})

	return &application{
		log:                 appLog,
		rdb:                 rdb,
		catalogHandler:      handlers.NewCatalogHandler(catalogUseCase),
		estimateHandler:     handlers.NewEstimateHandler(estimateUseCase, appLog),
		wizardHandler:       handlers.NewWizardHandler(wizardUseCase, appLog),
		consultationHandler: handlers.NewConsultationHandler(consultationUseCase, appLog),
	}, nil
}

func loadCatalog(path string) (*entities.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func newRouter(app *application) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, app.log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthz(app.rdb))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addEstimatorRoutes(v1, app)
	return router
}

func setMiddlewares(router *gin.Engine, appLog logger.Logger) {
	router.Use(requestLogger(appLog))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error("recovered from panic", map[string]interface{}{"panic": fmt.Sprint(recovered), "path": c.Request.URL.Path})
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.GinMiddleware())
}
