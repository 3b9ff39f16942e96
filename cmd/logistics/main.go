package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/vicholitvak/moai-logistics/internal/pkg/config"
	"github.com/vicholitvak/moai-logistics/internal/pkg/database"
	"github.com/vicholitvak/moai-logistics/internal/pkg/health"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/middleware"
	natspkg "github.com/vicholitvak/moai-logistics/internal/pkg/nats"
	nrpkg "github.com/vicholitvak/moai-logistics/internal/pkg/newrelic"
	"github.com/vicholitvak/moai-logistics/internal/pkg/server"

	dispatchgateway "github.com/vicholitvak/moai-logistics/services/dispatch/gateway"
	dispatchhandler "github.com/vicholitvak/moai-logistics/services/dispatch/handler"
	dispatchusecase "github.com/vicholitvak/moai-logistics/services/dispatch/usecase"
	driversgateway "github.com/vicholitvak/moai-logistics/services/drivers/gateway"
	drivershandler "github.com/vicholitvak/moai-logistics/services/drivers/handler"
	driversrepository "github.com/vicholitvak/moai-logistics/services/drivers/repository"
	driversusecase "github.com/vicholitvak/moai-logistics/services/drivers/usecase"
	ordersgateway "github.com/vicholitvak/moai-logistics/services/orders/gateway"
	ordershandler "github.com/vicholitvak/moai-logistics/services/orders/handler"
	ordersrepository "github.com/vicholitvak/moai-logistics/services/orders/repository"
	ordersusecase "github.com/vicholitvak/moai-logistics/services/orders/usecase"
	pricinghandler "github.com/vicholitvak/moai-logistics/services/pricing/handler"
	pricingusecase "github.com/vicholitvak/moai-logistics/services/pricing/usecase"
	trackinggateway "github.com/vicholitvak/moai-logistics/services/tracking/gateway"
	trackinghandler "github.com/vicholitvak/moai-logistics/services/tracking/handler"
	trackingrepository "github.com/vicholitvak/moai-logistics/services/tracking/repository"
	trackingusecase "github.com/vicholitvak/moai-logistics/services/tracking/usecase"
	zoneshandler "github.com/vicholitvak/moai-logistics/services/zones/handler"
	zonesrepository "github.com/vicholitvak/moai-logistics/services/zones/repository"
	zonesusecase "github.com/vicholitvak/moai-logistics/services/zones/usecase"
)

const appName = "logistics-service"

func main() {
	configs := config.InitConfig(".env")

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       configs.Logger.Level,
		FilePath:    configs.Logger.FilePath,
		ServiceName: appName,
	}, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	defer pgClient.Close()
	db := pgClient.GetDB()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL, nrApp)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Zone registry
	zoneRepo := zonesrepository.NewZoneRepository(db, redisClient)
	zoneUC := zonesusecase.NewZoneUC(zoneRepo)
	zoneHandler := zoneshandler.NewHandler(zoneUC)

	// Fee estimator
	pricingUC := pricingusecase.NewEstimatorUC(configs, zoneUC)
	pricingHandler := pricinghandler.NewHandler(pricingUC)

	// Driver directory
	driverRepo := driversrepository.NewDriverRepository(db, redisClient)
	driverGW := driversgateway.NewDriverGW(natsClient)
	driverUC := driversusecase.NewDirectoryUC(configs, driverRepo, driverGW)
	driverHandler := drivershandler.NewHandler(driverUC)

	// Order state machine
	orderRepo := ordersrepository.NewOrderRepository(db)
	orderGW := ordersgateway.NewOrderGW(natsClient)
	orderUC := ordersusecase.NewOrderUC(orderRepo, pricingUC, orderGW)
	orderHandler := ordershandler.NewHandler(orderUC)

	// Location tracker
	trackerRepo := trackingrepository.NewTrackerRepository(redisClient)
	trackingGW := trackinggateway.NewTrackingGW(natsClient)
	trackingUC := trackingusecase.NewTrackerUC(trackerRepo, driverUC, orderUC, pricingUC, trackingGW)
	trackingHandler := trackinghandler.NewHandler(trackingUC)

	// Assignment planner
	dispatchGW := dispatchgateway.NewDispatchGW(natsClient)
	dispatchUC := dispatchusecase.NewPlannerUC(configs, orderUC, driverUC, pricingUC, dispatchGW)
	dispatchHandler := dispatchhandler.NewHandler(dispatchUC)

	if err := driverHandler.InitNATSConsumers(natsClient); err != nil {
		logger.Fatal("Failed to initialize driver consumers", logger.Err(err))
	}
	defer driverHandler.Close()
	if err := trackingHandler.InitNATSConsumers(natsClient); err != nil {
		logger.Fatal("Failed to initialize tracking consumers", logger.Err(err))
	}
	defer trackingHandler.Close()
	if err := dispatchHandler.InitNATSConsumers(natsClient); err != nil {
		logger.Fatal("Failed to initialize dispatch consumers", logger.Err(err))
	}
	defer dispatchHandler.Close()

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}

	health.RegisterHealthEndpoints(e, appName)

	auth := middleware.JWTAuth(configs)
	zoneHandler.RegisterRoutes(e, auth)
	pricingHandler.RegisterRoutes(e)
	driverHandler.RegisterRoutes(e, auth)
	orderHandler.RegisterRoutes(e, auth)
	trackingHandler.RegisterRoutes(e, auth)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated", logger.Err(err))
	}
}
