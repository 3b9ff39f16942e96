package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vicholitvak/moai-logistics/internal/pkg/config"
	"github.com/vicholitvak/moai-logistics/internal/pkg/database"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	natspkg "github.com/vicholitvak/moai-logistics/internal/pkg/nats"
	nrpkg "github.com/vicholitvak/moai-logistics/internal/pkg/newrelic"

	dispatchgateway "github.com/vicholitvak/moai-logistics/services/dispatch/gateway"
	dispatchusecase "github.com/vicholitvak/moai-logistics/services/dispatch/usecase"
	driversgateway "github.com/vicholitvak/moai-logistics/services/drivers/gateway"
	driversrepository "github.com/vicholitvak/moai-logistics/services/drivers/repository"
	driversusecase "github.com/vicholitvak/moai-logistics/services/drivers/usecase"
	ordersgateway "github.com/vicholitvak/moai-logistics/services/orders/gateway"
	ordersrepository "github.com/vicholitvak/moai-logistics/services/orders/repository"
	ordersusecase "github.com/vicholitvak/moai-logistics/services/orders/usecase"
	pricingusecase "github.com/vicholitvak/moai-logistics/services/pricing/usecase"
	zonesrepository "github.com/vicholitvak/moai-logistics/services/zones/repository"
	zonesusecase "github.com/vicholitvak/moai-logistics/services/zones/usecase"
)

const appName = "dispatcher"

// The dispatcher is the external retry loop for assignment: ready orders
// that missed their event-driven planning attempt (no driver around, a
// crashed planner, a lost message) get retried on a fixed interval.
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

	zoneRepo := zonesrepository.NewZoneRepository(db, redisClient)
	zoneUC := zonesusecase.NewZoneUC(zoneRepo)
	pricingUC := pricingusecase.NewEstimatorUC(configs, zoneUC)

	driverRepo := driversrepository.NewDriverRepository(db, redisClient)
	driverGW := driversgateway.NewDriverGW(natsClient)
	driverUC := driversusecase.NewDirectoryUC(configs, driverRepo, driverGW)

	orderRepo := ordersrepository.NewOrderRepository(db)
	orderGW := ordersgateway.NewOrderGW(natsClient)
	orderUC := ordersusecase.NewOrderUC(orderRepo, pricingUC, orderGW)

	dispatchGW := dispatchgateway.NewDispatchGW(natsClient)
	dispatchUC := dispatchusecase.NewPlannerUC(configs, orderUC, driverUC, pricingUC, dispatchGW)

	interval := time.Duration(configs.Assignment.PollIntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Dispatcher started", logger.Duration("interval", interval))

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			if err := dispatchUC.PlanPending(ctx); err != nil {
				logger.Error("Planning pass failed", logger.Err(err))
			}
			cancel()
		case sig := <-stop:
			logger.Info("Shutting down dispatcher", logger.String("signal", sig.String()))
			return
		}
	}
}
