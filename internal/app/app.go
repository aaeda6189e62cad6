package app

import (
	"context"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/config"
	"rrhh-admin/internal/hrapi"
	"rrhh-admin/internal/messaging/kafka/consumer"
	"rrhh-admin/internal/middleware"
	"rrhh-admin/internal/querycache"
	"rrhh-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App is the wired service: the router to serve and the cleanup to run
// on shutdown.
type App struct {
	Router *gin.Engine
	Close  func()
}

func Build(cfg config.Config) (*App, error) {
	logger := zap.L()

	// Redis is optional. Without it the snapshot cache degrades to
	// in-process memory and idempotency replay is disabled; the service
	// still serves every screen.
	var rdb *redis.Client
	var store querycache.Store
	if client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5); err != nil {
		logger.Warn("redis unavailable, using in-process cache", zap.Error(err))
		store = querycache.NewMemoryStore()
	} else {
		rdb = client
		store = querycache.NewRedisStore(client)
	}

	cache := querycache.New(store)
	client := hrapi.NewClient(cfg.HRAPIBaseURL, cfg.HRAPITimeout)
	catalogService := catalog.NewService(client, cache, cfg.CatalogTTL, cfg.RecordsTTL)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))

	if err := registerModules(router, cfg, client, catalogService, rdb); err != nil {
		return nil, err
	}

	// The catalog-changed consumer invalidates cached snapshots when
	// other services mutate HR data. Startup is best-effort: without it
	// snapshots simply age out on their TTL.
	closeConsumer := func() {}
	if cfg.KafkaBroker != "" {
		if err := connection.PingKafkaWithRetry(cfg.KafkaBroker, 3); err != nil {
			logger.Warn("kafka unreachable, catalog change events disabled", zap.Error(err))
		} else {
			cons := consumer.NewCatalogChangedConsumer(cfg.KafkaBroker, cfg.KafkaGroupID, catalogService)
			consumerCtx, cancel := context.WithCancel(context.Background())
			go cons.Start(consumerCtx)
			closeConsumer = func() {
				cancel()
				_ = cons.Close()
			}
		}
	}

	return &App{
		Router: router,
		Close: func() {
			closeConsumer()
			if rdb != nil {
				_ = rdb.Close()
			}
		},
	}, nil
}
