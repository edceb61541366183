package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"startup-hub-api/internal/client"
	"startup-hub-api/internal/config"
	"startup-hub-api/internal/database"
	"startup-hub-api/internal/job"
	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/repository"
	"startup-hub-api/internal/router"
)

// @title           Startup Hub API
// @version         1.0
// @description     スタートアップ支援情報ディレクトリの REST API
// @BasePath        /api
// @securityDefinitions.apikey AdminAuth
// @in              header
// @name            Authorization
func main() {
	// .env は開発用。無ければ黙って環境変数にフォールバック
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := initLogger(cfg.Logger.Level)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	gin.SetMode(cfg.Server.Mode)

	m := metrics.NewWithLogger(logger)

	db, err := database.New(database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("データベース接続に失敗", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrateWithRetry(db, logger, 5); err != nil {
		logger.Fatal("マイグレーションに失敗", zap.Error(err))
	}

	database.RegisterMetricsCallbacks(db, m)
	dbStatsDone := database.StartDBStatsCollector(db, m)
	defer close(dbStatsDone)

	// redis は落ちていてもサービスは動く(キャッシュなしで DB 直行)
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("redis 接続に失敗。リスティングキャッシュなしで起動します", zap.Error(err))
		redisClient = nil
	}

	geocoder := client.NewGeocodeClient(cfg.Geocode, m, logger)

	countJob := newEntryCountJob(db, m, logger)
	countJob.Run()
	scheduler := cron.New()
	if _, err := scheduler.AddJob("@every 5m", countJob); err != nil {
		logger.Warn("エントリ数ジョブの登録に失敗", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	engine := router.Setup(router.Config{
		DB:          db,
		Redis:       redisClient,
		Logger:      logger,
		Metrics:     m,
		AdminSecret: cfg.Auth.AdminSecret,
		BasePath:    cfg.Server.BasePath,
		ListingTTL:  cfg.Redis.ListingTTL,
		Geocoder:    geocoder,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("サーバー起動",
			zap.String("port", cfg.Server.Port),
			zap.String("base_path", cfg.Server.BasePath),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバーの起動に失敗", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("シャットダウン開始")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("シャットダウンに失敗", zap.Error(err))
	}
	logger.Info("サーバー停止完了")
}

func newEntryCountJob(db *gorm.DB, m *metrics.Metrics, logger *zap.Logger) *job.EntryCountJob {
	return job.NewEntryCountJob(
		repository.NewContestRepository(db),
		repository.NewOpenCallRepository(db),
		repository.NewSubsidyRepository(db),
		repository.NewEventRepository(db),
		repository.NewFacilityRepository(db),
		repository.NewKnowledgeRepository(db),
		repository.NewAssetProvisionRepository(db),
		repository.NewTechnologyRepository(db),
		repository.NewStartupBoardRepository(db),
		repository.NewLocationRepository(db),
		repository.NewWorkspaceRepository(db),
		m,
		logger,
	)
}

func initLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	return logger
}
