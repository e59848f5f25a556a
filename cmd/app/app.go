package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/api"
	"github.com/vietanh2810/raffle-api/internal/config"
	"github.com/vietanh2810/raffle-api/internal/db"
	"github.com/vietanh2810/raffle-api/internal/logger"
	"github.com/vietanh2810/raffle-api/internal/repository"
	"github.com/vietanh2810/raffle-api/internal/service"
	"github.com/vietanh2810/raffle-api/internal/worker"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	raffles := service.NewRaffleService(repository.NewStore(postgresDB), time.Now)

	var rdb *redis.Client
	if conf.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		defer rdb.Close()
	}

	if conf.Worker.Enabled {
		w := worker.New(conf.Worker, worker.RedisOpt(conf.Redis), worker.NewHandler(raffles))
		if err = w.Start(context.Background()); err != nil {
			return fmt.Errorf("failed to start the worker -> %w", err)
		}
		defer w.Shutdown()
	}

	s := api.NewServer(conf, postgresDB, raffles, rdb)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
