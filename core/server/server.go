package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"room-booking-api/core/config"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/auth"
	"room-booking-api/modules/booking"
	"room-booking-api/modules/department"
	"room-booking-api/modules/notification"
	"room-booking-api/modules/notification/tasks"
	"room-booking-api/modules/room"
	"room-booking-api/modules/settings"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// Server owns the HTTP listener and the asynq worker; both share one process
// so a deployment is a single binary plus Postgres and Redis.
type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	queueClient *asynq.Client
	queueServer *asynq.Server
	redisClient *redis.Client
}

func New(cfg *config.Config) (*Server, error) {
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return nil, err
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	queueClient := asynq.NewClient(redisOpt)
	queueServer := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
	})

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())
	e.Use(mw.Prometheus())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	var idb database.IDatabase = &db

	settingsSvc := settings.Init(e, idb, rdb, mw)
	roomSvc := room.Init(e, idb, mw)
	deptSvc := department.Init(e, idb, mw)
	auth.Init(e, deptSvc)
	notificationSvc := notification.Init(e, idb)
	booking.Init(e, idb, mw, roomSvc, settingsSvc, queueClient)

	srv := &Server{
		echo:        e,
		cfg:         cfg,
		queueClient: queueClient,
		queueServer: queueServer,
		redisClient: rdb,
	}

	mux := asynq.NewServeMux()
	tasks.NewHandler(notificationSvc).Register(mux)
	go func() {
		if err := queueServer.Run(mux); err != nil {
			logger.Error("Server:Worker:Stopped", "error", err)
		}
	}()

	return srv, nil
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	logger.Info("Server:Start", "addr", addr)

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains the HTTP server, stops the worker, and closes the queue
// and cache connections.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Server:Shutdown:Start")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := s.echo.Shutdown(shutdownCtx)

	s.queueServer.Shutdown()
	if cerr := s.queueClient.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := s.redisClient.Close(); cerr != nil && err == nil {
		err = cerr
	}

	logger.Info("Server:Shutdown:Done")
	return err
}
