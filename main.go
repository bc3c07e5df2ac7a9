package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"room-booking-api/core/config"
	"room-booking-api/core/logger"
	"room-booking-api/core/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Main:Config:Error", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger.Level, cfg.Logger.Format)

	srv, err := server.New(cfg)
	if err != nil {
		logger.Error("Main:Server:Error", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("Main:Server:Stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("Main:Shutdown:Error", "error", err)
		os.Exit(1)
	}
}
