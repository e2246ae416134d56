package main

import (
	"flag"
	"log/slog"
	"os"

	"aoa/internal/config"
	"aoa/internal/handler"
	"aoa/internal/logger"
	"aoa/internal/model"
	"aoa/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.DailyLog{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	logSvc := service.NewLogService(db)
	userSvc := service.NewUserService(db)

	r := handler.NewRouter(
		handler.NewUserHandler(userSvc),
		handler.NewLogHandler(logSvc),
		cfg.Server.AllowOrigins,
		cfg.Server.IdentitySecret,
	)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
