package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/handler"
	"userhub/internal/logging"
	"userhub/internal/model"
	"userhub/internal/repository"
	"userhub/internal/router"
	"userhub/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Drop tables if RESET_DB is set
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		for _, table := range []interface{}{&model.Role{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn("drop table failed (may not exist)", zap.Error(err))
			}
		}
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Role{}); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)

	// Seed the role catalog
	if err := roleRepo.SeedDefaults(context.Background()); err != nil {
		logger.Fatal("seed role catalog", zap.Error(err))
	}

	// Initialize service and handlers
	userService := service.NewUserService(userRepo, roleRepo)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(userService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, logger, userHandler, roleHandler)

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
