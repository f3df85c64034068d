package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/logging"
	"userhub/internal/model"
	"userhub/internal/repository"
	"userhub/internal/service"
)

// demoUsers are optional fixtures for local development.
var demoUsers = []service.CreateUserInput{
	{Name: "Ann", Email: "ann@example.com", Age: 30},
	{Name: "Bob", Email: "bob@example.com", Age: 44},
	{Name: "Carol", Email: "carol@example.com", Age: 27},
}

func main() {
	demo := flag.Bool("demo", false, "also insert demo users")
	flag.Parse()

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

	if err := gormDB.AutoMigrate(&model.User{}, &model.Role{}); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	if err := roleRepo.SeedDefaults(ctx); err != nil {
		logger.Fatal("seed role catalog", zap.Error(err))
	}
	logger.Info("role catalog seeded", zap.Int("roles", len(model.DefaultRoles)))

	if !*demo {
		return
	}

	userRepo := repository.NewUserRepository(gormDB)
	svc := service.NewUserService(userRepo, roleRepo)
	created := 0
	for _, in := range demoUsers {
		user, err := svc.CreateUser(ctx, in)
		if err != nil {
			logger.Fatal("create demo user", zap.String("name", in.Name), zap.Error(err))
		}
		logger.Info("demo user created", zap.Uint("id", user.ID), zap.String("name", user.Name))
		created++
	}
	logger.Info("seed completed", zap.Int("demo_users", created))
}
