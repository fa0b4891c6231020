package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"site-backend/internal/api"
	"site-backend/internal/auth"
	"site-backend/internal/config"
	"site-backend/internal/logger"
	"site-backend/internal/repository"
	"site-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	dev := cfg.Env == "development"

	zl, err := logger.New(dev)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	mc, err := repository.NewMongoClient(context.Background(), cfg.MongoURI)
	if err != nil {
		zl.Fatalf("mongo connect: %v", err)
	}
	zl.Info("connected to MongoDB")

	db := mc.Database(cfg.MongoDB)
	reviews := repository.NewReviewRepo(db.Collection("reviews"))
	consultations := repository.NewConsultationRepo(db.Collection("messages"))

	files, err := storage.NewDiskStore(cfg.UploadDir, cfg.VideoDir)
	if err != nil {
		zl.Fatalf("storage init: %v", err)
	}

	gate := auth.NewGate(cfg.AdminUser, cfg.AdminPass)

	app := api.New(cfg, reviews, consultations, files, gate)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		zl.Infof("server running on http://localhost%s", addr)
		if err := app.Listen(addr); err != nil {
			zl.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	zl.Info("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.ShutdownWithContext(ctx)
	_ = mc.Disconnect(ctx)
	zl.Info("shutdown completed")
}
