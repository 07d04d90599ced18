// @title        Protein Needs Calculator API
// @version      1.0
// @description  Daily protein estimate from body weight, activity and goal.
// @BasePath     /
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ProteinCalculator/internal/config"
	"ProteinCalculator/internal/logger"
	"ProteinCalculator/internal/reference"
	"ProteinCalculator/internal/server"

	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("PROTEIN_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[Fatal] %v", err)
	}

	zl, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("[Fatal] %v", err)
	}
	defer func() { _ = zl.Sync() }()

	content, err := reference.Load()
	if err != nil {
		zl.Fatal("load reference content", zap.Error(err))
	}

	router, err := server.New(cfg, content, zl)
	if err != nil {
		zl.Fatal("build router", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, router, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
