package main

import (
	"context"
	"embed"
	"log"
	"time"

	"winelab/adapters/source"
	"winelab/domain/dataset"
	"winelab/internal"
	"winelab/internal/config"
	"winelab/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

//go:embed ui/templates/* ui/static/*
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	logger := internal.NewDefaultLogger()

	table, err := loadTable(cfg, logger)
	if err != nil {
		// Data-unavailable is fatal: no section can render without the table.
		log.Fatalf("Dataset load failed: %v", err)
	}
	logger.Info("Loaded wine quality dataset: %d rows, %d columns", table.Rows(), len(table.Names()))

	server, err := ui.NewServer(table, embeddedFiles, logger)
	if err != nil {
		log.Fatalf("Server setup failed: %v", err)
	}
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadTable reads the dataset from the configured local file when set,
// otherwise fetches the fixed remote address.
func loadTable(cfg *config.Config, logger *internal.Logger) (*dataset.Table, error) {
	if cfg.Data.LocalFile != "" {
		logger.Info("Loading dataset from local file %s", cfg.Data.LocalFile)
		return source.LoadFile(cfg.Data.LocalFile)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Data.FetchTimeoutSeconds)*time.Second)
	defer cancel()
	return source.NewLoader(cfg.Data.CacheFile).Load(ctx)
}
