package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/infrastructure/storage"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/server"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/version"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// .env опционален: в проде конфиг приходит из окружения.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Warn("Failed to load .env")
	}

	logger.Log.Info("Starting game server...")
	logger.Log.Info(version.String())

	cfg := game.NewConfig()

	cat, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		logger.Log.Fatal("Catalog load error:", err)
	}

	store, err := storage.NewFileStore(cfg.SaveDir)
	if err != nil {
		logger.Log.Fatal("Storage init error:", err)
	}

	gameService := game.NewService(cfg, cat, store)
	gameService.BuildZone()
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Shutdown()

	logger.Log.Info("Done.")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	logger.Log.WithField("path", path).Info("Loading content file")
	return catalog.LoadFile(path)
}
