package main

import (
	"net/http"

	"tabsync/config"
	"tabsync/config/database"
	"tabsync/internal/tab/repository"
	"tabsync/pkg/logger"
	"tabsync/router"
	"tabsync/socket"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("Invalid configuration: %v", err)
	}

	db := database.Connect(cfg)
	defer db.Close()

	repo := repository.NewTabRepository(db)

	// The hub's event loop runs for the process lifetime. It pushes every
	// saved tab to connected websocket subscribers.
	hub := socket.NewHub(repo)
	go hub.Run()

	handler := router.Setup(repo, hub, cfg)

	logger.Sugar.Infof("Server running on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
