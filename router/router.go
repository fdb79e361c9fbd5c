package router

import (
	"net/http"

	"tabsync/config"
	tabHandler "tabsync/internal/tab"
	"tabsync/internal/tab/repository"
	"tabsync/internal/tab/service"
	"tabsync/middleware"
	"tabsync/socket"
)

func Setup(repo *repository.TabRepository, hub *socket.Hub, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// WebSocket feed
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWs(hub, w, r)
	})

	// REST API
	tabService := service.NewTabService(repo, hub, cfg.StrictListErrors)
	h := tabHandler.NewTabHandler(tabService)

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/tabs", h.Tabs)

	return middleware.CORSMiddleware(mux)
}
