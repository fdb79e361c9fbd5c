package handler

import (
	"encoding/json"
	"net/http"

	"tabsync/internal/tab/model"
	"tabsync/internal/tab/service"
	"tabsync/pkg/logger"
)

type TabHandler struct {
	Service *service.TabService
}

func NewTabHandler(service *service.TabService) *TabHandler {
	return &TabHandler{Service: service}
}

func (h *TabHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Backend is healthy!"))
}

// Tabs dispatches /tabs by method: GET lists, POST upserts.
func (h *TabHandler) Tabs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getTabs(w, r)
	case http.MethodPost:
		h.saveTab(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TabHandler) getTabs(w http.ResponseWriter, r *http.Request) {
	tabs, err := h.Service.ListTabs()
	if err != nil {
		// Only reachable in strict mode; the default policy answers an
		// empty list instead.
		logger.Sugar.Errorf("Error fetching tabs: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tabs)
}

func (h *TabHandler) saveTab(w http.ResponseWriter, r *http.Request) {
	var req model.SaveTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Field presence is part of the body's shape: id, title, content and
	// created_at must all be sent, only parent_id may be omitted.
	if !req.Complete() {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tab := req.Tab()
	if err := h.Service.SaveTab(tab); err != nil {
		// Write failures abort the request; the client sees the dropped
		// connection rather than a structured error.
		logger.Sugar.Errorf("Failed to save tab %s: %v", tab.ID, err)
		panic(err)
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
