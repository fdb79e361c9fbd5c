package socket

import (
	"encoding/json"

	"tabsync/internal/tab/model"
	"tabsync/internal/tab/repository"
	"tabsync/pkg/logger"
)

const (
	SnapshotType = "SNAPSHOT"  // Full tab list, sent once on join
	TabSavedType = "TAB_SAVED" // A tab was created or updated
)

type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans tab-save events out to every connected subscriber. There are no
// rooms: the tab list is a single shared structure, so every client gets
// every event.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan WSMessage
	Register   chan *Client
	Unregister chan *Client
	repo       *repository.TabRepository
}

func NewHub(repo *repository.TabRepository) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan WSMessage),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		repo:       repo,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			logger.Sugar.Infof("Subscriber %s connected (%d total)", client.ID, len(h.Clients))

			// Send the full tab list so the new subscriber starts from the
			// current state. A failed read degrades to an empty snapshot,
			// same policy as the list endpoint.
			tabs, err := h.repo.List()
			if err != nil {
				tabs = []model.Tab{}
			}
			payload, _ := json.Marshal(tabs)
			snapshot, _ := json.Marshal(WSMessage{Type: SnapshotType, Payload: payload})
			client.Send <- snapshot

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				logger.Sugar.Infof("Subscriber %s disconnected (%d total)", client.ID, len(h.Clients))
			}

		case msg := <-h.Broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast message: %v", err)
				continue
			}

			for client := range h.Clients {
				select {
				case client.Send <- payload:
				default:
					// If the send buffer is full, the client is lagging.
					// Drop it to prevent blocking the hub. Closing the
					// connection makes its readPump exit immediately.
					logger.Sugar.Warnf("Subscriber %s's send buffer is full. Unregistering.", client.ID)
					delete(h.Clients, client)
					close(client.Send)
					client.Conn.Close()
				}
			}
		}
	}
}

// NotifyTabSaved publishes a saved tab to all subscribers. Best effort: the
// HTTP response does not wait for delivery.
func (h *Hub) NotifyTabSaved(t model.Tab) {
	payload, err := json.Marshal(t)
	if err != nil {
		logger.Sugar.Errorf("Error marshalling tab %s for broadcast: %v", t.ID, err)
		return
	}
	h.Broadcast <- WSMessage{Type: TabSavedType, Payload: payload}
}
