package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans change notifications out to every connected dashboard. There is
// a single global feed: folder and submission mutations are rare enough
// that clients just refetch the list they are showing.
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.readPump(conn)
	go h.writePump(conn)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

func (h *Hub) GetStats() map[string]interface{} {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	return map[string]interface{}{
		"connected_clients": len(h.Clients),
	}
}

func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.Unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.Clients[conn]
	h.Mutex.RUnlock()
	if client == nil {
		return
	}
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

type listChangedEvent struct {
	Type       string `json:"type"`
	Department string `json:"department,omitempty"`
	FolderID   string `json:"folderId,omitempty"`
}

// BroadcastFolderListChanged tells clients watching a department to
// refetch its folder list.
func BroadcastFolderListChanged(department string) {
	broadcastEvent(listChangedEvent{Type: "folder_list_changed", Department: department})
}

// BroadcastSubmissionListChanged tells clients watching a folder to
// refetch its submissions.
func BroadcastSubmissionListChanged(folderID string) {
	broadcastEvent(listChangedEvent{Type: "submission_list_changed", FolderID: folderID})
}

func broadcastEvent(event listChangedEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.Broadcast(data)
}
