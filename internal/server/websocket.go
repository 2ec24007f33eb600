package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// wsClient owns one connection. Outbound messages go through a buffered send
// channel drained by a single writer goroutine, so a slow or broken connection
// never blocks a broadcast to the rest of the room.
type wsClient struct {
	connID string
	conn   *websocket.Conn
	send   chan []byte
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// wsHub tracks live connections, their per-room broadcast groups, and the
// sequence number of the newest snapshot delivered per room.
type wsHub struct {
	mu      sync.Mutex
	clients map[string]*wsClient
	groups  map[string]map[string]struct{}
	roomSeq map[string]uint64
}

func newWSHub() *wsHub {
	return &wsHub{
		clients: make(map[string]*wsClient),
		groups:  make(map[string]map[string]struct{}),
		roomSeq: make(map[string]uint64),
	}
}

func (h *wsHub) Register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.connID] = c
}

func (h *wsHub) Subscribe(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.groups[roomID]
	if group == nil {
		group = make(map[string]struct{})
		h.groups[roomID] = group
	}
	group[connID] = struct{}{}
}

// Unsubscribe removes a connection from one room's group, for joins that were
// rejected after the group subscription.
func (h *wsHub) Unsubscribe(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group, ok := h.groups[roomID]
	if !ok {
		return
	}
	delete(group, connID)
	if len(group) == 0 {
		delete(h.groups, roomID)
		delete(h.roomSeq, roomID)
	}
}

// Drop removes a connection from the hub and every group, and closes its send
// channel so the writer goroutine exits. A room's sequence tracking goes away
// with its last subscriber, so a re-created room starts fresh.
func (h *wsHub) Drop(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[connID]
	if !ok {
		return
	}
	delete(h.clients, connID)
	for roomID, group := range h.groups {
		delete(group, connID)
		if len(group) == 0 {
			delete(h.groups, roomID)
			delete(h.roomSeq, roomID)
		}
	}
	close(client.send)
}

// SendTo delivers a payload to a single connection. Fire-and-forget: the
// message is dropped if the connection's buffer is full.
func (h *wsHub) SendTo(connID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws marshal failed error=%v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[connID]
	if !ok {
		return
	}
	select {
	case client.send <- data:
	default:
	}
}

// Broadcast fans a payload out to every connection joined to a room. Enqueues
// happen under the hub lock, so all receivers observe room messages in the
// same order.
func (h *wsHub) Broadcast(roomID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws marshal failed error=%v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fanOutLocked(roomID, data)
}

// BroadcastRoom fans a room snapshot out to the room's group. The store lock
// is released before the enqueue, so two concurrent events can arrive here in
// the wrong order; seq was taken under that lock, and anything at or below the
// newest delivered sequence is dropped so the room view never rolls backwards.
func (h *wsHub) BroadcastRoom(roomID string, seq uint64, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws marshal failed error=%v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.groups[roomID]; !ok {
		return
	}
	if seq <= h.roomSeq[roomID] {
		return
	}
	h.roomSeq[roomID] = seq
	h.fanOutLocked(roomID, data)
}

func (h *wsHub) fanOutLocked(roomID string, data []byte) {
	for connID := range h.groups[roomID] {
		client, ok := h.clients[connID]
		if !ok {
			continue
		}
		select {
		case client.send <- data:
		default:
		}
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &wsClient{
		connID: uuid.NewString(),
		conn:   conn,
		send:   make(chan []byte, 32),
	}
	s.ws.Register(client)
	log.Printf("ws connected conn_id=%s remote=%s", client.connID, r.RemoteAddr)
	go client.writePump()
	go s.readWS(client)
}

func (s *Server) readWS(client *wsClient) {
	defer s.dropConnection(client.connID)
	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnected conn_id=%s error=%v", client.connID, err)
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.ws.SendTo(client.connID, serverMessage{
				Type:    msgError,
				Code:    "invalid_json",
				Message: "could not parse message",
			})
			continue
		}
		s.dispatch(client.connID, msg)
	}
}

// dropConnection runs the disconnect path: the connection leaves the hub,
// then every room it belonged to is swept and re-broadcast.
func (s *Server) dropConnection(connID string) {
	s.ws.Drop(connID)
	for _, change := range s.store.Disconnect(connID) {
		if err := s.persistEvent(change.RoomID, "participant_left", EventPayload{
			RoomID: change.RoomID,
			ConnID: connID,
		}); err != nil {
			log.Printf("persist failed room_id=%s error=%v", change.RoomID, err)
		}
		if change.Removed {
			log.Printf("room forgotten room_id=%s", change.RoomID)
			continue
		}
		s.ws.BroadcastRoom(change.RoomID, snapshotSeq(change.Snapshot), serverMessage{Type: msgRoom, Room: change.Snapshot})
	}
}
