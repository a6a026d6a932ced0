package ws

import (
	"sync"
)

type Conn interface {
	Send(ev Event) error
	Close() error
	UserID() int64
	CollabID() int64
}

// Hub — процессный реестр комнат: collabID -> множество живых соединений.
// Комната создаётся при первом Add и удаляется, когда множество пустеет.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[int64]map[Conn]struct{})}
}

func (h *Hub) Add(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rs, ok := h.rooms[c.CollabID()]
	if !ok {
		rs = make(map[Conn]struct{})
		h.rooms[c.CollabID()] = rs
	}
	rs[c] = struct{}{}
}

func (h *Hub) Remove(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rs, ok := h.rooms[c.CollabID()]; ok {
		delete(rs, c)
		if len(rs) == 0 {
			delete(h.rooms, c.CollabID())
		}
	}
}

// Broadcast отдаёт событие всем соединениям комнаты. Send только ставит
// событие в исходящую очередь соединения, так что медленный получатель
// не задерживает остальных.
func (h *Hub) Broadcast(collabID int64, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if rs, ok := h.rooms[collabID]; ok {
		for c := range rs {
			_ = c.Send(ev) // best-effort
		}
	}
}

// RoomSize — число соединений в комнате; 0, если комнаты нет.
func (h *Hub) RoomSize(collabID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[collabID])
}

// HasRoom — есть ли запись реестра для комнаты.
func (h *Hub) HasRoom(collabID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.rooms[collabID]
	return ok
}
