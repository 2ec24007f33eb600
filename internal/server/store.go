package server

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"decision-city/internal/config"
)

// Store is the room registry. One mutex serializes every mutation, so each
// operation is an atomic read-modify-snapshot sequence and broadcasts always
// reflect fully applied state.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	cfg   config.Config
	rand  *rand.Rand
}

func NewStore(cfg config.Config) *Store {
	return &Store{
		rooms: make(map[string]*Room),
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ensureRoomLocked creates the room on first sight of an identifier. Any
// string is a valid room id.
func (s *Store) ensureRoomLocked(id string) *Room {
	room, ok := s.rooms[id]
	if !ok {
		room = &Room{
			ID:        id,
			Stage:     stageIntro,
			CreatedAt: time.Now().UTC(),
		}
		s.rooms[id] = room
	}
	return room
}

// removeIfEmptyLocked forgets a room once both lists are empty. Reports
// whether the room was removed.
func (s *Store) removeIfEmptyLocked(id string) bool {
	room, ok := s.rooms[id]
	if !ok {
		return false
	}
	if !room.Empty() {
		return false
	}
	delete(s.rooms, id)
	return true
}

func (s *Store) Snapshot(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, false
	}
	return snapshot(room), true
}

func (s *Store) RoomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

func (s *Store) ListRoomSummaries() []RoomSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]RoomSummary, 0, len(s.rooms))
	for _, room := range s.rooms {
		list = append(list, RoomSummary{
			ID:         room.ID,
			Stage:      room.Stage,
			Players:    len(room.Players),
			Spectators: len(room.Spectators),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
