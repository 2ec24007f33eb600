package server

// RoomChange reports the outcome of a membership sweep for one room.
type RoomChange struct {
	RoomID   string
	Snapshot map[string]any
	Removed  bool
}

// Join adds a connection to a room as a player or spectator and returns the
// resulting snapshot. A connection joining a room it already belongs to is
// moved, never duplicated, so the membership invariant holds across re-joins.
func (s *Store) Join(roomID, connID, name, kind string) (map[string]any, error) {
	if kind != kindPlayer && kind != kindSpectator {
		return nil, ErrInvalidKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.ensureRoomLocked(roomID)
	removeConn(room, connID)
	if kind == kindPlayer && s.cfg.MaxPlayers > 0 && len(room.Players) >= s.cfg.MaxPlayers {
		s.removeIfEmptyLocked(roomID)
		return nil, ErrRoomFull
	}

	participant := Participant{ConnID: connID, Name: name, Kind: kind}
	if kind == kindPlayer {
		room.Players = append(room.Players, participant)
	} else {
		room.Spectators = append(room.Spectators, participant)
	}
	return snapshot(room), nil
}

// Disconnect removes a connection from every room it appears in. A connection
// is expected to belong to at most one room, but the sweep is safe over all of
// them. Each affected room yields a change entry; untouched rooms yield none,
// so repeating the call is harmless.
func (s *Store) Disconnect(connID string) []RoomChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes := make([]RoomChange, 0, 1)
	for id, room := range s.rooms {
		if _, ok := room.findParticipant(connID); !ok {
			continue
		}
		removeConn(room, connID)
		change := RoomChange{RoomID: id}
		if s.removeIfEmptyLocked(id) {
			change.Removed = true
		} else {
			change.Snapshot = snapshot(room)
		}
		changes = append(changes, change)
	}
	return changes
}

// ParticipantName resolves the display name a connection joined a room with.
func (s *Store) ParticipantName(roomID, connID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return "", false
	}
	participant, ok := room.findParticipant(connID)
	if !ok {
		return "", false
	}
	return participant.Name, true
}

// removeConn drops the connection from both lists and clears any vote it cast
// in the active round. Role assignments are kept: the mapping reflects the
// players present at assignment time.
func removeConn(room *Room, connID string) {
	room.Players = filterOut(room.Players, connID)
	room.Spectators = filterOut(room.Spectators, connID)
	if room.Votes != nil {
		delete(room.Votes, connID)
	}
}

func filterOut(list []Participant, connID string) []Participant {
	kept := list[:0]
	for _, p := range list {
		if p.ConnID != connID {
			kept = append(kept, p)
		}
	}
	return kept
}
