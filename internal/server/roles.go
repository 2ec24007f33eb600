package server

// roleCatalogue holds the eight discussion roles of the scenario. Catalogue
// size is independent of player count; labels wrap when players outnumber
// them.
var roleCatalogue = []string{
	"School Principal",
	"Teen Artist",
	"Police Officer",
	"Arts Teacher",
	"Student's Parent",
	"Community Representative",
	"Psychologist",
	"Journalist",
}

// AssignRoles gives every current player a label from the catalogue:
// shuffle without replacement, wrapping by index once the catalogue is
// exhausted. Host only. Re-assignment overwrites the prior mapping; players
// joining later have no entry until the next assignment.
//
// Returns the room snapshot plus a per-connection mapping so each player can
// be told their own label individually.
func (s *Store) AssignRoles(roomID, connID string) (map[string]any, map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	if err := requireHost(room, connID); err != nil {
		return nil, nil, err
	}

	order := s.rand.Perm(len(roleCatalogue))
	roles := make(map[string]string, len(room.Players))
	byConn := make(map[string]string, len(room.Players))
	for i, player := range room.Players {
		label := roleCatalogue[order[i%len(order)]]
		roles[player.Name] = label
		byConn[player.ConnID] = label
	}
	room.Roles = roles
	return snapshot(room), byConn, nil
}
