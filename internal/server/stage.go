package server

// ChangeStage advances a room's stage at the host's request. The progression
// is monotonic: intro -> discussion -> voting, skipping forward is allowed,
// moving back is not. Non-host requests are rejected with an explicit error
// rather than silently dropped.
func (s *Store) ChangeStage(roomID, connID, target string) (map[string]any, error) {
	rank, ok := stageRank[target]
	if !ok {
		return nil, ErrUnknownStage
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if err := requireHost(room, connID); err != nil {
		return nil, err
	}
	if rank < stageRank[room.Stage] {
		return nil, ErrStageRegression
	}
	room.Stage = target
	return snapshot(room), nil
}

func requireHost(room *Room, connID string) error {
	host, ok := room.Host()
	if !ok || host != connID {
		return ErrNotHost
	}
	return nil
}
