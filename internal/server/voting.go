package server

import "strings"

// defaultVoteOptions are the scenario's suggested resolutions, offered to the
// host over the HTTP API. Hosts may start a round with any option set.
var defaultVoteOptions = []string{
	"Punish Those Responsible",
	"Organize Legal Street Art",
	"Hold Negotiations",
	"Another Solution",
}

// StartVoting opens a voting round with the given options. Host only. Any
// prior tally is reset and the stage moves to voting in the same update, so
// clients observe both changes in one snapshot.
func (s *Store) StartVoting(roomID, connID string, options []string) (map[string]any, error) {
	cleaned, err := normalizeOptions(options)
	if err != nil {
		return nil, err
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
	room.VoteOptions = cleaned
	room.Votes = make(map[string]string)
	room.Stage = stageVoting
	return snapshot(room), nil
}

// SubmitVote records a player's vote for one of the active options. Votes are
// keyed by connection id, so voting again overwrites instead of duplicating:
// the tally total always equals the number of distinct players who voted.
func (s *Store) SubmitVote(roomID, connID, option string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	participant, ok := room.findParticipant(connID)
	if !ok {
		return nil, ErrParticipantNotFound
	}
	if participant.Kind != kindPlayer {
		return nil, ErrNotPlayer
	}
	if len(room.VoteOptions) == 0 {
		return nil, ErrNoVoting
	}
	if !containsOption(room.VoteOptions, option) {
		return nil, ErrInvalidOption
	}
	room.Votes[connID] = option
	return snapshot(room), nil
}

func normalizeOptions(options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, ErrInvalidOptions
	}
	seen := make(map[string]struct{}, len(options))
	cleaned := make([]string, 0, len(options))
	for _, option := range options {
		trimmed := strings.TrimSpace(option)
		if trimmed == "" {
			return nil, ErrInvalidOptions
		}
		if _, dup := seen[trimmed]; dup {
			return nil, ErrInvalidOptions
		}
		seen[trimmed] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned, nil
}

func containsOption(options []string, option string) bool {
	for _, candidate := range options {
		if candidate == option {
			return true
		}
	}
	return false
}
