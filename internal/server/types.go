package server

import "time"

const (
	stageIntro      = "intro"
	stageDiscussion = "discussion"
	stageVoting     = "voting"
)

// stageRank orders stages for the monotonic-progression check.
var stageRank = map[string]int{
	stageIntro:      0,
	stageDiscussion: 1,
	stageVoting:     2,
}

const (
	kindPlayer    = "player"
	kindSpectator = "spectator"
)

type RoomSummary struct {
	ID         string
	Stage      string
	Players    int
	Spectators int
}

// Room is the authoritative in-memory state of one session. All fields are
// guarded by the owning Store's mutex.
type Room struct {
	ID    string
	Stage string
	// Seq advances on every snapshot taken, so each published view of the
	// room is strictly newer than the ones before it.
	Seq         uint64
	Players     []Participant
	Spectators  []Participant
	Roles       map[string]string // display name -> role label
	VoteOptions []string
	Votes       map[string]string // connection id -> option
	CreatedAt   time.Time
}

// Participant is one live connection inside a room. The name is
// client-declared and not required to be unique.
type Participant struct {
	ConnID string
	Name   string
	Kind   string
}

// Host returns the connection id of the current host: the player at index 0.
// The host changes implicitly when that player leaves.
func (r *Room) Host() (string, bool) {
	if len(r.Players) == 0 {
		return "", false
	}
	return r.Players[0].ConnID, true
}

func (r *Room) Empty() bool {
	return len(r.Players) == 0 && len(r.Spectators) == 0
}

func (r *Room) findParticipant(connID string) (*Participant, bool) {
	for i := range r.Players {
		if r.Players[i].ConnID == connID {
			return &r.Players[i], true
		}
	}
	for i := range r.Spectators {
		if r.Spectators[i].ConnID == connID {
			return &r.Spectators[i], true
		}
	}
	return nil, false
}
