package server

import (
	"errors"
	"log"
)

// dispatch routes one inbound event to its handler. Every handler performs an
// atomic read-modify-snapshot against the store, then broadcasts. Failures are
// local to the request: either an explicit error event back to the sender or,
// for stale rooms and connections, a silent no-op.
func (s *Server) dispatch(connID string, msg clientMessage) {
	switch msg.Type {
	case msgJoin:
		s.handleJoinEvent(connID, msg)
	case msgChat:
		s.handleChatEvent(connID, msg)
	case msgChangeStage:
		s.handleChangeStageEvent(connID, msg)
	case msgAssignRoles:
		s.handleAssignRolesEvent(connID, msg)
	case msgStartVoting:
		s.handleStartVotingEvent(connID, msg)
	case msgSubmitVote:
		s.handleSubmitVoteEvent(connID, msg)
	default:
		s.ws.SendTo(connID, serverMessage{
			Type:    msgError,
			Code:    "unknown_type",
			Message: "unknown message type",
		})
	}
}

func (s *Server) reject(connID string, err error) {
	s.ws.SendTo(connID, serverMessage{
		Type:    msgError,
		Code:    errorCode(err),
		Message: err.Error(),
	})
}

// stale reports errors that mean the room or participant is no longer
// tracked. Late messages after a disconnect degrade to no-ops.
func stale(err error) bool {
	return errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrParticipantNotFound)
}

func (s *Server) handleJoinEvent(connID string, msg clientMessage) {
	name, err := validateName(msg.Name, s.cfg.MaxNameLength)
	if err != nil {
		s.reject(connID, err)
		return
	}
	// Subscribe before the store update: once the join is applied, any
	// broadcast from a concurrent event must already reach this connection,
	// or both sides could settle on a stale view.
	s.ws.Subscribe(msg.RoomID, connID)
	snap, err := s.store.Join(msg.RoomID, connID, name, msg.Kind)
	if err != nil {
		s.ws.Unsubscribe(msg.RoomID, connID)
		s.reject(connID, err)
		return
	}
	if err := s.persistEvent(msg.RoomID, "participant_joined", EventPayload{
		RoomID: msg.RoomID,
		ConnID: connID,
		Name:   name,
		Kind:   msg.Kind,
	}); err != nil {
		log.Printf("persist failed room_id=%s error=%v", msg.RoomID, err)
	}
	log.Printf("participant joined room_id=%s conn_id=%s name=%s kind=%s", msg.RoomID, connID, name, msg.Kind)
	s.ws.BroadcastRoom(msg.RoomID, snapshotSeq(snap), serverMessage{Type: msgRoom, Room: snap})
}

func (s *Server) handleChatEvent(connID string, msg clientMessage) {
	text, err := validateChat(msg.Text, s.cfg.MaxChatLength)
	if err != nil {
		s.reject(connID, err)
		return
	}
	name, ok := s.store.ParticipantName(msg.RoomID, connID)
	if !ok {
		return
	}
	if msg.Name != "" {
		// Identity is client-declared and trusted.
		name = msg.Name
	}
	s.ws.Broadcast(msg.RoomID, serverMessage{Type: msgChat, Name: name, Text: text})
}

func (s *Server) handleChangeStageEvent(connID string, msg clientMessage) {
	snap, err := s.store.ChangeStage(msg.RoomID, connID, msg.Stage)
	if err != nil {
		if !stale(err) {
			s.reject(connID, err)
		}
		return
	}
	if err := s.persistStage(msg.RoomID, msg.Stage, "stage_changed", EventPayload{
		RoomID: msg.RoomID,
		ConnID: connID,
		Stage:  msg.Stage,
	}); err != nil {
		log.Printf("persist failed room_id=%s error=%v", msg.RoomID, err)
	}
	log.Printf("stage changed room_id=%s stage=%s", msg.RoomID, msg.Stage)
	s.ws.BroadcastRoom(msg.RoomID, snapshotSeq(snap), serverMessage{Type: msgRoom, Room: snap})
}

func (s *Server) handleAssignRolesEvent(connID string, msg clientMessage) {
	snap, byConn, err := s.store.AssignRoles(msg.RoomID, connID)
	if err != nil {
		if !stale(err) {
			s.reject(connID, err)
		}
		return
	}
	if err := s.persistEvent(msg.RoomID, "roles_assigned", EventPayload{
		RoomID: msg.RoomID,
		ConnID: connID,
		Count:  len(byConn),
	}); err != nil {
		log.Printf("persist failed room_id=%s error=%v", msg.RoomID, err)
	}
	log.Printf("roles assigned room_id=%s players=%d", msg.RoomID, len(byConn))
	s.ws.BroadcastRoom(msg.RoomID, snapshotSeq(snap), serverMessage{Type: msgRoom, Room: snap})
	for playerConnID, label := range byConn {
		s.ws.SendTo(playerConnID, serverMessage{Type: msgRoleAssigned, Role: label})
	}
}

func (s *Server) handleStartVotingEvent(connID string, msg clientMessage) {
	snap, err := s.store.StartVoting(msg.RoomID, connID, msg.Options)
	if err != nil {
		if !stale(err) {
			s.reject(connID, err)
		}
		return
	}
	if err := s.persistStage(msg.RoomID, stageVoting, "voting_started", EventPayload{
		RoomID:  msg.RoomID,
		ConnID:  connID,
		Options: msg.Options,
	}); err != nil {
		log.Printf("persist failed room_id=%s error=%v", msg.RoomID, err)
	}
	log.Printf("voting started room_id=%s options=%d", msg.RoomID, len(msg.Options))
	s.ws.BroadcastRoom(msg.RoomID, snapshotSeq(snap), serverMessage{Type: msgRoom, Room: snap})
}

func (s *Server) handleSubmitVoteEvent(connID string, msg clientMessage) {
	snap, err := s.store.SubmitVote(msg.RoomID, connID, msg.Option)
	if err != nil {
		if !stale(err) {
			s.reject(connID, err)
		}
		return
	}
	if err := s.persistEvent(msg.RoomID, "vote_submitted", EventPayload{
		RoomID: msg.RoomID,
		ConnID: connID,
		Option: msg.Option,
	}); err != nil {
		log.Printf("persist failed room_id=%s error=%v", msg.RoomID, err)
	}
	s.ws.BroadcastRoom(msg.RoomID, snapshotSeq(snap), serverMessage{Type: msgRoom, Room: snap})
}
