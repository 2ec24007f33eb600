package server

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNotHost             = errors.New("only the host can do that")
	ErrNotPlayer           = errors.New("only players can vote")
	ErrUnknownStage        = errors.New("unknown stage")
	ErrStageRegression     = errors.New("stage cannot move backwards")
	ErrNoVoting            = errors.New("no voting round is active")
	ErrInvalidOption       = errors.New("option is not part of the current vote")
	ErrInvalidOptions      = errors.New("voting options must be non-empty and distinct")
	ErrRoomFull            = errors.New("room is full")
	ErrInvalidKind         = errors.New("kind must be player or spectator")
)

// errorCode maps a coordinator error to the code carried on the wire.
// Unmapped errors (unknown room/participant) are silent no-ops and never
// reach a client.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotHost):
		return "not_host"
	case errors.Is(err, ErrNotPlayer):
		return "not_player"
	case errors.Is(err, ErrUnknownStage), errors.Is(err, ErrStageRegression):
		return "invalid_stage"
	case errors.Is(err, ErrNoVoting):
		return "no_voting"
	case errors.Is(err, ErrInvalidOption):
		return "invalid_option"
	case errors.Is(err, ErrInvalidOptions):
		return "invalid_options"
	case errors.Is(err, ErrRoomFull):
		return "room_full"
	case errors.Is(err, ErrInvalidKind):
		return "invalid_kind"
	default:
		return "invalid_request"
	}
}
