package server

// Inbound websocket message types.
const (
	msgJoin        = "join"
	msgChat        = "chat"
	msgChangeStage = "change_stage"
	msgAssignRoles = "assign_roles"
	msgStartVoting = "start_voting"
	msgSubmitVote  = "submit_vote"
)

// Outbound websocket message types.
const (
	msgRoom         = "room"
	msgRoleAssigned = "role_assigned"
	msgError        = "error"
)

// clientMessage is the envelope for every client -> coordinator event. Type
// selects the operation; unused fields stay empty.
type clientMessage struct {
	Type    string   `json:"type"`
	RoomID  string   `json:"room_id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	Text    string   `json:"text,omitempty"`
	Stage   string   `json:"stage,omitempty"`
	Options []string `json:"options,omitempty"`
	Option  string   `json:"option,omitempty"`
}

// serverMessage is the envelope for every coordinator -> client event.
type serverMessage struct {
	Type    string         `json:"type"`
	Room    map[string]any `json:"room,omitempty"`
	Name    string         `json:"name,omitempty"`
	Text    string         `json:"text,omitempty"`
	Role    string         `json:"role,omitempty"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
}

// EventPayload is the audit-log payload persisted alongside coordinator
// events when a database is configured.
type EventPayload struct {
	RoomID  string   `json:"room_id,omitempty"`
	ConnID  string   `json:"conn_id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	Stage   string   `json:"stage,omitempty"`
	Option  string   `json:"option,omitempty"`
	Options []string `json:"options,omitempty"`
	Count   int      `json:"count,omitempty"`
}
