package server

// snapshot builds the full room view broadcast after any membership, role,
// stage or vote change. Callers must hold the store mutex so the payload
// always reflects fully applied state. Each call advances the room's sequence
// number; the hub compares it to discard snapshots enqueued out of capture
// order.
func snapshot(room *Room) map[string]any {
	room.Seq++
	hostID := ""
	if id, ok := room.Host(); ok {
		hostID = id
	}
	return map[string]any{
		"room_id":        room.ID,
		"seq":            room.Seq,
		"stage":          room.Stage,
		"players":        participantsPayload(room.Players),
		"spectators":     participantsPayload(room.Spectators),
		"host_id":        hostID,
		"roles":          room.Roles,
		"voting_options": room.VoteOptions,
		"tally":          buildTally(room),
		"counts": map[string]int{
			"players":    len(room.Players),
			"spectators": len(room.Spectators),
			"votes":      len(room.Votes),
		},
	}
}

func snapshotSeq(snap map[string]any) uint64 {
	seq, _ := snap["seq"].(uint64)
	return seq
}

func participantsPayload(list []Participant) []map[string]any {
	payload := make([]map[string]any, 0, len(list))
	for _, p := range list {
		payload = append(payload, map[string]any{
			"id":   p.ConnID,
			"name": p.Name,
		})
	}
	return payload
}

// buildTally maps every active option to the count of distinct players on it.
// Nil outside a voting round: the tally only exists during or after voting.
func buildTally(room *Room) map[string]int {
	if len(room.VoteOptions) == 0 {
		return nil
	}
	tally := make(map[string]int, len(room.VoteOptions))
	for _, option := range room.VoteOptions {
		tally[option] = 0
	}
	for _, option := range room.Votes {
		tally[option]++
	}
	return tally
}
