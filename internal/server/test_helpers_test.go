package server

import (
	"testing"

	"decision-city/internal/config"
)

func newTestStore() *Store {
	return NewStore(config.Default())
}

func joinOK(t *testing.T, s *Store, roomID, connID, name, kind string) map[string]any {
	t.Helper()
	snap, err := s.Join(roomID, connID, name, kind)
	if err != nil {
		t.Fatalf("join %s as %s: %v", connID, kind, err)
	}
	return snap
}

func snapshotTally(t *testing.T, snap map[string]any) map[string]int {
	t.Helper()
	tally, ok := snap["tally"].(map[string]int)
	if !ok {
		t.Fatalf("expected tally in snapshot, got %#v", snap["tally"])
	}
	return tally
}

func snapshotPlayerNames(t *testing.T, snap map[string]any) []string {
	t.Helper()
	players, ok := snap["players"].([]map[string]any)
	if !ok {
		t.Fatalf("expected players in snapshot, got %#v", snap["players"])
	}
	names := make([]string, 0, len(players))
	for _, player := range players {
		names = append(names, player["name"].(string))
	}
	return names
}

func snapshotHostID(t *testing.T, snap map[string]any) string {
	t.Helper()
	host, ok := snap["host_id"].(string)
	if !ok {
		t.Fatalf("expected host_id in snapshot, got %#v", snap["host_id"])
	}
	return host
}
