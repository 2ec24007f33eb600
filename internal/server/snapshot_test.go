package server

import "testing"

func TestSnapshotHasNoTallyBeforeVoting(t *testing.T) {
	store := newTestStore()
	snap := joinOK(t, store, "R1", "conn-a", "Alice", kindPlayer)
	if snap["tally"] != nil {
		t.Fatalf("expected nil tally before voting, got %v", snap["tally"])
	}
}

func TestSnapshotSequenceAdvances(t *testing.T) {
	store := newTestStore()
	first := joinOK(t, store, "R1", "conn-a", "Alice", kindPlayer)
	second := joinOK(t, store, "R1", "conn-b", "Bob", kindPlayer)

	if snapshotSeq(first) == 0 {
		t.Fatal("expected a non-zero sequence on the first snapshot")
	}
	if snapshotSeq(second) <= snapshotSeq(first) {
		t.Fatalf("expected strictly increasing sequences, got %d then %d", snapshotSeq(first), snapshotSeq(second))
	}
}

func TestSnapshotCountsTrackMembership(t *testing.T) {
	store := newTestStore()
	joinOK(t, store, "R1", "conn-a", "Alice", kindPlayer)
	joinOK(t, store, "R1", "conn-b", "Bob", kindPlayer)
	snap := joinOK(t, store, "R1", "conn-s", "Watcher", kindSpectator)

	counts := snap["counts"].(map[string]int)
	if counts["players"] != 2 || counts["spectators"] != 1 || counts["votes"] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestSnapshotPreservesJoinOrder(t *testing.T) {
	store := newTestStore()
	joinOK(t, store, "R1", "conn-c", "Cara", kindPlayer)
	joinOK(t, store, "R1", "conn-a", "Alice", kindPlayer)
	snap := joinOK(t, store, "R1", "conn-b", "Bob", kindPlayer)

	got := snapshotPlayerNames(t, snap)
	want := []string{"Cara", "Alice", "Bob"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected join order %v, got %v", want, got)
		}
	}
}

func TestSnapshotListsOptionsEveryVoterCounted(t *testing.T) {
	store := newTestStore()
	joinOK(t, store, "R1", "conn-a", "Alice", kindPlayer)
	joinOK(t, store, "R1", "conn-b", "Bob", kindPlayer)
	joinOK(t, store, "R1", "conn-c", "Cara", kindPlayer)
	startVotingOK(t, store, "R1", "conn-a", []string{"X", "Y", "Z"})

	for conn, option := range map[string]string{
		"conn-a": "X",
		"conn-b": "X",
		"conn-c": "Y",
	} {
		if _, err := store.SubmitVote("R1", conn, option); err != nil {
			t.Fatalf("vote %s: %v", conn, err)
		}
	}

	snap, _ := store.Snapshot("R1")
	tally := snapshotTally(t, snap)
	if tally["X"] != 2 || tally["Y"] != 1 || tally["Z"] != 0 {
		t.Fatalf("unexpected tally: %v", tally)
	}
	// Every active option appears even with zero votes.
	if _, ok := tally["Z"]; !ok {
		t.Fatal("expected Z in tally with zero votes")
	}
	if counts := snap["counts"].(map[string]int); counts["votes"] != 3 {
		t.Fatalf("expected 3 distinct voters, got %d", counts["votes"])
	}
}
