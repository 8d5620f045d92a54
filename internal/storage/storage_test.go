package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStore(t)

	rec := Record{
		StartingFen: "g-p-r-s-p-r- w 0 1",
		Moves:       []string{"b4c3d4", "b3c4d3"},
		Result:      ResultP1Win,
	}

	id, err := s.SaveGame(rec)
	if err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, err := s.LoadGame(id)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if got.ID != id || got.StartingFen != rec.StartingFen || len(got.Moves) != len(rec.Moves) || got.Result != rec.Result {
		t.Errorf("LoadGame = %+v, want ID=%d %+v", got, id, rec)
	}
}

func TestSaveGameAssignsMonotonicIDs(t *testing.T) {
	s := openTestStore(t)

	id1, err := s.SaveGame(Record{StartingFen: "a"})
	if err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	id2, err := s.SaveGame(Record{StartingFen: "b"})
	if err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("expected id2 (%d) > id1 (%d)", id2, id1)
	}
}

func TestListGames(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 3; i++ {
		if _, err := s.SaveGame(Record{StartingFen: "x"}); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
	}

	games, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 3 {
		t.Errorf("ListGames returned %d records, want 3", len(games))
	}
}

func TestLearnedEntryRoundTrip(t *testing.T) {
	s := openTestStore(t)

	entry := LearnedEntry{Fen: "some-fen", Action: "b4c3d4", Score: 1000, Depth: 8}
	if err := s.SaveLearned(entry); err != nil {
		t.Fatalf("SaveLearned: %v", err)
	}

	entries, err := s.ListLearned()
	if err != nil {
		t.Fatalf("ListLearned: %v", err)
	}
	if len(entries) != 1 || entries[0] != entry {
		t.Errorf("ListLearned = %+v, want [%+v]", entries, entry)
	}
}

func TestDatabaseDir(t *testing.T) {
	dir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir: %v", err)
	}
	if dir == "" {
		t.Error("GetDatabaseDir returned an empty path")
	}
}
