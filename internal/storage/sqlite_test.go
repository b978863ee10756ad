package storage

import (
	"path/filepath"
	"testing"
)

// openTestStore creates a store backed by a throwaway database file.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleMatch(opponent, winner string) MatchRecord {
	return MatchRecord{
		Opponent:        opponent,
		Winner:          winner,
		PlayerShots:     60,
		PlayerHits:      17,
		AIShots:         55,
		AIHits:          12,
		PlayerShipsLost: 3,
		AIShipsLost:     5,
		DurationSecs:    240,
	}
}

func TestSaveAndRecentMatches(t *testing.T) {
	store := openTestStore(t)

	id1, err := store.SaveMatch(sampleMatch("minimax", "player"))
	if err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	id2, err := store.SaveMatch(sampleMatch("random", "ai"))
	if err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("insert IDs not increasing: %d then %d", id1, id2)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("RecentMatches returned %d records, expected 2", len(matches))
	}

	// Newest first
	if matches[0].Opponent != "random" {
		t.Errorf("first record opponent = %q, expected the later insert", matches[0].Opponent)
	}
	if matches[1].Opponent != "minimax" {
		t.Errorf("second record opponent = %q, expected the earlier insert", matches[1].Opponent)
	}

	rec := matches[1]
	if rec.Winner != "player" || rec.PlayerShots != 60 || rec.PlayerHits != 17 ||
		rec.AIShipsLost != 5 || rec.DurationSecs != 240 {
		t.Errorf("record round-trip lost fields: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated by the database")
	}
}

func TestRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.SaveMatch(sampleMatch("minimax", "player")); err != nil {
			t.Fatalf("SaveMatch: %v", err)
		}
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("RecentMatches(3) returned %d records", len(matches))
	}

	// Non-positive limit falls back to a default instead of returning nothing
	matches, err = store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches(0): %v", err)
	}
	if len(matches) != 5 {
		t.Errorf("RecentMatches(0) returned %d records, expected all 5", len(matches))
	}
}

func TestOpponentMatchesFilter(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMatch(sampleMatch("minimax", "player")); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	if _, err := store.SaveMatch(sampleMatch("random", "ai")); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	if _, err := store.SaveMatch(sampleMatch("minimax", "ai")); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	matches, err := store.OpponentMatches("minimax", 10)
	if err != nil {
		t.Fatalf("OpponentMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("OpponentMatches(minimax) returned %d records, expected 2", len(matches))
	}
	for _, rec := range matches {
		if rec.Opponent != "minimax" {
			t.Errorf("filtered query returned opponent %q", rec.Opponent)
		}
	}

	matches, err = store.OpponentMatches("hunter", 10)
	if err != nil {
		t.Fatalf("OpponentMatches(hunter): %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("OpponentMatches(hunter) returned %d records, expected none", len(matches))
	}
}

func TestOpponentStats(t *testing.T) {
	store := openTestStore(t)

	win := sampleMatch("minimax", "player")
	win.PlayerShots = 50
	win.PlayerHits = 17
	loss := sampleMatch("minimax", "ai")
	loss.PlayerShots = 50
	loss.PlayerHits = 8

	if _, err := store.SaveMatch(win); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	if _, err := store.SaveMatch(loss); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	stats, err := store.OpponentStats("minimax")
	if err != nil {
		t.Fatalf("OpponentStats: %v", err)
	}
	if stats.Games != 2 {
		t.Errorf("Games = %d, expected 2", stats.Games)
	}
	if stats.PlayerWins != 1 || stats.AIWins != 1 {
		t.Errorf("wins = %d/%d, expected 1/1", stats.PlayerWins, stats.AIWins)
	}
	want := 25.0 / 100.0
	if stats.Accuracy != want {
		t.Errorf("Accuracy = %v, expected %v", stats.Accuracy, want)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}

func TestOpponentStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.OpponentStats("minimax")
	if err != nil {
		t.Fatalf("OpponentStats on empty store: %v", err)
	}
	if stats.Games != 0 || stats.Accuracy != 0 {
		t.Errorf("empty stats = %+v, expected zeros", stats)
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMatch(sampleMatch("minimax", "player")); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	if _, err := store.SaveMatch(sampleMatch("random", "ai")); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("AllStats returned %d opponents, expected 2", len(stats))
	}
	if stats["minimax"].PlayerWins != 1 {
		t.Errorf("minimax PlayerWins = %d, expected 1", stats["minimax"].PlayerWins)
	}
	if stats["random"].AIWins != 1 {
		t.Errorf("random AIWins = %d, expected 1", stats["random"].AIWins)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMatch(sampleMatch("minimax", "player")); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches: %v", err)
	}
	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches remain after ClearMatches: %d", len(matches))
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "nested", "deeper", "scores.db"))
	if err != nil {
		t.Fatalf("Open with missing parent dirs: %v", err)
	}
	store.Close()
}
