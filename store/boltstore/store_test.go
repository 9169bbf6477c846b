package boltstore

import (
	"path/filepath"
	"testing"

	"splitchain/core"
	"splitchain/eventlog"
)

func TestSaveAndLoadLogRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "splitlog.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	defer store.Close()

	log := eventlog.New(64)
	log = log.Append(core.SplitEvent{Height: 100, Factor: core.SplitFactor2, CumulativeFactor: core.NewAmount(2), EuPerThePrice: 3.5, Reason: core.ReasonThresholdMet})
	log = log.Append(core.SplitEvent{Height: 200, Factor: core.SplitFactor3, CumulativeFactor: core.NewAmount(6), EuPerThePrice: 8.0, Reason: core.ReasonThresholdMet})

	if err := store.SaveLog(log); err != nil {
		t.Fatalf("unexpected error saving log: %v", err)
	}

	loaded, err := store.LoadLog()
	if err != nil {
		t.Fatalf("unexpected error loading log: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", loaded.Len())
	}
	events := loaded.Events()
	if events[0].Height != 100 || events[1].Height != 200 {
		t.Errorf("unexpected event order: %+v", events)
	}
	if events[1].CumulativeFactor.Cmp(core.NewAmount(6)) != 0 {
		t.Errorf("got cumulativeFactor=%s, want 6", events[1].CumulativeFactor)
	}
}

func TestLoadLogWithoutPriorSaveReturnsEmptyLog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "splitlog.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	defer store.Close()

	loaded, err := store.LoadLog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Len() != 0 {
		t.Errorf("expected empty log, got len=%d", loaded.Len())
	}
	if loaded.MaxEvents() != eventlog.DefaultMaxEvents {
		t.Errorf("expected default bound, got %d", loaded.MaxEvents())
	}
}

func TestSaveLogPreservesEvictionBound(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "splitlog.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	defer store.Close()

	log := eventlog.New(1)
	log = log.Append(core.SplitEvent{Height: 100, Factor: core.SplitFactor2, CumulativeFactor: core.NewAmount(2)})
	log = log.Append(core.SplitEvent{Height: 200, Factor: core.SplitFactor3, CumulativeFactor: core.NewAmount(6)})

	if err := store.SaveLog(log); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := store.LoadLog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 event after eviction, got %d", loaded.Len())
	}
	if loaded.Events()[0].Height != 200 {
		t.Errorf("expected surviving event height=200, got %d", loaded.Events()[0].Height)
	}
}
