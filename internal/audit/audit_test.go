package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndTail(t *testing.T) {
	l, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	l.Record("add", "BR-001", 9)
	l.Record("delete", "BR-001", 8)
	l.Record("reset", "", 8)

	entries, err := l.Tail(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d", len(entries))
	}
	if entries[0].Op != "delete" || entries[1].Op != "reset" {
		t.Errorf("tail order: %v %v", entries[0].Op, entries[1].Op)
	}
	if entries[0].ID == entries[1].ID {
		t.Error("entry ids collide")
	}
}

func TestTailEmptyTrail(t *testing.T) {
	l, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	entries, err := l.Tail(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d", len(entries))
	}
}

func TestPruneDropsOldEntries(t *testing.T) {
	l, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	l.Record("add", "BR-001", 9)
	l.Record("update", "BR-001", 9)
	time.Sleep(20 * time.Millisecond)

	if err := l.Prune(10 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	entries, err := l.Tail(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("stale entries survived: %d", len(entries))
	}
}

func TestReadAllSkipsTornLines(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatal(err)
	}
	l.Record("add", "BR-001", 9)

	f, err := os.OpenFile(filepath.Join(dir, "audit", "catalog.jsonl"), os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{\"id\":\"torn\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	l.Record("delete", "BR-001", 8)

	entries, err := l.Tail(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("len = %d, want the torn line skipped", len(entries))
	}
}
