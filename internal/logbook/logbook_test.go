package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestTailMissingFile(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "nested", "journal.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	lines, total := book.Tail(3)
	if lines != nil || total != 0 {
		t.Fatalf("expected empty tail, got %v (%d)", lines, total)
	}
}

func TestMinLevelFiltersEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.log")
	book, err := New(path, WithMinLevel(LevelWarn))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Info("skipped")
	book.Warn("kept")
	book.Error("also kept")
	lines, total := book.Tail(10)
	if total != 2 {
		t.Fatalf("total = %d, want 2: %v", total, lines)
	}
	if !strings.Contains(lines[0], "WARN  kept") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestAppendFormatsTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.log")
	fixed := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	book, err := New(path, WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Info("  [解雇通知] 佐藤太郎さんを解雇しました \n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	want := "2026-02-04T09:00:00Z INFO  [解雇通知] 佐藤太郎さんを解雇しました\n"
	if string(data) != want {
		t.Fatalf("journal = %q, want %q", data, want)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": LevelInfo, "INFO": LevelInfo, "warning": LevelWarn, " error ": LevelError}
	for input, want := range cases {
		got, ok := ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %q, %v", input, got, ok)
		}
	}
	if _, ok := ParseLevel("debug"); ok {
		t.Fatalf("debug must be rejected")
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if book.Path() != "" {
		t.Fatalf("nil path should be empty")
	}
	if lines, total := book.Tail(1); lines != nil || total != 0 {
		t.Fatalf("nil tail should be empty")
	}
}
