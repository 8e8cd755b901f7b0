package levelgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crossplay/levelgen/pkg/wordlist"
)

func testConfig() Config {
	return Config{
		Rows:             6,
		Cols:             6,
		MinAvgWordLen:    3.0,
		WallRatioMin:     0.15,
		WallRatioMax:     0.3,
		GoalTopFraction:  1.0 / 3.0,
		ExtraLetterRatio: 0.5,
		MaxAttempts:      5000,
	}
}

func testIndex(t *testing.T) *wordlist.Index {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	// A densely interconnected set of short words so a chain is almost
	// always findable regardless of which junction letters come up.
	words := []string{
		"at", "to", "on", "in", "it", "is", "as", "an",
		"cat", "tag", "gas", "sat", "ant", "top", "pot", "ton",
		"dog", "get", "ten", "net", "not", "toe", "eat", "tea",
	}
	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	idx, err := wordlist.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return idx
}

func TestDriverGenerateProducesRequestedCount(t *testing.T) {
	idx := testIndex(t)
	d := NewDriver(testConfig(), idx, 42)

	levels, err := d.Generate(3)
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("Generate returned %d levels, want 3", len(levels))
	}
	for _, lvl := range levels {
		if lvl.ID == "" {
			t.Error("level has empty ID")
		}
		if len(lvl.Solution) == 0 {
			t.Error("level has empty solution")
		}
		if lvl.Start == lvl.Goal {
			t.Error("level start == goal")
		}
	}
}

func TestDriverDeterministicForSameSeed(t *testing.T) {
	idx := testIndex(t)

	d1 := NewDriver(testConfig(), idx, 7)
	levels1, err := d1.Generate(2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	d2 := NewDriver(testConfig(), idx, 7)
	levels2, err := d2.Generate(2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i := range levels1 {
		w1 := wordsOf(levels1[i])
		w2 := wordsOf(levels2[i])
		if len(w1) != len(w2) {
			t.Fatalf("level %d: solution lengths differ: %v vs %v", i, w1, w2)
		}
		for j := range w1 {
			if w1[j] != w2[j] {
				t.Fatalf("level %d: same-seed runs diverged: %v vs %v", i, w1, w2)
			}
		}
	}
}

func wordsOf(lvl *Level) []string {
	out := make([]string, len(lvl.Solution))
	for i, p := range lvl.Solution {
		out[i] = p.Word
	}
	return out
}

func TestDriverMaxAttemptsExceeded(t *testing.T) {
	idx := testIndex(t)
	cfg := testConfig()
	cfg.MaxAttempts = 1
	cfg.MinAvgWordLen = 1000 // unreachable threshold forces every attempt to reject
	d := NewDriver(cfg, idx, 1)

	_, err := d.Generate(1)
	if err != ErrMaxAttemptsExceeded {
		t.Fatalf("err = %v, want ErrMaxAttemptsExceeded", err)
	}
}
