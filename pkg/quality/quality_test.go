package quality

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/crossplay/levelgen/pkg/solver"
	"github.com/crossplay/levelgen/pkg/wordlist"
)

func TestAcceptAboveThreshold(t *testing.T) {
	placements := []solver.Placement{{Word: "crossing"}, {Word: "plays"}}
	if err := Accept(placements, 4.0); err != nil {
		t.Errorf("Accept: unexpected error: %v", err)
	}
}

func TestAcceptBelowThreshold(t *testing.T) {
	placements := []solver.Placement{{Word: "at"}, {Word: "to"}}
	if err := Accept(placements, 4.0); err != ErrLowQuality {
		t.Errorf("err = %v, want ErrLowQuality", err)
	}
}

func TestAcceptEmptySolution(t *testing.T) {
	if err := Accept(nil, 4.0); err != ErrLowQuality {
		t.Errorf("err = %v, want ErrLowQuality", err)
	}
}

func TestLetterBagCountsSolutionLettersAndPads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("cat\ndog\ntag\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	idx, err := wordlist.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	placements := []solver.Placement{{Word: "cat"}, {Word: "tag"}}
	bag := LetterBag(placements, 0.5, idx, rand.New(rand.NewSource(1)))

	solutionLetters := 0
	for _, count := range bag {
		solutionLetters += count
	}
	wantExtra := 1 // ceil(2 * 0.5) = 1
	wantTotal := len("cat") + len("tag") + wantExtra
	if solutionLetters != wantTotal {
		t.Errorf("total letter count = %d, want %d", solutionLetters, wantTotal)
	}
	if bag['c'] < 1 || bag['a'] < 1 || bag['t'] < 1 {
		t.Errorf("bag missing solution letters: %v", bag)
	}
}
