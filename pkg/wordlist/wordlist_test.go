package wordlist

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeTestWordlist(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test wordlist: %v", err)
	}
	return path
}

func TestLoadGroupsByLength(t *testing.T) {
	path := writeTestWordlist(t, "cat", "tag", "tagline", "dog")
	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if idx.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", idx.Size())
	}
}

func TestLoadDeduplicatesAndNormalizes(t *testing.T) {
	path := writeTestWordlist(t, "CAT", "cat", " cat ", "")
	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if idx.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after dedup", idx.Size())
	}
}

func TestLoadRejectsNonAlpha(t *testing.T) {
	path := writeTestWordlist(t, "cat3")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-alpha word")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/wordlist.txt"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestDrawNoIndexConstraint(t *testing.T) {
	path := writeTestWordlist(t, "cat", "dog", "rat")
	idx, _ := Load(path)
	rng := rand.New(rand.NewSource(1))
	word, ok := idx.Draw(rng, Constraint{Length: 3})
	if !ok || len(word) != 3 {
		t.Fatalf("Draw = %q, %v, want a 3-letter word", word, ok)
	}
}

func TestDrawWithIndexConstraint(t *testing.T) {
	path := writeTestWordlist(t, "cat", "cap", "dog")
	idx, _ := Load(path)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		word, ok := idx.Draw(rng, Constraint{Length: 3, HasIndex: true, At: First, Letter: 'c'})
		if !ok {
			t.Fatal("Draw: expected a match")
		}
		if word[0] != 'c' {
			t.Fatalf("Draw returned %q, want first letter c", word)
		}
	}
}

func TestDrawNoMatch(t *testing.T) {
	path := writeTestWordlist(t, "cat")
	idx, _ := Load(path)
	rng := rand.New(rand.NewSource(1))
	_, ok := idx.Draw(rng, Constraint{Length: 3, HasIndex: true, At: First, Letter: 'z'})
	if ok {
		t.Fatal("Draw: expected no match")
	}
}

func TestSampleLetterDeterministic(t *testing.T) {
	path := writeTestWordlist(t, "cat", "dog", "rat")
	idx, _ := Load(path)

	r1 := idx.SampleLetter(rand.New(rand.NewSource(99)))
	r2 := idx.SampleLetter(rand.New(rand.NewSource(99)))
	if r1 != r2 {
		t.Fatalf("SampleLetter not deterministic for same seed: %c vs %c", r1, r2)
	}
}
