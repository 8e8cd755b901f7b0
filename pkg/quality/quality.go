// Package quality rejects low-interest solutions and builds the final
// letter bag for an accepted level, the same average-length threshold and
// rejection-by-predicate idiom the teacher applies in its own grid
// word-length check.
package quality

import (
	"errors"
	"math"
	"math/rand"

	"github.com/crossplay/levelgen/pkg/solver"
	"github.com/crossplay/levelgen/pkg/wordlist"
)

// ErrLowQuality is returned when a solution's average word length falls
// below the configured threshold.
var ErrLowQuality = errors.New("quality: average word length below threshold")

// DefaultMinAvgWordLen is the spec's default acceptance threshold.
const DefaultMinAvgWordLen = 4.0

// DefaultExtraLetterRatio is the spec's default padding ratio.
const DefaultExtraLetterRatio = 0.5

// Accept reports whether the solution's average word length meets minAvg.
func Accept(placements []solver.Placement, minAvg float64) error {
	if len(placements) == 0 {
		return ErrLowQuality
	}
	total := 0
	for _, p := range placements {
		total += len(p.Word)
	}
	avg := float64(total) / float64(len(placements))
	if avg < minAvg {
		return ErrLowQuality
	}
	return nil
}

// LetterBag builds the letter multiset for a level: the literal union of
// every solution word's own letters (junction letters are counted once per
// adjacent word, not deduplicated — see SPEC_FULL.md §4.9), then padded
// with extra letters sampled from the wordlist's frequency distribution.
func LetterBag(placements []solver.Placement, extraLetterRatio float64, idx *wordlist.Index, rng *rand.Rand) map[rune]int {
	bag := make(map[rune]int)
	for _, p := range placements {
		for _, r := range p.Word {
			bag[r]++
		}
	}

	extra := int(math.Ceil(float64(len(placements)) * extraLetterRatio))
	for i := 0; i < extra; i++ {
		bag[idx.SampleLetter(rng)]++
	}

	return bag
}
