// Package solver fills the segments between junctions with a word chain
// drawn from a wordlist.Index, each word constrained in length and, past
// the first, in the letter it must share with its predecessor at their
// common junction. It proceeds strictly left to right with no
// backtracking: a segment with no qualifying word aborts the whole attempt.
package solver

import (
	"errors"
	"math/rand"

	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/metrics"
	"github.com/crossplay/levelgen/pkg/wordlist"
)

// ErrNoWordForSegment is returned when a segment's constraint matches no
// word in the index.
var ErrNoWordForSegment = errors.New("solver: no word satisfies segment constraint")

// RenderDirection is the direction a placed word reads in on the grid.
type RenderDirection int

const (
	Across RenderDirection = iota
	Down
)

func (d RenderDirection) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Placement is a solved word's concrete position and reading direction.
type Placement struct {
	Word      string
	Start     geometry.Position
	Direction RenderDirection
}

// Solve draws one word per consecutive pair of junctions, deriving each
// segment's length and (for segments past the first) shared-letter index
// constraint from the junction geometry, per the word-chain rules in
// SPEC_FULL.md §4.6.
func Solve(junctions []geometry.Position, dist *metrics.DistanceMap, idx *wordlist.Index, rng *rand.Rand) ([]Placement, error) {
	if len(junctions) < 2 {
		return nil, errors.New("solver: need at least two junctions")
	}

	placements := make([]Placement, 0, len(junctions)-1)
	var prevWord string
	var prevSegDir geometry.Direction

	for k := 0; k < len(junctions)-1; k++ {
		a, b := junctions[k], junctions[k+1]

		d, ok := dist.Dist(a, b)
		if !ok {
			return nil, errors.New("solver: junction pair not in the same room")
		}
		length := d + 1

		segDir, err := geometry.LineDirection(a, b)
		if err != nil {
			return nil, err
		}

		var constraint wordlist.Constraint
		if k == 0 {
			constraint = wordlist.Constraint{Length: length}
		} else {
			role := roleOfHead(segDir)
			sharedLetter := letterAt(prevWord, roleOfTail(prevSegDir))
			constraint = wordlist.Constraint{Length: length, HasIndex: true, At: role, Letter: sharedLetter}
		}

		word, ok := idx.Draw(rng, constraint)
		if !ok {
			return nil, ErrNoWordForSegment
		}

		placements = append(placements, Placement{
			Word:      word,
			Start:     placementStart(a, b, segDir),
			Direction: renderDirection(segDir),
		})

		prevWord = word
		prevSegDir = segDir
	}

	return placements, nil
}

// roleOfHead reports the role, within the word spanning a segment, of the
// junction the path-walk reaches the segment FROM (its "a" endpoint):
// First when the segment reads forward (Right/Down, so the word is
// rendered starting at a), Last when it reads backward (Left/Up, so the
// word is rendered starting at the segment's far end instead).
func roleOfHead(segDir geometry.Direction) wordlist.IndexPosition {
	if segDir == geometry.Right || segDir == geometry.Down {
		return wordlist.First
	}
	return wordlist.Last
}

// roleOfTail reports the role of the junction a segment arrives AT (its
// "b" endpoint) within that segment's own word — the inverse of
// roleOfHead, since exactly one end of a straight segment is the
// left-to-right/top-to-bottom rendering start.
func roleOfTail(segDir geometry.Direction) wordlist.IndexPosition {
	if segDir == geometry.Right || segDir == geometry.Down {
		return wordlist.Last
	}
	return wordlist.First
}

func letterAt(word string, at wordlist.IndexPosition) rune {
	if at == wordlist.First {
		return rune(word[0])
	}
	return rune(word[len(word)-1])
}

// placementStart returns the grid cell a word actually begins at: words
// are always rendered left-to-right or top-to-bottom, so a segment walked
// Left or Up starts at its far (second) junction rather than the one the
// path-walk visited first.
func placementStart(a, b geometry.Position, segDir geometry.Direction) geometry.Position {
	if segDir == geometry.Right || segDir == geometry.Down {
		return a
	}
	return b
}

func renderDirection(segDir geometry.Direction) RenderDirection {
	if segDir == geometry.Up || segDir == geometry.Down {
		return Down
	}
	return Across
}
