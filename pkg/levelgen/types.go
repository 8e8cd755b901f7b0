// Package levelgen drives the end-to-end generation loop: carve a grid,
// build its metric maps, pick a start/goal, extract junctions, solve the
// word chain, and accept or discard the attempt — the same
// seed-validate-retry shape the teacher's own grid generator uses, widened
// to the whole pipeline described in SPEC_FULL.md.
package levelgen

import (
	"time"

	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/solver"
	"github.com/google/uuid"
)

// Level is one generated puzzle: a grid, its start/goal cells, the letter
// bag the player draws from, and the word-chain solution used to verify
// (and to seed) the bag.
type Level struct {
	ID        string
	Rows      int
	Cols      int
	Grid      *geometry.Grid
	Start     geometry.Position
	Goal      geometry.Position
	Letters   map[rune]int
	Solution  []solver.Placement
	CreatedAt time.Time
}

// NewLevelID mints a unique identifier for a level, exactly the way the
// teacher's own puzzle models assign IDs.
func NewLevelID() string {
	return uuid.New().String()
}

// Stats counts what happened across a driver run, for logging and tests.
type Stats struct {
	Accepted              int
	DegenerateGridCount   int
	NoWordForSegmentCount int
	LowQualityCount       int
	Attempts              int
}
