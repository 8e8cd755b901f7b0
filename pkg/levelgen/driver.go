package levelgen

import (
	"errors"
	"math/rand"
	"time"

	"github.com/crossplay/levelgen/pkg/chooser"
	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/metrics"
	"github.com/crossplay/levelgen/pkg/pathwalk"
	"github.com/crossplay/levelgen/pkg/quality"
	"github.com/crossplay/levelgen/pkg/solver"
	"github.com/crossplay/levelgen/pkg/wordlist"
)

// ErrMaxAttemptsExceeded is returned when Config.MaxAttempts is positive
// and the driver exhausts it without producing the requested count. It is
// a CLI-facing safety valve, not one of the core per-attempt rejections.
var ErrMaxAttemptsExceeded = errors.New("levelgen: max attempts exceeded")

// OnReject, if set, is called once per discarded attempt with the
// rejection reason — the Driver's hook for C10 logging.
type OnReject func(err error, stats Stats)

// OnAccept, if set, is called once per accepted level.
type OnAccept func(level *Level, stats Stats)

// Driver runs the generation loop described in SPEC_FULL.md §4.8.
type Driver struct {
	Config   Config
	Wordlist *wordlist.Index
	RNG      *rand.Rand

	OnReject OnReject
	OnAccept OnAccept

	stats Stats
}

// NewDriver builds a Driver for the given config, wordlist, and seed. A
// zero seed still produces a deterministic sequence (math/rand treats 0 as
// an ordinary seed); callers that want wall-clock entropy should derive
// their own seed before constructing the Driver.
func NewDriver(cfg Config, idx *wordlist.Index, seed int64) *Driver {
	return &Driver{
		Config:   cfg,
		Wordlist: idx,
		RNG:      rand.New(rand.NewSource(seed)),
	}
}

// Stats returns a copy of the driver's running counters.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Generate runs the loop until count levels are accepted, or, if
// Config.MaxAttempts is positive, until that budget of attempts is spent
// first.
func (d *Driver) Generate(count int) ([]*Level, error) {
	levels := make([]*Level, 0, count)

	for len(levels) < count {
		if d.Config.MaxAttempts > 0 && d.stats.Attempts >= d.Config.MaxAttempts {
			return levels, ErrMaxAttemptsExceeded
		}
		d.stats.Attempts++

		level, err := d.attempt()
		if err != nil {
			switch {
			case errors.Is(err, geometry.ErrDegenerateGrid):
				d.stats.DegenerateGridCount++
			case errors.Is(err, solver.ErrNoWordForSegment):
				d.stats.NoWordForSegmentCount++
			case errors.Is(err, quality.ErrLowQuality):
				d.stats.LowQualityCount++
			}
			if d.OnReject != nil {
				d.OnReject(err, d.stats)
			}
			continue
		}

		d.stats.Accepted++
		levels = append(levels, level)
		if d.OnAccept != nil {
			d.OnAccept(level, d.stats)
		}
	}

	return levels, nil
}

func (d *Driver) attempt() (*Level, error) {
	grid, err := geometry.Carve(d.Config.Rows, d.Config.Cols, d.Config.WallRatioMin, d.Config.WallRatioMax, d.RNG)
	if err != nil {
		return nil, err
	}

	free := grid.FreeCells()
	dist := metrics.BuildDistanceMap(grid, free)
	turns := metrics.BuildTurnMap(grid, free)

	start, goal, err := chooser.Choose(free, dist, turns, d.Config.GoalTopFraction, d.RNG)
	if err != nil {
		return nil, err
	}

	junctions, err := pathwalk.ExtractJunctions(turns, start, goal)
	if err != nil {
		return nil, err
	}

	placements, err := solver.Solve(junctions, dist, d.Wordlist, d.RNG)
	if err != nil {
		return nil, err
	}

	if err := quality.Accept(placements, d.Config.MinAvgWordLen); err != nil {
		return nil, err
	}

	bag := quality.LetterBag(placements, d.Config.ExtraLetterRatio, d.Wordlist, d.RNG)

	return &Level{
		ID:        NewLevelID(),
		Rows:      d.Config.Rows,
		Cols:      d.Config.Cols,
		Grid:      grid,
		Start:     start,
		Goal:      goal,
		Letters:   bag,
		Solution:  placements,
		CreatedAt: time.Now(),
	}, nil
}
