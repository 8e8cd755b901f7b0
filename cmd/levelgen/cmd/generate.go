package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/crossplay/levelgen/internal/config"
	"github.com/crossplay/levelgen/internal/logging"
	"github.com/crossplay/levelgen/pkg/geometry"
	"github.com/crossplay/levelgen/pkg/levelgen"
	"github.com/crossplay/levelgen/pkg/wordlist"
)

var (
	genCount    int
	genOutput   string
	genWordlist string
	genSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate puzzle levels",
	Long: `Generate one or more puzzle levels and write each as a JSON file.

Examples:
  # Generate 10 levels using the config file's wordlist
  levelgen generate --count 10 --output ./levels

  # Generate with an explicit wordlist and seed
  levelgen generate --wordlist ./testdata/wordlist.txt --seed 42`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCount, "count", "n", 0, "number of levels to generate (0 = use config)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", ".", "output directory for level JSON files")
	generateCmd.Flags().StringVarP(&genWordlist, "wordlist", "w", "", "path to wordlist file (overrides config)")
	generateCmd.Flags().Int64VarP(&genSeed, "seed", "s", 0, "RNG seed (0 = use config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if genWordlist != "" {
		cfg.WordlistPath = genWordlist
	}
	if genSeed != 0 {
		cfg.RNGSeed = genSeed
	}
	if genCount > 0 {
		cfg.Count = genCount
	}

	logCfg := logging.DefaultConfig()
	logging.ApplyEnvOverrides(&logCfg)
	logger := logging.New(logCfg)

	logger.Info("loading wordlist", "path", cfg.WordlistPath)
	idx, err := wordlist.Load(cfg.WordlistPath)
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}
	logger.Info("wordlist loaded", "words", idx.Size())

	if err := os.MkdirAll(genOutput, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	driverCfg := levelgen.Config{
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		MinAvgWordLen:    cfg.MinAvgWordLen,
		WallRatioMin:     cfg.WallRatioMin,
		WallRatioMax:     cfg.WallRatioMax,
		GoalTopFraction:  cfg.GoalTopFraction,
		ExtraLetterRatio: cfg.ExtraLetterRatio,
		MaxAttempts:      cfg.MaxAttempts,
	}
	driver := levelgen.NewDriver(driverCfg, idx, cfg.RNGSeed)

	bar := pb.StartNew(cfg.Count)
	driver.OnAccept = func(level *levelgen.Level, stats levelgen.Stats) {
		bar.Increment()
		logger.Debug("level accepted", "id", level.ID, "attempt", stats.Attempts, "words", len(level.Solution))
	}
	driver.OnReject = func(err error, stats levelgen.Stats) {
		logger.Debug("attempt rejected", "reason", err, "attempt", stats.Attempts)
	}

	levels, err := driver.Generate(cfg.Count)
	bar.Finish()
	if err != nil {
		logger.Error("generation stopped early", "error", err, "accepted", len(levels))
		return fmt.Errorf("generation failed: %w", err)
	}

	for i, level := range levels {
		path := filepath.Join(genOutput, fmt.Sprintf("level_%04d.json", i+1))
		if err := writeLevel(path, level); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	stats := driver.Stats()
	logger.Info("generation complete",
		"accepted", stats.Accepted,
		"attempts", stats.Attempts,
		"degenerate_grid", stats.DegenerateGridCount,
		"no_word_for_segment", stats.NoWordForSegmentCount,
		"low_quality", stats.LowQualityCount,
	)
	fmt.Printf("wrote %d level(s) to %s\n", len(levels), genOutput)
	return nil
}

type levelJSON struct {
	ID       string          `json:"id"`
	Rows     int             `json:"rows"`
	Cols     int             `json:"cols"`
	Grid     [][]string      `json:"grid"`
	Start    positionJSON    `json:"start"`
	Goal     positionJSON    `json:"goal"`
	Letters  map[string]int  `json:"letters"`
	Solution []placementJSON `json:"solution"`
}

type positionJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type placementJSON struct {
	Word      string       `json:"word"`
	Start     positionJSON `json:"start"`
	Direction string       `json:"direction"`
}

func writeLevel(path string, level *levelgen.Level) error {
	grid := make([][]string, level.Rows)
	for r := 0; r < level.Rows; r++ {
		row := make([]string, level.Cols)
		for c := 0; c < level.Cols; c++ {
			if level.Grid.IsFree(geometry.Position{Row: r, Col: c}) {
				row[c] = "empty"
			} else {
				row[c] = "wall"
			}
		}
		grid[r] = row
	}

	letters := make(map[string]int, len(level.Letters))
	for r, count := range level.Letters {
		letters[string(r)] = count
	}

	solution := make([]placementJSON, len(level.Solution))
	for i, p := range level.Solution {
		solution[i] = placementJSON{
			Word:      p.Word,
			Start:     positionJSON{Row: p.Start.Row, Col: p.Start.Col},
			Direction: p.Direction.String(),
		}
	}

	out := levelJSON{
		ID:       level.ID,
		Rows:     level.Rows,
		Cols:     level.Cols,
		Grid:     grid,
		Start:    positionJSON{Row: level.Start.Row, Col: level.Start.Col},
		Goal:     positionJSON{Row: level.Goal.Row, Col: level.Goal.Col},
		Letters:  letters,
		Solution: solution,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
