// Package config loads the generator's tunable parameters from a YAML file
// with environment-variable overrides, the same defaults-then-file-
// then-env layering the OpenTowerMUD example pack uses for its own logger
// configuration.
package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the loaded configuration fails basic
// sanity checks.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GeneratorConfig is the full set of parameters driving one CLI run.
type GeneratorConfig struct {
	Rows             int     `yaml:"rows"`
	Cols             int     `yaml:"cols"`
	Count            int     `yaml:"count"`
	MinAvgWordLen    float64 `yaml:"min_avg_word_len"`
	WallRatioMin     float64 `yaml:"wall_ratio_min"`
	WallRatioMax     float64 `yaml:"wall_ratio_max"`
	GoalTopFraction  float64 `yaml:"goal_top_fraction"`
	ExtraLetterRatio float64 `yaml:"extra_letter_ratio"`
	RNGSeed          int64   `yaml:"rng_seed"`
	WordlistPath     string  `yaml:"wordlist_path"`
	MaxAttempts      int     `yaml:"max_attempts"`
}

func defaults() GeneratorConfig {
	return GeneratorConfig{
		Rows:             8,
		Cols:             8,
		Count:            10,
		MinAvgWordLen:    4.0,
		WallRatioMin:     0.15,
		WallRatioMax:     0.50,
		GoalTopFraction:  1.0 / 3.0,
		ExtraLetterRatio: 0.5,
		RNGSeed:          0,
		WordlistPath:     "./testdata/wordlist.txt",
		MaxAttempts:      0,
	}
}

// Load reads configPath (if non-empty and present) over the defaults, then
// applies LEVELGEN_* environment overrides, then validates the result.
func Load(configPath string) (GeneratorConfig, error) {
	cfg := defaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return GeneratorConfig{}, errors.Join(ErrInvalidConfig, err)
			}
		}
		// Silently use defaults if the file doesn't exist, matching the
		// teacher pack's own "best effort config file" convention.
	}

	applyEnvOverrides(&cfg)

	if err := validate(cfg); err != nil {
		return GeneratorConfig{}, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *GeneratorConfig) {
	if v := os.Getenv("LEVELGEN_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Rows = n
		}
	}
	if v := os.Getenv("LEVELGEN_COLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cols = n
		}
	}
	if v := os.Getenv("LEVELGEN_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Count = n
		}
	}
	if v := os.Getenv("LEVELGEN_WORDLIST_PATH"); v != "" {
		cfg.WordlistPath = v
	}
	if v := os.Getenv("LEVELGEN_RNG_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RNGSeed = n
		}
	}
}

func validate(cfg GeneratorConfig) error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("rows and cols must be positive"))
	}
	if cfg.Count < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("count must be non-negative"))
	}
	if cfg.WallRatioMin <= 0 || cfg.WallRatioMax >= 1 || cfg.WallRatioMin > cfg.WallRatioMax {
		return errors.Join(ErrInvalidConfig, errors.New("wall ratio range must lie within (0,1) with min <= max"))
	}
	return nil
}
