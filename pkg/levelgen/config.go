package levelgen

// Config holds every tunable parameter for one generation run. Field names
// mirror internal/config.GeneratorConfig; this copy is the subset the core
// Driver actually consumes, keeping pkg/levelgen free of a dependency on
// the ambient config/YAML layer.
type Config struct {
	Rows, Cols       int
	MinAvgWordLen    float64
	WallRatioMin     float64
	WallRatioMax     float64
	GoalTopFraction  float64
	ExtraLetterRatio float64
	MaxAttempts      int // 0 = unbounded
}
