package curve

import "fmt"

// Comparison is one row of a quality curve.
type Comparison struct {
	Ratio float64
	Score float64
}

// LevelResult is the outcome of comparing one level against the baseline.
// Exactly one of Comparison and Err is meaningful.
type LevelResult struct {
	Model      string
	Level      int
	Comparison Comparison
	Err        error
}

func (r LevelResult) OK() bool {
	return r.Err == nil
}

func (r LevelResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s[%d]: %v", r.Model, r.Level, r.Err)
	}
	return fmt.Sprintf("%s[%d]: reduce=%g ssim=%g", r.Model, r.Level, r.Comparison.Ratio, r.Comparison.Score)
}

// Summary reports what a Run produced.
type Summary struct {
	Model   string
	Written int
	Failed  []int
	// Negative lists levels with more faces than the baseline.
	Negative []int
}
