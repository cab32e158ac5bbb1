package curve

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Layout describes where the simplification levels of a model live:
// <ModelDirectory>/<model>/<model>_<level>.<FileExtension>.
type Layout struct {
	ModelDirectory string
	BaselineIndex  int
	LevelCount     int
	FileExtension  string
}

func (l Layout) Validate() error {
	if l.LevelCount < 2 {
		return fmt.Errorf("curve: level count must be at least 2, got %d", l.LevelCount)
	}
	if l.BaselineIndex < 0 || l.BaselineIndex >= l.LevelCount {
		return fmt.Errorf("curve: baseline index %d outside [0, %d)", l.BaselineIndex, l.LevelCount)
	}
	if strings.TrimPrefix(l.FileExtension, ".") == "" {
		return fmt.Errorf("curve: empty file extension")
	}
	return nil
}

// Path returns the file for one level of a model.
func (l Layout) Path(model string, level int) string {
	ext := strings.TrimPrefix(l.FileExtension, ".")
	return filepath.Join(l.ModelDirectory, model, fmt.Sprintf("%s_%d.%s", model, level, ext))
}

func (l Layout) BaselinePath(model string) string {
	return l.Path(model, l.BaselineIndex)
}

// Levels lists every level compared against the baseline, in order.
func (l Layout) Levels() []int {
	var out []int
	for i := 0; i < l.LevelCount; i++ {
		if i != l.BaselineIndex {
			out = append(out, i)
		}
	}
	return out
}
