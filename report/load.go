package report

import (
	"path/filepath"

	"github.com/netisu/meshssim/curve"
	"github.com/pkg/errors"
)

// LoadCurves reads <dir>/<model>.csv for every model.
func LoadCurves(dir string, models []string) ([]Curve, error) {
	curves := make([]Curve, 0, len(models))
	for _, m := range models {
		rows, err := curve.ReadFile(filepath.Join(dir, m+".csv"))
		if err != nil {
			return nil, errors.Wrapf(err, "load curve %s", m)
		}
		curves = append(curves, Curve{Model: m, Points: FromComparisons(rows)})
	}
	return curves, nil
}
