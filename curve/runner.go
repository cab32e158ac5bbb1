// Package curve computes the quality curve of a model: for every
// simplification level, how many faces were removed and how similar the
// rendered result still looks to the baseline.
package curve

import (
	"context"
	"path/filepath"

	"github.com/netisu/meshssim"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Runner processes the levels of one model at a time.
type Runner struct {
	Layout Layout
	Scorer *Scorer
	// OutputDirectory receives <model>.csv.
	OutputDirectory string
	// Truncate empties an existing results file instead of appending.
	Truncate bool
	Logger   *zap.Logger
	// Load defaults to meshssim.LoadAndNormalize.
	Load func(path string) (*meshssim.Mesh, error)
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) load(path string) (*meshssim.Mesh, error) {
	if r.Load != nil {
		return r.Load(path)
	}
	return meshssim.LoadAndNormalize(path)
}

// OutputPath is the results file for model.
func (r *Runner) OutputPath(model string) string {
	return filepath.Join(r.OutputDirectory, model+".csv")
}

// baseline is the loaded level every other level is compared against.
type baseline struct {
	mesh *meshssim.Mesh
	ref  *Reference
}

func (r *Runner) loadBaseline(model string) (*baseline, error) {
	m, err := r.load(r.Layout.BaselinePath(model))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: baseline", model)
	}
	ref, err := r.Scorer.Reference(m)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: baseline", model)
	}
	return &baseline{mesh: m, ref: ref}, nil
}

// compare loads one level and scores it against the baseline.
func (r *Runner) compare(model string, level int, base *baseline) LevelResult {
	res := LevelResult{Model: model, Level: level}
	m, err := r.load(r.Layout.Path(model, level))
	if err != nil {
		res.Err = err
		return res
	}
	ratio, err := ReductionRatio(base.mesh, m)
	if err != nil {
		res.Err = err
		return res
	}
	score, err := base.ref.Score(m)
	if err != nil {
		res.Err = err
		return res
	}
	res.Comparison = Comparison{Ratio: ratio, Score: score}
	return res
}

// Compare computes a single level of model against its baseline.
func (r *Runner) Compare(model string, level int) LevelResult {
	base, err := r.loadBaseline(model)
	if err != nil {
		return LevelResult{Model: model, Level: level, Err: err}
	}
	return r.compare(model, level, base)
}

// Run compares every level of model with the baseline and appends one row
// per successful level to the model's results file. A failing level is
// logged and left out; only a missing baseline, an unwritable results file
// or cancellation of ctx end the run early.
func (r *Runner) Run(ctx context.Context, model string) (Summary, error) {
	log := r.logger().With(zap.String("model", model))
	sum := Summary{Model: model}

	if err := r.Layout.Validate(); err != nil {
		return sum, err
	}
	base, err := r.loadBaseline(model)
	if err != nil {
		return sum, err
	}

	out := r.OutputPath(model)
	w, err := OpenWriter(out, r.Truncate)
	if err != nil {
		return sum, errors.Wrapf(err, "%s", out)
	}
	defer w.Close()

	log.Info("processing model",
		zap.Int("levels", r.Layout.LevelCount),
		zap.Int("faces", base.mesh.FaceCount()),
		zap.String("output", out))

	for _, level := range r.Layout.Levels() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		res := r.compare(model, level, base)
		if !res.OK() {
			sum.Failed = append(sum.Failed, level)
			log.Warn("skipping level", zap.Int("level", level), zap.Error(res.Err))
			continue
		}
		if res.Comparison.Ratio < 0 {
			sum.Negative = append(sum.Negative, level)
			log.Warn("simplified mesh has more faces than the baseline",
				zap.Int("level", level), zap.Float64("reduce", res.Comparison.Ratio))
		}
		if err := w.Write(res.Comparison); err != nil {
			return sum, errors.Wrapf(err, "%s", out)
		}
		sum.Written++
		log.Debug("level done",
			zap.Int("level", level),
			zap.Float64("reduce", res.Comparison.Ratio),
			zap.Float64("ssim", res.Comparison.Score))
	}

	log.Info("model done", zap.Int("written", sum.Written), zap.Int("failed", len(sum.Failed)))
	return sum, w.Close()
}
