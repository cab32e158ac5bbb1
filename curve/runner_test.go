package curve

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testRunner(t *testing.T, layout Layout) (*Runner, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return &Runner{
		Layout:          layout,
		Scorer:          testScorer(t, 24, 4),
		OutputDirectory: filepath.Join(t.TempDir(), "curve"),
		Logger:          zap.New(core),
	}, logs
}

func TestRunSkipsBadLevel(t *testing.T) {
	layout := writeLevels(t, t.TempDir(), "cube", 10, map[int]string{5: "v 0 x 0\n"})
	r, logs := testRunner(t, layout)

	sum, err := r.Run(context.Background(), "cube")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Written != 8 {
		t.Errorf("expected 8 rows written, got %d", sum.Written)
	}
	if !reflect.DeepEqual(sum.Failed, []int{5}) {
		t.Errorf("expected level 5 to fail, got %v", sum.Failed)
	}

	skipped := logs.FilterMessage("skipping level").FilterField(zap.Int("level", 5))
	if skipped.Len() != 1 {
		t.Errorf("expected one skip warning for level 5, got %d", skipped.Len())
	}
	for _, e := range skipped.All() {
		if e.Level != zapcore.WarnLevel {
			t.Errorf("expected warn level, got %v", e.Level)
		}
	}

	rows, err := ReadFile(r.OutputPath("cube"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}
	var want []float64
	for _, level := range []int{1, 2, 3, 4, 6, 7, 8, 9} {
		want = append(want, float64(level)/12)
	}
	for i, row := range rows {
		if math.Abs(row.Ratio-want[i]) > 1e-12 {
			t.Errorf("row %d: expected ratio %g, got %g", i, want[i], row.Ratio)
		}
		if row.Score > 1 || row.Score < -1 {
			t.Errorf("row %d: ssim %g out of range", i, row.Score)
		}
	}
	if lines := readLines(t, r.OutputPath("cube")); lines[0] != "reduce,ssim" {
		t.Errorf("expected header first, got %q", lines[0])
	}
}

func TestRunSkipsMissingLevel(t *testing.T) {
	layout := writeLevels(t, t.TempDir(), "cube", 4, map[int]string{2: ""})
	r, _ := testRunner(t, layout)

	sum, err := r.Run(context.Background(), "cube")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Written != 2 || !reflect.DeepEqual(sum.Failed, []int{2}) {
		t.Errorf("expected 2 rows and level 2 failed, got %+v", sum)
	}
}

func TestRunAppends(t *testing.T) {
	layout := writeLevels(t, t.TempDir(), "cube", 3, nil)
	r, _ := testRunner(t, layout)

	for i := 0; i < 2; i++ {
		if _, err := r.Run(context.Background(), "cube"); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}
	lines := readLines(t, r.OutputPath("cube"))
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 rows, got %q", lines)
	}
	for _, l := range lines[1:] {
		if l == "reduce,ssim" {
			t.Error("header written twice")
		}
	}

	r.Truncate = true
	if _, err := r.Run(context.Background(), "cube"); err != nil {
		t.Fatalf("truncating run failed: %v", err)
	}
	if lines := readLines(t, r.OutputPath("cube")); len(lines) != 3 {
		t.Errorf("expected header and 2 rows after truncate, got %q", lines)
	}
}

func TestRunNegativeRatio(t *testing.T) {
	doubled := cube(12)
	doubled.Faces = append(doubled.Faces, doubled.Faces...)
	layout := writeLevels(t, t.TempDir(), "cube", 3, map[int]string{1: objText(doubled)})
	r, logs := testRunner(t, layout)

	sum, err := r.Run(context.Background(), "cube")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Written != 2 {
		t.Errorf("expected 2 rows, got %d", sum.Written)
	}
	if !reflect.DeepEqual(sum.Negative, []int{1}) {
		t.Errorf("expected level 1 flagged negative, got %v", sum.Negative)
	}
	if logs.FilterMessage("simplified mesh has more faces than the baseline").Len() != 1 {
		t.Error("expected a warning for the negative ratio")
	}
	rows, err := ReadFile(r.OutputPath("cube"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if rows[0].Ratio != -1 {
		t.Errorf("expected ratio -1 kept as is, got %g", rows[0].Ratio)
	}
}

func TestRunMissingBaseline(t *testing.T) {
	layout := writeLevels(t, t.TempDir(), "cube", 3, map[int]string{0: ""})
	r, _ := testRunner(t, layout)

	if _, err := r.Run(context.Background(), "cube"); err == nil {
		t.Fatal("expected an error without a baseline")
	}
	if _, err := os.Stat(r.OutputPath("cube")); !os.IsNotExist(err) {
		t.Errorf("expected no results file, stat returned %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	layout := writeLevels(t, t.TempDir(), "cube", 4, nil)
	r, _ := testRunner(t, layout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := r.Run(ctx, "cube")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sum.Written != 0 {
		t.Errorf("expected nothing written, got %d", sum.Written)
	}
}

func TestCompareSingleLevel(t *testing.T) {
	layout := writeLevels(t, t.TempDir(), "cube", 4, nil)
	r, _ := testRunner(t, layout)

	res := r.Compare("cube", 3)
	if !res.OK() {
		t.Fatalf("Compare failed: %v", res.Err)
	}
	if res.Comparison.Ratio != 0.25 {
		t.Errorf("expected ratio 0.25, got %g", res.Comparison.Ratio)
	}
	if res.Level != 3 || res.Model != "cube" {
		t.Errorf("unexpected result identity %s", res)
	}

	if res := r.Compare("cube", 9); res.OK() {
		t.Error("expected an error for a level that does not exist")
	}
}
