package report

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/netisu/meshssim/curve"
	"github.com/tealeg/xlsx"
)

func TestFitQuadraticExact(t *testing.T) {
	var xys XYs
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		xys = append(xys, XY{x, 1 - 2*x + 3*x*x})
	}
	p, err := FitQuadratic(xys)
	if err != nil {
		t.Fatalf("FitQuadratic failed: %v", err)
	}
	want := Polynomial{1, -2, 3}
	for i := range want {
		if math.Abs(p[i]-want[i]) > 1e-9 {
			t.Errorf("coefficient %d: expected %g, got %g", i, want[i], p[i])
		}
	}
	if got := p.At(2); math.Abs(got-9) > 1e-9 {
		t.Errorf("expected p(2) = 9, got %g", got)
	}
}

func TestFitPolynomialErrors(t *testing.T) {
	xys := XYs{{0, 1}, {1, 2}}
	if _, err := FitPolynomial(xys, 2); err == nil {
		t.Error("expected an error fitting 2 points with order 2")
	}
	if _, err := FitPolynomial(xys, -1); err == nil {
		t.Error("expected an error for a negative order")
	}
}

func TestNormalizeY(t *testing.T) {
	xys := XYs{{0, 0.9}, {0.5, 0.7}, {1, 0.5}}
	got := xys.NormalizeY()
	want := []float64{1, 0.5, 0}
	for i, p := range got {
		if math.Abs(p.Y-want[i]) > 1e-12 {
			t.Errorf("point %d: expected %g, got %g", i, want[i], p.Y)
		}
	}
	if xys[0].Y != 0.9 {
		t.Error("NormalizeY modified its receiver")
	}
	for _, p := range (XYs{{0, 0.4}, {1, 0.4}}).NormalizeY() {
		if p.Y != 1 {
			t.Errorf("expected a flat curve to map to 1, got %g", p.Y)
		}
	}
}

func TestFromComparisonsSorts(t *testing.T) {
	xys := FromComparisons([]curve.Comparison{{Ratio: 0.5, Score: 0.8}, {Ratio: 0.1, Score: 0.99}, {Ratio: 0.3, Score: 0.9}})
	for i := 1; i < len(xys); i++ {
		if xys[i-1].X > xys[i].X {
			t.Fatalf("points not sorted by ratio: %v", xys)
		}
	}
	if xys[0].Y != 0.99 {
		t.Errorf("expected ssim to follow its ratio, got %v", xys[0])
	}
}

func TestSummarize(t *testing.T) {
	xys := XYs{{0, 1}, {0.5, 0.8}, {1, 0.6}}
	s := Summarize("cube", xys)
	if s.N != 3 {
		t.Errorf("expected 3 points, got %d", s.N)
	}
	if math.Abs(s.Pearson+1) > 1e-12 {
		t.Errorf("expected a perfect negative correlation, got %g", s.Pearson)
	}
	if math.Abs(s.Kendall+1) > 1e-12 {
		t.Errorf("expected Kendall tau -1, got %g", s.Kendall)
	}
	if math.Abs(s.MeanSSIM-0.8) > 1e-12 {
		t.Errorf("expected mean 0.8, got %g", s.MeanSSIM)
	}
	if math.Abs(s.StdDev-0.2) > 1e-12 {
		t.Errorf("expected std 0.2, got %g", s.StdDev)
	}
	if s.MinSSIM != 0.6 || s.MaxSSIM != 1 {
		t.Errorf("expected range [0.6, 1], got [%g, %g]", s.MinSSIM, s.MaxSSIM)
	}
	if empty := Summarize("none", nil); empty.N != 0 {
		t.Errorf("expected an empty summary, got %+v", empty)
	}
}

func TestSummarizeKendall(t *testing.T) {
	// One concordant and two discordant pairs.
	s := Summarize("cube", XYs{{0, 1}, {0.5, 0.6}, {1, 0.8}})
	if math.Abs(s.Kendall+1.0/3) > 1e-12 {
		t.Errorf("expected Kendall tau -1/3, got %g", s.Kendall)
	}
}

func writeCurve(t *testing.T, dir, model string, rows []curve.Comparison) {
	t.Helper()
	w, err := curve.OpenWriter(filepath.Join(dir, model+".csv"), true)
	if err != nil {
		t.Fatalf("OpenWriter failed: %v", err)
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func testCurves(t *testing.T) (string, []Curve) {
	t.Helper()
	dir := t.TempDir()
	writeCurve(t, dir, "cube", []curve.Comparison{{Ratio: 0.1, Score: 0.99}, {Ratio: 0.5, Score: 0.9}, {Ratio: 0.9, Score: 0.6}})
	writeCurve(t, dir, "teapot", []curve.Comparison{{Ratio: 0.2, Score: 0.97}, {Ratio: 0.6, Score: 0.85}, {Ratio: 0.8, Score: 0.7}, {Ratio: 0.95, Score: 0.4}})
	curves, err := LoadCurves(dir, []string{"cube", "teapot"})
	if err != nil {
		t.Fatalf("LoadCurves failed: %v", err)
	}
	return dir, curves
}

func TestLoadCurves(t *testing.T) {
	dir, curves := testCurves(t)
	if len(curves) != 2 || curves[1].Model != "teapot" || curves[1].Points.Len() != 4 {
		t.Fatalf("unexpected curves %+v", curves)
	}
	if _, err := LoadCurves(dir, []string{"missing"}); err == nil {
		t.Error("expected an error for a missing results file")
	}
}

func TestSaveCurveFigure(t *testing.T) {
	_, curves := testCurves(t)
	path := filepath.Join(t.TempDir(), "curve.png")
	if err := SaveCurveFigure(path, curves, DefaultFigureOptions()); err != nil {
		t.Fatalf("SaveCurveFigure failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("figure is empty")
	}
}

func TestWriteWorkbook(t *testing.T) {
	_, curves := testCurves(t)
	path := filepath.Join(t.TempDir(), "curves.xlsx")
	if err := WriteWorkbook(path, curves); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	wb, err := xlsx.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(wb.Sheets))
	}
	sheet := wb.Sheet["teapot"]
	if sheet == nil {
		t.Fatal("missing teapot sheet")
	}
	if len(sheet.Rows) != 5 {
		t.Errorf("expected header and 4 rows, got %d", len(sheet.Rows))
	}
	if v := sheet.Rows[0].Cells[1].Value; v != "ssim" {
		t.Errorf("expected ssim header, got %q", v)
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  string
	}{
		{"short", "teapot", "teapot"},
		{"ascii", "a_model_name_that_is_much_longer_than_excel_allows", "a_model_name_that_is_much_longe"},
		{"multibyte", strings.Repeat("é", 40), strings.Repeat("é", 31)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sheetName(tc.model)
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if !utf8.ValidString(got) {
				t.Errorf("sheet name %q is not valid UTF-8", got)
			}
		})
	}
}
