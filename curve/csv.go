package curve

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Header is the first record of every results file.
var Header = []string{"reduce", "ssim"}

// Writer appends comparisons to a results file, flushing each row so a
// crash mid-batch keeps everything written so far.
type Writer struct {
	file   *os.File
	csv    *csv.Writer
	closed bool
}

// OpenWriter opens path for appending, creating it and its directory if
// needed. The header is written when the file is empty. With truncate
// the file is emptied first.
func OpenWriter(path string, truncate bool) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create results directory")
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open results file")
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "stat results file")
	}
	w := &Writer{file: f, csv: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := w.writeRecord(Header); err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Writer) Write(c Comparison) error {
	return w.writeRecord([]string{formatFloat(c.Ratio), formatFloat(c.Score)})
}

func (w *Writer) writeRecord(rec []string) error {
	if err := w.csv.Write(rec); err != nil {
		return errors.Wrap(err, "write results row")
	}
	w.csv.Flush()
	return errors.Wrap(w.csv.Error(), "flush results row")
}

// Close flushes and closes the file. Later calls do nothing.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadFile reads a results file written by Writer. Repeated header lines,
// left behind by appending runs, are skipped.
func ReadFile(path string) ([]Comparison, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) ([]Comparison, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var out []Comparison
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(rec) < 2 {
			return nil, errors.Errorf("line %d: expected 2 fields, got %d", line, len(rec))
		}
		if rec[0] == Header[0] && rec[1] == Header[1] {
			continue
		}
		ratio, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		score, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, Comparison{Ratio: ratio, Score: score})
	}
}
