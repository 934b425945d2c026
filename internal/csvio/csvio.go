// Package csvio bridges CSV files and frames for the CLI. Column kinds are
// sniffed from the data: int, then float, then bool, falling back to string.
// Empty cells load as missing.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/leapstack-labs/keyframe/pkg/frame"
)

// Load reads a CSV file with a header row into a frame.
func Load(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	fr, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return fr, nil
}

// Read parses CSV from r into a frame. The first record is the header.
func Read(r io.Reader) (*frame.Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := records[0]
	rows := records[1:]

	cols := make([]frame.Column, len(header))
	for c, name := range header {
		cells := make([]string, len(rows))
		for r, rec := range rows {
			if c >= len(rec) {
				return nil, fmt.Errorf("row %d has %d fields, want %d", r+1, len(rec), len(header))
			}
			cells[r] = rec[c]
		}
		cols[c] = buildColumn(name, cells)
	}
	return frame.New(cols...)
}

// Save writes the frame as CSV with a header row. Missing cells write as
// empty fields.
func Save(w io.Writer, f *frame.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return err
	}
	record := make([]string, f.NumCols())
	for r := 0; r < f.NumRows(); r++ {
		for c := 0; c < f.NumCols(); c++ {
			v, err := f.At(r, c)
			if err != nil {
				return err
			}
			record[c] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// buildColumn sniffs the narrowest kind that fits every non-empty cell.
func buildColumn(name string, cells []string) frame.Column {
	kind := sniffKind(cells)
	values := make([]frame.Value, len(cells))
	for i, s := range cells {
		values[i] = parseCell(s, kind)
	}
	return frame.Col(name, kind, values...)
}

func sniffKind(cells []string) frame.Kind {
	kind := frame.KindMissing
	for _, s := range cells {
		if s == "" {
			continue
		}
		k := cellKind(s)
		switch {
		case kind == frame.KindMissing:
			kind = k
		case kind == k:
			// narrowest so far still fits
		case kind == frame.KindInt && k == frame.KindFloat,
			kind == frame.KindFloat && k == frame.KindInt:
			kind = frame.KindFloat
		default:
			return frame.KindString
		}
	}
	if kind == frame.KindMissing {
		// all cells empty
		return frame.KindString
	}
	return kind
}

func cellKind(s string) frame.Kind {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return frame.KindInt
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return frame.KindFloat
	}
	if s == "true" || s == "false" {
		return frame.KindBool
	}
	return frame.KindString
}

func parseCell(s string, kind frame.Kind) frame.Value {
	if s == "" {
		return frame.Missing()
	}
	switch kind {
	case frame.KindInt:
		v, _ := strconv.ParseInt(s, 10, 64)
		return frame.Int(v)
	case frame.KindFloat:
		v, _ := strconv.ParseFloat(s, 64)
		return frame.Float(v)
	case frame.KindBool:
		return frame.Bool(s == "true")
	default:
		return frame.String(s)
	}
}
