package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/keyframe/internal/csvio"
	"github.com/leapstack-labs/keyframe/pkg/frame"
)

// RenderFrame writes the frame to w in the given format: table, json, csv or
// md.
func RenderFrame(w io.Writer, f *frame.Frame, format string) error {
	switch format {
	case "json":
		return renderJSON(w, f)
	case "csv":
		return csvio.Save(w, f)
	case "md", "markdown":
		return renderPretty(w, f, true)
	default:
		return renderPretty(w, f, false)
	}
}

func renderPretty(w io.Writer, f *frame.Frame, markdown bool) error {
	if f.NumRows() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	names := f.Names()
	headerRow := make(table.Row, len(names))
	for i, n := range names {
		headerRow[i] = n
	}
	t.AppendHeader(headerRow)

	for r := 0; r < f.NumRows(); r++ {
		row := make(table.Row, f.NumCols())
		for c := 0; c < f.NumCols(); c++ {
			v, err := f.At(r, c)
			if err != nil {
				return err
			}
			row[c] = v.String()
		}
		t.AppendRow(row)
	}

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	_, _ = fmt.Fprintf(w, "(%d rows)\n", f.NumRows())
	return nil
}

func renderJSON(w io.Writer, f *frame.Frame) error {
	names := f.Names()
	results := make([]map[string]any, 0, f.NumRows())
	for r := 0; r < f.NumRows(); r++ {
		row := make(map[string]any, len(names))
		for c, n := range names {
			v, err := f.At(r, c)
			if err != nil {
				return err
			}
			row[n] = v.Any()
		}
		results = append(results, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
