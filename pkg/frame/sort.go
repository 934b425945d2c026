package frame

import "sort"

// SortBy returns a new frame with rows ordered by the given columns, first
// column most significant. The sort is stable; missing values order first,
// or last when reverse is set.
func (f *Frame) SortBy(cols []string, reverse bool) (*Frame, error) {
	g := f.Clone()
	if err := g.SortByInPlace(cols, reverse); err != nil {
		return nil, err
	}
	return g, nil
}

// SortByInPlace sorts the frame's rows in place. See SortBy.
func (f *Frame) SortByInPlace(cols []string, reverse bool) error {
	idx, err := f.columnIndexes(cols)
	if err != nil {
		return err
	}
	rows := f.NumRows()
	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := order[a], order[b]
		for _, c := range idx {
			va, vb := f.cols[c].Values[ra], f.cols[c].Values[rb]
			if va.Less(vb) {
				return !reverse
			}
			if vb.Less(va) {
				return reverse
			}
		}
		return false
	})
	f.reorderRows(order)
	return nil
}

// reorderRows rearranges every column to the given row order.
func (f *Frame) reorderRows(order []int) {
	for i := range f.cols {
		values := make([]Value, len(order))
		for j, r := range order {
			values[j] = f.cols[i].Values[r]
		}
		f.cols[i].Values = values
	}
}
