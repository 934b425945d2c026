package frame

// NonUniqueBy flags duplicate rows, comparing only the given columns. The
// first occurrence of each distinct combination is false; every later
// occurrence is true. Missing compares equal to missing here.
func (f *Frame) NonUniqueBy(cols []string) ([]bool, error) {
	idx, err := f.columnIndexes(cols)
	if err != nil {
		return nil, err
	}
	rows := f.NumRows()
	flags := make([]bool, rows)
	seen := make(map[string]bool, rows)
	var buf []byte
	for r := 0; r < rows; r++ {
		buf = f.rowKey(buf[:0], r, idx)
		k := string(buf)
		if seen[k] {
			flags[r] = true
		} else {
			seen[k] = true
		}
	}
	return flags, nil
}

// UniqueBy returns a new frame keeping the first row of each distinct
// combination of the given columns, in original row order.
func (f *Frame) UniqueBy(cols []string) (*Frame, error) {
	flags, err := f.NonUniqueBy(cols)
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, len(flags))
	for r, dup := range flags {
		if !dup {
			keep = append(keep, r)
		}
	}
	return f.SelectRows(keep)
}

// UniqueByInPlace drops duplicate rows in place. See UniqueBy.
func (f *Frame) UniqueByInPlace(cols []string) error {
	g, err := f.UniqueBy(cols)
	if err != nil {
		return err
	}
	f.cols = g.cols
	f.index = g.index
	return nil
}
