// Package frame provides an in-memory columnar table: an ordered sequence of
// named, typed columns sharing a row count. It supplies the structural and
// relational primitives (selection, rename, sort, dedup, joins) that higher
// layers compose; it knows nothing about keys or defaulting.
package frame

import (
	"fmt"
)

// Frame is an ordered collection of equally long columns. The zero Frame is
// empty and usable.
type Frame struct {
	cols  []Column
	index map[string]int
}

// New builds a frame from columns. All columns must be named uniquely, share
// the same length, and hold values matching their kind.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	rows := -1
	for _, c := range cols {
		if err := c.check(); err != nil {
			return nil, err
		}
		if _, ok := f.index[c.Name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		if rows >= 0 && len(c.Values) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, len(c.Values), rows)
		}
		rows = len(c.Values)
		f.index[c.Name] = len(f.cols)
		f.cols = append(f.cols, c.clone())
	}
	return f, nil
}

// MustNew is New that panics on error, for tests and literals.
func MustNew(cols ...Column) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// NumRows returns the row count.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0].Values)
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the position of a named column.
func (f *Frame) Lookup(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, &ColumnNotFoundError{Column: name, Available: f.Names()}
	}
	return f.cols[i].clone(), nil
}

// ColumnAt returns a copy of the column at position i.
func (f *Frame) ColumnAt(i int) (Column, error) {
	if i < 0 || i >= len(f.cols) {
		return Column{}, fmt.Errorf("column index %d out of range [0,%d)", i, len(f.cols))
	}
	return f.cols[i].clone(), nil
}

// At returns the value at (row, col).
func (f *Frame) At(row, col int) (Value, error) {
	if col < 0 || col >= len(f.cols) {
		return Value{}, fmt.Errorf("column index %d out of range [0,%d)", col, len(f.cols))
	}
	if row < 0 || row >= f.NumRows() {
		return Value{}, fmt.Errorf("row index %d out of range [0,%d)", row, f.NumRows())
	}
	return f.cols[col].Values[row], nil
}

// Set assigns the value at (row, col) in place. The value kind must match the
// column kind or be missing.
func (f *Frame) Set(row, col int, v Value) error {
	if col < 0 || col >= len(f.cols) {
		return fmt.Errorf("column index %d out of range [0,%d)", col, len(f.cols))
	}
	if row < 0 || row >= f.NumRows() {
		return fmt.Errorf("row index %d out of range [0,%d)", row, f.NumRows())
	}
	if !v.IsMissing() && v.kind != f.cols[col].Kind {
		return fmt.Errorf("column %q: cannot assign %s value to %s column", f.cols[col].Name, v.kind, f.cols[col].Kind)
	}
	f.cols[col].Values[row] = v
	return nil
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	g := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.cols)),
	}
	for i, c := range f.cols {
		g.cols[i] = c.clone()
		g.index[c.Name] = i
	}
	return g
}

// columnIndexes resolves names to positions, failing on the first unknown.
func (f *Frame) columnIndexes(names []string) ([]int, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		p, ok := f.index[n]
		if !ok {
			return nil, &ColumnNotFoundError{Column: n, Available: f.Names()}
		}
		idx[i] = p
	}
	return idx, nil
}

// SelectColumns returns a new frame holding the named columns, in the order
// given.
func (f *Frame) SelectColumns(names []string) (*Frame, error) {
	idx, err := f.columnIndexes(names)
	if err != nil {
		return nil, err
	}
	return f.selectAt(idx)
}

// SelectColumnsAt returns a new frame holding the columns at the given
// positions, preserving the given order. With invert set, it instead keeps
// every column whose position is not listed, in original order.
func (f *Frame) SelectColumnsAt(indices []int, invert bool) (*Frame, error) {
	for _, i := range indices {
		if i < 0 || i >= len(f.cols) {
			return nil, fmt.Errorf("column index %d out of range [0,%d)", i, len(f.cols))
		}
	}
	if !invert {
		return f.selectAt(indices)
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	var keep []int
	for i := range f.cols {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return f.selectAt(keep)
}

// DeleteColumns returns a new frame without the named columns.
func (f *Frame) DeleteColumns(names []string) (*Frame, error) {
	idx, err := f.columnIndexes(names)
	if err != nil {
		return nil, err
	}
	return f.SelectColumnsAt(idx, true)
}

// PermuteColumns returns a new frame with columns reordered. The order must
// name every column exactly once.
func (f *Frame) PermuteColumns(order []string) (*Frame, error) {
	if len(order) != len(f.cols) {
		return nil, fmt.Errorf("permutation names %d columns, frame has %d", len(order), len(f.cols))
	}
	idx, err := f.columnIndexes(order)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(idx))
	for _, i := range idx {
		if seen[i] {
			return nil, fmt.Errorf("permutation names column %q more than once", f.cols[i].Name)
		}
		seen[i] = true
	}
	return f.selectAt(idx)
}

// Rename returns a new frame with columns renamed per the old-to-new map.
// Column order and data are unchanged. All entries apply together, so a
// target may reuse a name another entry vacates; only the final name set is
// checked for collisions.
func (f *Frame) Rename(renames map[string]string) (*Frame, error) {
	for old := range renames {
		if _, ok := f.index[old]; !ok {
			return nil, &ColumnNotFoundError{Column: old, Available: f.Names()}
		}
	}
	final := make([]string, len(f.cols))
	for i, c := range f.cols {
		final[i] = c.Name
		if name, ok := renames[c.Name]; ok {
			final[i] = name
		}
	}
	if dup := firstDuplicate(final); dup != "" {
		return nil, fmt.Errorf("rename collides on column name %q", dup)
	}
	g := f.Clone()
	g.index = make(map[string]int, len(final))
	for i, name := range final {
		g.cols[i].Name = name
		g.index[name] = i
	}
	return g, nil
}

// RenameInPlace renames columns in place. The frame is unchanged on error.
func (f *Frame) RenameInPlace(renames map[string]string) error {
	g, err := f.Rename(renames)
	if err != nil {
		return err
	}
	f.cols, f.index = g.cols, g.index
	return nil
}

// Head returns a new frame with the first n rows. n is clamped to the row
// count.
func (f *Frame) Head(n int) *Frame {
	rows := f.NumRows()
	if n > rows {
		n = rows
	}
	if n < 0 {
		n = 0
	}
	g, _ := f.sliceRows(0, n)
	return g
}

// Tail returns a new frame with the last n rows. n is clamped to the row
// count.
func (f *Frame) Tail(n int) *Frame {
	rows := f.NumRows()
	if n > rows {
		n = rows
	}
	if n < 0 {
		n = 0
	}
	g, _ := f.sliceRows(rows-n, rows)
	return g
}

// SelectRows returns a new frame holding the rows at the given positions, in
// the order given. Positions may repeat.
func (f *Frame) SelectRows(indices []int) (*Frame, error) {
	rows := f.NumRows()
	for _, r := range indices {
		if r < 0 || r >= rows {
			return nil, fmt.Errorf("row index %d out of range [0,%d)", r, rows)
		}
	}
	g := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.cols)),
	}
	for i, c := range f.cols {
		values := make([]Value, len(indices))
		for j, r := range indices {
			values[j] = c.Values[r]
		}
		g.cols[i] = Column{Name: c.Name, Kind: c.Kind, Values: values}
		g.index[c.Name] = i
	}
	return g, nil
}

// AppendRows appends other's rows in place. The other frame must have the
// same column names and kinds, in any order. The receiver is unchanged on
// error.
func (f *Frame) AppendRows(other *Frame) error {
	if len(other.cols) != len(f.cols) {
		return fmt.Errorf("append: frame has %d columns, other has %d", len(f.cols), len(other.cols))
	}
	src := make([]int, len(f.cols))
	for i, c := range f.cols {
		j, ok := other.index[c.Name]
		if !ok {
			return &ColumnNotFoundError{Column: c.Name, Available: other.Names()}
		}
		if other.cols[j].Kind != c.Kind {
			return fmt.Errorf("append: column %q is %s, other is %s", c.Name, c.Kind, other.cols[j].Kind)
		}
		src[i] = j
	}
	for i := range f.cols {
		f.cols[i].Values = append(f.cols[i].Values, other.cols[src[i]].Values...)
	}
	return nil
}

// selectAt builds a new frame from column positions, cloning data.
func (f *Frame) selectAt(indices []int) (*Frame, error) {
	g := &Frame{
		cols:  make([]Column, 0, len(indices)),
		index: make(map[string]int, len(indices)),
	}
	for _, i := range indices {
		c := f.cols[i]
		if _, ok := g.index[c.Name]; ok {
			return nil, fmt.Errorf("duplicate column name %q in selection", c.Name)
		}
		g.index[c.Name] = len(g.cols)
		g.cols = append(g.cols, c.clone())
	}
	return g, nil
}

// sliceRows copies the half-open row range [lo, hi).
func (f *Frame) sliceRows(lo, hi int) (*Frame, error) {
	g := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.cols)),
	}
	for i, c := range f.cols {
		values := make([]Value, hi-lo)
		copy(values, c.Values[lo:hi])
		g.cols[i] = Column{Name: c.Name, Kind: c.Kind, Values: values}
		g.index[c.Name] = i
	}
	return g, nil
}

// rowKey appends a canonical encoding of the row's values at the given column
// positions. Rows with equal keys group together under UniqueBy and joins.
func (f *Frame) rowKey(dst []byte, row int, cols []int) []byte {
	for _, c := range cols {
		dst = f.cols[c].Values[row].appendEncoded(dst)
	}
	return dst
}

// EqualValues reports whether two frames have the same column names in the
// same order and value-equal cells (see Value.EqualValue).
func EqualValues(a, b *Frame) bool {
	if len(a.cols) != len(b.cols) || a.NumRows() != b.NumRows() {
		return false
	}
	for i := range a.cols {
		if a.cols[i].Name != b.cols[i].Name {
			return false
		}
		for r := range a.cols[i].Values {
			if !a.cols[i].Values[r].EqualValue(b.cols[i].Values[r]) {
				return false
			}
		}
	}
	return true
}

// Identical reports whether two frames have the same column names, kinds and
// representation-identical cells (see Value.Identical).
func Identical(a, b *Frame) bool {
	if len(a.cols) != len(b.cols) || a.NumRows() != b.NumRows() {
		return false
	}
	for i := range a.cols {
		if a.cols[i].Name != b.cols[i].Name || a.cols[i].Kind != b.cols[i].Kind {
			return false
		}
		for r := range a.cols[i].Values {
			if !a.cols[i].Values[r].Identical(b.cols[i].Values[r]) {
				return false
			}
		}
	}
	return true
}
