package keyed

import (
	"github.com/leapstack-labs/keyframe/pkg/frame"
)

// Single-table operations. Each is documented as copying (returns a new
// independent Table) or in-place (mutates the owned frame, same identity).
// Column-dropping operations apply the intersection policy: the new key is
// the old key restricted to surviving columns, old order preserved.

// SelectColumns returns a new table holding the named columns, key
// intersected with the selection. Copying.
func (t *Table) SelectColumns(names []string) (*Table, error) {
	g, err := t.f.SelectColumns(names)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: intersectKey(t.key, g.Names())}, nil
}

// Select returns a new table holding the columns at the given positions, or
// all others when invert is set. Key intersected. Copying.
func (t *Table) Select(indices []int, invert bool) (*Table, error) {
	g, err := t.f.SelectColumnsAt(indices, invert)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: intersectKey(t.key, g.Names())}, nil
}

// Delete returns a new table without the named columns. Deleted key columns
// silently drop out of the key. Copying.
func (t *Table) Delete(names ...string) (*Table, error) {
	g, err := t.f.DeleteColumns(names)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: intersectKey(t.key, g.Names())}, nil
}

// PermuteColumns returns a new table with columns reordered. No column is
// removed, so the key is unchanged. Copying.
func (t *Table) PermuteColumns(order []string) (*Table, error) {
	g, err := t.f.PermuteColumns(order)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: intersectKey(t.key, g.Names())}, nil
}

// Head returns a new table with the first n rows, key unchanged. Copying.
func (t *Table) Head(n int) *Table {
	return &Table{f: t.f.Head(n), key: t.Key()}
}

// Tail returns a new table with the last n rows, key unchanged. Copying.
func (t *Table) Tail(n int) *Table {
	return &Table{f: t.f.Tail(n), key: t.Key()}
}

// SelectRows returns a new table holding the rows at the given positions,
// key unchanged. Copying.
func (t *Table) SelectRows(indices []int) (*Table, error) {
	g, err := t.f.SelectRows(indices)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: t.Key()}, nil
}

// Rename returns a new table with columns renamed. A renamed key column is
// replaced in the key at its position. Copying.
func (t *Table) Rename(renames map[string]string) (*Table, error) {
	g, err := t.f.Rename(renames)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: renameKey(t.key, renames)}, nil
}

// RenameInPlace renames columns, propagating renames through the key. The
// table is unchanged on error. In place.
func (t *Table) RenameInPlace(renames map[string]string) error {
	if err := t.f.RenameInPlace(renames); err != nil {
		return err
	}
	t.key = renameKey(t.key, renames)
	return nil
}

// Append appends the frame's rows. The key never changes on append. In place.
func (t *Table) Append(other *frame.Frame) error {
	return t.f.AppendRows(other)
}

// AppendTable appends the other table's rows. The other table's key is
// discarded. In place.
func (t *Table) AppendTable(other *Table) error {
	return t.f.AppendRows(other.f)
}

// Sort returns a new table with rows ordered by cols, or by the key when
// cols is empty (first key column is the primary sort key). With an empty
// key too, all rows compare equal and the order is unchanged: an operation
// never fails just because the key columns were lost. Key unchanged.
// Copying.
func (t *Table) Sort(cols []string, reverse bool) (*Table, error) {
	g, err := t.f.SortBy(t.defaultColumns(cols), reverse)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: t.Key()}, nil
}

// SortInPlace sorts rows in place. See Sort.
func (t *Table) SortInPlace(cols []string, reverse bool) error {
	return t.f.SortByInPlace(t.defaultColumns(cols), reverse)
}

// Unique returns a new table keeping the first row of each distinct
// combination of cols. When cols is empty, rows compare on the key columns
// only, not on all columns; with an empty key too, every row falls in one
// group and only the first row survives. Key unchanged. Copying.
func (t *Table) Unique(cols ...string) (*Table, error) {
	g, err := t.f.UniqueBy(t.defaultColumns(cols))
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: t.Key()}, nil
}

// UniqueInPlace drops duplicate rows in place. See Unique.
func (t *Table) UniqueInPlace(cols ...string) error {
	return t.f.UniqueByInPlace(t.defaultColumns(cols))
}

// NonUnique flags duplicate rows, comparing on cols, or on the key columns
// when cols is empty. See Unique for the empty-key case.
func (t *Table) NonUnique(cols ...string) ([]bool, error) {
	return t.f.NonUniqueBy(t.defaultColumns(cols))
}

// defaultColumns resolves an empty column list to the key, which may itself
// be empty.
func (t *Table) defaultColumns(cols []string) []string {
	if len(cols) > 0 {
		return cols
	}
	return t.key
}
