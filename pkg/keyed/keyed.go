// Package keyed wraps a frame with an ordered set of key column names, used
// as the default column set for joins, sorting and deduplication. The frame
// stays the sole source of truth for data and layout; the key is a hint, not
// a constraint. Operations that drop or rename columns reconcile the key
// against the surviving columns and never fail just because a key column
// disappeared.
package keyed

import (
	"log/slog"

	"github.com/leapstack-labs/keyframe/pkg/frame"
)

// logger receives deprecation warnings. Discard unless SetLogger is called.
var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the package's warnings to l. A nil l restores the discard
// logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Table is a frame plus an ordered, duplicate-free list of key column names.
// Every key column names an existing frame column; the invariant holds after
// every operation.
type Table struct {
	f   *frame.Frame
	key []string
}

// New builds a keyed table over f. The key is deduplicated preserving first
// occurrence order, then validated: a key column absent from f fails with an
// *InvalidKeyError and no table is built. The frame is owned by the table
// (not copied).
func New(f *frame.Frame, key ...string) (*Table, error) {
	k := dedupe(key)
	var missing []string
	for _, name := range k {
		if _, ok := f.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &InvalidKeyError{Missing: missing, Available: f.Names()}
	}
	return &Table{f: f, key: k}, nil
}

// MustNew is New that panics on error, for tests and literals.
func MustNew(f *frame.Frame, key ...string) *Table {
	t, err := New(f, key...)
	if err != nil {
		panic(err)
	}
	return t
}

// Frame returns the owned frame.
func (t *Table) Frame() *frame.Frame { return t.f }

// Key returns a copy of the key column names, in precedence order.
func (t *Table) Key() []string {
	k := make([]string, len(t.key))
	copy(k, t.key)
	return k
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.f.NumRows() }

// NumCols returns the column count.
func (t *Table) NumCols() int { return t.f.NumCols() }

// Names returns the column names in order.
func (t *Table) Names() []string { return t.f.Names() }

// At returns the value at (row, col).
func (t *Table) At(row, col int) (frame.Value, error) { return t.f.At(row, col) }

// Set assigns the value at (row, col), delegating to the frame. In place.
func (t *Table) Set(row, col int, v frame.Value) error { return t.f.Set(row, col, v) }

// ColumnValues returns the named column's values. Selecting a single column
// yields the raw column, not a keyed table.
func (t *Table) ColumnValues(name string) ([]frame.Value, error) {
	c, err := t.f.Column(name)
	if err != nil {
		return nil, err
	}
	return c.Values, nil
}

// Clone returns a deep copy with the same key.
func (t *Table) Clone() *Table {
	return &Table{f: t.f.Clone(), key: t.Key()}
}

// dedupe removes repeated names, keeping first occurrences in order.
func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
