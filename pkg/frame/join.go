package frame

import (
	"fmt"
	"strings"
)

// JoinKind selects the join primitive.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	OuterJoin
	SemiJoin
	AntiJoin
	CrossJoin
)

// String returns the lowercase kind name.
func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "inner"
	case LeftJoin:
		return "left"
	case RightJoin:
		return "right"
	case OuterJoin:
		return "outer"
	case SemiJoin:
		return "semi"
	case AntiJoin:
		return "anti"
	case CrossJoin:
		return "cross"
	default:
		return "unknown"
	}
}

// ParseJoinKind parses a join kind name. "full" is accepted for outer.
func ParseJoinKind(s string) (JoinKind, error) {
	switch strings.ToLower(s) {
	case "inner":
		return InnerJoin, nil
	case "left":
		return LeftJoin, nil
	case "right":
		return RightJoin, nil
	case "outer", "full":
		return OuterJoin, nil
	case "semi":
		return SemiJoin, nil
	case "anti":
		return AntiJoin, nil
	case "cross":
		return CrossJoin, nil
	default:
		return 0, fmt.Errorf("unknown join kind %q", s)
	}
}

// OnPair names one equality condition: left column equals right column.
type OnPair struct {
	Left  string
	Right string
}

// On builds symmetric on-pairs from column names shared by both sides.
func On(names ...string) []OnPair {
	pairs := make([]OnPair, len(names))
	for i, n := range names {
		pairs[i] = OnPair{Left: n, Right: n}
	}
	return pairs
}

// Join combines two frames. For equi-joins (all kinds but cross) rows pair up
// where the on-columns compare identical; rows with a missing on-value never
// match. Semi and anti joins return left columns only. For the other kinds
// the output holds every left column followed by the right columns that are
// not on-columns; a right column whose name collides with an earlier output
// name is renamed with a _1, _2, ... suffix. Cross ignores on and pairs every
// row with every row.
func Join(left, right *Frame, kind JoinKind, on []OnPair) (*Frame, error) {
	if kind == CrossJoin {
		return crossJoin(left, right)
	}
	if len(on) == 0 {
		return nil, fmt.Errorf("%s join requires at least one on column", kind)
	}

	leftNames := make([]string, len(on))
	rightNames := make([]string, len(on))
	for i, p := range on {
		leftNames[i] = p.Left
		rightNames[i] = p.Right
	}
	if dup := firstDuplicate(leftNames); dup != "" {
		return nil, &AmbiguousJoinColumnError{Column: dup}
	}
	if dup := firstDuplicate(rightNames); dup != "" {
		return nil, &AmbiguousJoinColumnError{Column: dup}
	}
	leftIdx, err := left.columnIndexes(leftNames)
	if err != nil {
		return nil, err
	}
	rightIdx, err := right.columnIndexes(rightNames)
	if err != nil {
		return nil, err
	}
	for i := range on {
		lk := left.cols[leftIdx[i]].Kind
		rk := right.cols[rightIdx[i]].Kind
		if lk != rk {
			return nil, fmt.Errorf("join on %q = %q: kind mismatch (%s vs %s)", on[i].Left, on[i].Right, lk, rk)
		}
	}

	if kind == SemiJoin || kind == AntiJoin {
		return filterJoin(left, right, kind, leftIdx, rightIdx)
	}
	return mergeJoin(left, right, kind, leftIdx, rightIdx)
}

// filterJoin implements semi and anti joins: left rows with at least one or
// with no match, projected to left columns only.
func filterJoin(left, right *Frame, kind JoinKind, leftIdx, rightIdx []int) (*Frame, error) {
	exists := make(map[string]bool, right.NumRows())
	var buf []byte
	for r := 0; r < right.NumRows(); r++ {
		if rowHasMissing(right, r, rightIdx) {
			continue
		}
		buf = right.rowKey(buf[:0], r, rightIdx)
		exists[string(buf)] = true
	}
	var keep []int
	for r := 0; r < left.NumRows(); r++ {
		matched := false
		if !rowHasMissing(left, r, leftIdx) {
			buf = left.rowKey(buf[:0], r, leftIdx)
			matched = exists[string(buf)]
		}
		if matched == (kind == SemiJoin) {
			keep = append(keep, r)
		}
	}
	return left.SelectRows(keep)
}

// outCol describes one output column of a merge join.
type outCol struct {
	name     string
	kind     Kind
	fromLeft bool
	src      int // column position in the source frame
	onPos    int // on-pair position if this is a left on-column, else -1
}

// mergeJoin implements inner, left, right and outer joins.
func mergeJoin(left, right *Frame, kind JoinKind, leftIdx, rightIdx []int) (*Frame, error) {
	rightOn := make(map[int]bool, len(rightIdx))
	for _, i := range rightIdx {
		rightOn[i] = true
	}
	leftOnPos := make(map[int]int, len(leftIdx))
	for p, i := range leftIdx {
		leftOnPos[i] = p
	}

	var schema []outCol
	taken := make(map[string]bool, left.NumCols()+right.NumCols())
	for i, c := range left.cols {
		onPos := -1
		if p, ok := leftOnPos[i]; ok {
			onPos = p
		}
		taken[c.Name] = true
		schema = append(schema, outCol{name: c.Name, kind: c.Kind, fromLeft: true, src: i, onPos: onPos})
	}
	for i, c := range right.cols {
		if rightOn[i] {
			continue
		}
		schema = append(schema, outCol{name: freeName(taken, c.Name), kind: c.Kind, src: i, onPos: -1})
	}

	buckets := make(map[string][]int, right.NumRows())
	var buf []byte
	for r := 0; r < right.NumRows(); r++ {
		if rowHasMissing(right, r, rightIdx) {
			continue
		}
		buf = right.rowKey(buf[:0], r, rightIdx)
		buckets[string(buf)] = append(buckets[string(buf)], r)
	}

	out := make([][]Value, len(schema))
	emit := func(lrow, rrow int) {
		for i, sc := range schema {
			var v Value
			switch {
			case sc.fromLeft && lrow >= 0:
				v = left.cols[sc.src].Values[lrow]
			case sc.fromLeft && sc.onPos >= 0:
				// right-only row: the merged on-column takes the right value
				v = right.cols[rightIdx[sc.onPos]].Values[rrow]
			case !sc.fromLeft && rrow >= 0:
				v = right.cols[sc.src].Values[rrow]
			default:
				v = Missing()
			}
			out[i] = append(out[i], v)
		}
	}

	rightMatched := make([]bool, right.NumRows())
	for l := 0; l < left.NumRows(); l++ {
		var matches []int
		if !rowHasMissing(left, l, leftIdx) {
			buf = left.rowKey(buf[:0], l, leftIdx)
			matches = buckets[string(buf)]
		}
		for _, r := range matches {
			rightMatched[r] = true
			emit(l, r)
		}
		if len(matches) == 0 && (kind == LeftJoin || kind == OuterJoin) {
			emit(l, -1)
		}
	}
	if kind == RightJoin || kind == OuterJoin {
		for r := 0; r < right.NumRows(); r++ {
			if !rightMatched[r] {
				emit(-1, r)
			}
		}
	}

	return assemble(schema, out)
}

// crossJoin pairs every left row with every right row. All right columns are
// carried, renamed on collision.
func crossJoin(left, right *Frame) (*Frame, error) {
	var schema []outCol
	taken := make(map[string]bool, left.NumCols()+right.NumCols())
	for i, c := range left.cols {
		taken[c.Name] = true
		schema = append(schema, outCol{name: c.Name, kind: c.Kind, fromLeft: true, src: i, onPos: -1})
	}
	for i, c := range right.cols {
		schema = append(schema, outCol{name: freeName(taken, c.Name), kind: c.Kind, src: i, onPos: -1})
	}

	out := make([][]Value, len(schema))
	for l := 0; l < left.NumRows(); l++ {
		for r := 0; r < right.NumRows(); r++ {
			for i, sc := range schema {
				if sc.fromLeft {
					out[i] = append(out[i], left.cols[sc.src].Values[l])
				} else {
					out[i] = append(out[i], right.cols[sc.src].Values[r])
				}
			}
		}
	}
	return assemble(schema, out)
}

// assemble materializes a frame from a join schema and its value slices.
func assemble(schema []outCol, out [][]Value) (*Frame, error) {
	f := &Frame{
		cols:  make([]Column, len(schema)),
		index: make(map[string]int, len(schema)),
	}
	for i, sc := range schema {
		values := out[i]
		if values == nil {
			values = []Value{}
		}
		f.cols[i] = Column{Name: sc.name, Kind: sc.kind, Values: values}
		f.index[sc.name] = i
	}
	return f, nil
}

// freeName claims name in taken, suffixing _1, _2, ... until unclaimed.
func freeName(taken map[string]bool, name string) string {
	out := name
	for i := 1; taken[out]; i++ {
		out = fmt.Sprintf("%s_%d", name, i)
	}
	taken[out] = true
	return out
}

// rowHasMissing reports whether any of the row's values at cols is missing.
func rowHasMissing(f *Frame, row int, cols []int) bool {
	for _, c := range cols {
		if f.cols[c].Values[row].IsMissing() {
			return true
		}
	}
	return false
}

// firstDuplicate returns the first name appearing twice, or "".
func firstDuplicate(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return n
		}
		seen[n] = true
	}
	return ""
}
