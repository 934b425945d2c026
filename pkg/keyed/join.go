package keyed

import (
	"fmt"

	"github.com/leapstack-labs/keyframe/pkg/frame"
)

// Join orchestration. There is one exported entry point per operand shape
// (keyed/keyed, keyed/unkeyed, unkeyed/keyed); the shape picks the default
// on-columns and the key-reconciliation policy. The result carries a key iff
// the left operand does, so FrameJoin never reconciles at all. Frame errors
// (missing or ambiguous join columns) surface unchanged.

// operandShape tags which sides of a keyed-result join are keyed.
type operandShape int

const (
	bothKeyed operandShape = iota
	leftKeyed
)

// Join joins two keyed tables. When on is empty the join columns default to
// the intersection of the two keys, in left key order. The result key is the
// union of both keys (left first) restricted to the result's columns; semi
// and anti joins restrict to the left key only, since no right column is in
// the result. Copying.
func Join(left, right *Table, kind frame.JoinKind, on ...frame.OnPair) (*Table, error) {
	if len(on) == 0 && kind != frame.CrossJoin {
		common := intersectKey(left.key, right.key)
		if len(common) == 0 {
			return nil, fmt.Errorf("%s join: no shared key columns to join on", kind)
		}
		on = frame.On(common...)
	}
	g, err := frame.Join(left.f, right.f, kind, on)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: reconcileJoinKey(left.key, right.key, kind, g.Names(), bothKeyed)}, nil
}

// JoinFrame joins a keyed table with a bare frame. When on is empty the join
// columns default to the left key columns present in the right frame. The
// result key is the left key restricted to the result's columns. Copying.
func JoinFrame(left *Table, right *frame.Frame, kind frame.JoinKind, on ...frame.OnPair) (*Table, error) {
	if len(on) == 0 && kind != frame.CrossJoin {
		common := intersectKey(left.key, right.Names())
		if len(common) == 0 {
			return nil, fmt.Errorf("%s join: no key columns shared with the right frame", kind)
		}
		on = frame.On(common...)
	}
	g, err := frame.Join(left.f, right, kind, on)
	if err != nil {
		return nil, err
	}
	return &Table{f: g, key: reconcileJoinKey(left.key, nil, kind, g.Names(), leftKeyed)}, nil
}

// FrameJoin joins a bare frame with a keyed table. The right key only picks
// the default on-columns; it is never attached to the output, so the result
// is a bare frame, matching the rule that the result is keyed iff the left
// operand is. Copying.
func FrameJoin(left *frame.Frame, right *Table, kind frame.JoinKind, on ...frame.OnPair) (*frame.Frame, error) {
	if len(on) == 0 && kind != frame.CrossJoin {
		common := intersectKey(right.key, left.Names())
		if len(common) == 0 {
			return nil, fmt.Errorf("%s join: no key columns shared with the left frame", kind)
		}
		on = frame.On(common...)
	}
	return frame.Join(left, right.f, kind, on)
}

// reconcileJoinKey derives the output key from the operand keys, the join
// kind and the columns that survived into the result.
func reconcileJoinKey(leftKey, rightKey []string, kind frame.JoinKind, resultNames []string, shape operandShape) []string {
	switch {
	case kind == frame.SemiJoin || kind == frame.AntiJoin:
		// restricted intersection: right columns are not in the result
		return intersectKey(leftKey, resultNames)
	case shape == bothKeyed:
		// union then intersection: a column renamed away by the join
		// silently drops from the key
		return intersectKey(unionKeys(leftKey, rightKey), resultNames)
	default:
		return intersectKey(leftKey, resultNames)
	}
}

// JoinTables joins two keyed tables, dispatching on a textual kind name
// ("inner", "left", "right", "outer", "semi", "anti", "cross").
//
// Deprecated: Use Join with a frame.JoinKind. JoinTables warns and forwards;
// the result is identical.
func JoinTables(left, right *Table, kind string, on ...frame.OnPair) (*Table, error) {
	logger.Warn("JoinTables is deprecated, use Join with a frame.JoinKind", "kind", kind)
	k, err := frame.ParseJoinKind(kind)
	if err != nil {
		return nil, err
	}
	return Join(left, right, k, on...)
}
