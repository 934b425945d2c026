package keyed

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leapstack-labs/keyframe/internal/testutil"
	"github.com/leapstack-labs/keyframe/pkg/frame"
)

func TestJoin_DefaultOnFromSharedKeys(t *testing.T) {
	t1 := MustNew(frame.MustNew(
		frame.Ints("a", 1, 2, 3),
		frame.Ints("b", 10, 20, 30),
		frame.Strings("c", "x", "y", "z"),
	), "a", "b")
	t2 := MustNew(frame.MustNew(
		frame.Ints("a", 2, 3, 4),
		frame.Strings("d", "p", "q", "r"),
	), "a")

	got, err := Join(t1, t2, frame.InnerJoin)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	// join key union: {a,b} ∪ {a} intersected with the result columns
	if diff := cmp.Diff([]string{"a", "b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	if got.NumRows() != 2 {
		t.Errorf("rows = %d, want 2", got.NumRows())
	}
	checkKeyInvariant(t, got)
}

func TestJoin_UnionKeyOrderLeftFirst(t *testing.T) {
	t1 := MustNew(frame.MustNew(
		frame.Ints("a", 1),
		frame.Ints("b", 2),
	), "b", "a")
	t2 := MustNew(frame.MustNew(
		frame.Ints("a", 1),
		frame.Ints("z", 3),
	), "a", "z")

	got, err := Join(t1, t2, frame.InnerJoin, frame.On("a")...)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	// left key order first, then right's novel entries
	if diff := cmp.Diff([]string{"b", "a", "z"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin_RenamedKeyColumnDropsSilently(t *testing.T) {
	left := MustNew(frame.MustNew(
		frame.Ints("a", 1, 2),
		frame.Strings("name", "x", "y"),
	), "a")
	// the right key column q merges into the left on-column, so q is not in
	// the result and drops out of the candidate key without error
	right := MustNew(frame.MustNew(
		frame.Ints("q", 2, 3),
		frame.Ints("score", 20, 30),
	), "q")

	got, err := Join(left, right, frame.InnerJoin, frame.OnPair{Left: "a", Right: "q"})
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if diff := cmp.Diff([]string{"a"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	checkKeyInvariant(t, got)
}

func TestJoin_SemiAntiRestrictToLeftKey(t *testing.T) {
	// left has a column b; right's key names b. The restricted policy must
	// ignore the right key even though b is in the result.
	left := MustNew(frame.MustNew(
		frame.Ints("a", 1, 2),
		frame.Ints("b", 5, 6),
	), "a")
	right := MustNew(frame.MustNew(
		frame.Ints("a", 2, 3),
		frame.Ints("b", 7, 8),
	), "b")

	for _, kind := range []frame.JoinKind{frame.SemiJoin, frame.AntiJoin} {
		got, err := Join(left, right, kind, frame.On("a")...)
		if err != nil {
			t.Fatalf("%s join: %v", kind, err)
		}
		if diff := cmp.Diff([]string{"a"}, got.Key()); diff != "" {
			t.Errorf("%s key mismatch (-want +got):\n%s", kind, diff)
		}
		if diff := cmp.Diff([]string{"a", "b"}, got.Names()); diff != "" {
			t.Errorf("%s names mismatch (-want +got):\n%s", kind, diff)
		}
	}
}

func TestJoin_CrossCarriesUnionKey(t *testing.T) {
	left := MustNew(frame.MustNew(frame.Ints("a", 1, 2)), "a")
	right := MustNew(frame.MustNew(frame.Ints("z", 3, 4)), "z")

	got, err := Join(left, right, frame.CrossJoin)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if got.NumRows() != 4 {
		t.Errorf("rows = %d, want 4", got.NumRows())
	}
	if diff := cmp.Diff([]string{"a", "z"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinFrame_LeftKeyedOnly(t *testing.T) {
	left := MustNew(frame.MustNew(
		frame.Ints("a", 1, 2),
		frame.Ints("b", 5, 6),
	), "a", "b")
	right := frame.MustNew(
		frame.Ints("a", 2, 3),
		frame.Strings("d", "p", "q"),
	)

	// default on: left key columns present in the right frame
	got, err := JoinFrame(left, right, frame.InnerJoin)
	if err != nil {
		t.Fatalf("JoinFrame: %v", err)
	}
	if got.NumRows() != 1 {
		t.Errorf("rows = %d, want 1", got.NumRows())
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameJoin_ResultTypeFollowsLeft(t *testing.T) {
	left := frame.MustNew(
		frame.Ints("a", 1, 2),
		frame.Strings("name", "x", "y"),
	)
	right := MustNew(frame.MustNew(
		frame.Ints("a", 2, 3),
		frame.Ints("score", 20, 30),
	), "a")

	// the right key picks the default on-columns, but the result is a bare
	// frame: FrameJoin returns *frame.Frame, not *Table
	var got *frame.Frame
	got, err := FrameJoin(left, right, frame.InnerJoin)
	if err != nil {
		t.Fatalf("FrameJoin: %v", err)
	}
	if got.NumRows() != 1 {
		t.Errorf("rows = %d, want 1", got.NumRows())
	}
	if diff := cmp.Diff([]string{"a", "name", "score"}, got.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin_NoSharedKeyColumns(t *testing.T) {
	left := MustNew(frame.MustNew(frame.Ints("a", 1)), "a")
	right := MustNew(frame.MustNew(frame.Ints("z", 1)), "z")
	if _, err := Join(left, right, frame.InnerJoin); err == nil {
		t.Error("expected error when no join columns can be inferred")
	}
}

func TestJoin_FrameErrorsSurfaceUnchanged(t *testing.T) {
	left := MustNew(frame.MustNew(frame.Ints("a", 1)), "a")
	right := MustNew(frame.MustNew(frame.Ints("a", 1)), "a")

	_, err := Join(left, right, frame.InnerJoin, frame.On("nope")...)
	var cnf *frame.ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Errorf("expected ColumnNotFoundError, got %v", err)
	}

	_, err = Join(left, right, frame.InnerJoin, frame.On("a", "a")...)
	var amb *frame.AmbiguousJoinColumnError
	if !errors.As(err, &amb) {
		t.Errorf("expected AmbiguousJoinColumnError, got %v", err)
	}
}

func TestJoinTables_DeprecatedForwards(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	left := MustNew(frame.MustNew(frame.Ints("a", 1, 2), frame.Ints("b", 5, 6)), "a")
	right := MustNew(frame.MustNew(frame.Ints("a", 2, 3), frame.Ints("c", 7, 8)), "a")

	viaOld, err := JoinTables(left, right, "inner")
	if err != nil {
		t.Fatalf("JoinTables: %v", err)
	}
	viaNew, err := Join(left, right, frame.InnerJoin)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if !viaOld.StrictEqual(viaNew) {
		t.Error("deprecated dispatcher must produce the same result")
	}
	if !bytes.Contains(buf.Bytes(), []byte("deprecated")) {
		t.Errorf("expected a deprecation warning, got %q", buf.String())
	}

	if _, err := JoinTables(left, right, "sideways"); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestSetLogger_NilRestoresDiscard(t *testing.T) {
	SetLogger(testutil.NewTestLoggerAt(t, slog.LevelWarn))
	SetLogger(nil)

	left := MustNew(frame.MustNew(frame.Ints("a", 1, 2)), "a")
	got, err := JoinTables(left, left, "cross")
	if err != nil {
		t.Fatalf("JoinTables: %v", err)
	}
	if got.NumRows() != 4 {
		t.Errorf("rows = %d, want 4", got.NumRows())
	}
	// right's a renamed to a_1, so only left's a survives into the key
	if diff := cmp.Diff([]string{"a"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}
