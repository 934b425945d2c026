package keyed

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leapstack-labs/keyframe/pkg/frame"
)

func TestSelectColumns_ShrinksKeySilently(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	got, err := tbl.SelectColumns([]string{"b", "c"})
	if err != nil {
		t.Fatalf("SelectColumns: %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	checkKeyInvariant(t, got)
}

func TestSelect_ByPosition(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")

	got, err := tbl.Select([]int{1, 2}, false)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}

	inv, err := tbl.Select([]int{0}, true)
	if err != nil {
		t.Fatalf("Select invert: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "c"}, inv.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, inv.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete_DropsKeyColumn(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	got, err := tbl.Delete("a")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	// source unchanged
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Key()); diff != "" {
		t.Errorf("source key changed (-want +got):\n%s", diff)
	}
	checkKeyInvariant(t, got)
}

func TestPermuteColumns_KeepsKey(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	got, err := tbl.PermuteColumns([]string{"c", "b", "a"})
	if err != nil {
		t.Fatalf("PermuteColumns: %v", err)
	}
	// key order reflects key precedence, not column layout
	if diff := cmp.Diff([]string{"a", "b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, got.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadTail_KeepKey(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Head(3).Key()); diff != "" {
		t.Errorf("Head key mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Tail(3).Key()); diff != "" {
		t.Errorf("Tail key mismatch (-want +got):\n%s", diff)
	}
	if got := tbl.Head(3).NumRows(); got != 3 {
		t.Errorf("Head rows = %d, want 3", got)
	}
}

func TestRename_PropagatesThroughKey(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	got, err := tbl.Rename(map[string]string{"a": "id", "c": "extra"})
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	// renamed key column replaced in place, position preserved
	if diff := cmp.Diff([]string{"id", "b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	checkKeyInvariant(t, got)
}

func TestRenameInPlace(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	if err := tbl.RenameInPlace(map[string]string{"b": "bb"}); err != nil {
		t.Fatalf("RenameInPlace: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "bb"}, tbl.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	checkKeyInvariant(t, tbl)

	// failed rename leaves table unchanged
	if err := tbl.RenameInPlace(map[string]string{"nope": "x"}); err == nil {
		t.Error("expected error for unknown column")
	}
	if diff := cmp.Diff([]string{"a", "bb"}, tbl.Key()); diff != "" {
		t.Errorf("key changed on error (-want +got):\n%s", diff)
	}
}

func TestAppend_KeepsKeyDiscardsOther(t *testing.T) {
	tbl := MustNew(abc(t), "a", "b")
	other := MustNew(abc(t), "c") // other's key is discarded
	if err := tbl.AppendTable(other); err != nil {
		t.Fatalf("AppendTable: %v", err)
	}
	if tbl.NumRows() != 20 {
		t.Errorf("rows = %d, want 20", tbl.NumRows())
	}
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}

	if err := tbl.Append(abc(t)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if tbl.NumRows() != 30 {
		t.Errorf("rows = %d, want 30", tbl.NumRows())
	}
}

func TestSort_DefaultUsesKeyOrder(t *testing.T) {
	f := frame.MustNew(
		frame.Ints("a", 1, 2, 1, 2),
		frame.Ints("e", 2, 1, 1, 2),
	)
	// keyed [e, a]: e is the primary sort column
	tbl := MustNew(f, "e", "a")
	got, err := tbl.Sort(nil, false)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	e, _ := got.ColumnValues("e")
	a, _ := got.ColumnValues("a")
	wantE := []int64{1, 1, 2, 2}
	wantA := []int64{1, 2, 1, 2}
	for i := range wantE {
		if e[i].Int() != wantE[i] || a[i].Int() != wantA[i] {
			t.Fatalf("row %d = (e=%v, a=%v), want (e=%d, a=%d)", i, e[i], a[i], wantE[i], wantA[i])
		}
	}
	// key unchanged, source unchanged
	if diff := cmp.Diff([]string{"e", "a"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
	srcE, _ := tbl.ColumnValues("e")
	if srcE[0].Int() != 2 {
		t.Error("Sort mutated the source table")
	}
}

func TestSortInPlace(t *testing.T) {
	f := frame.MustNew(frame.Ints("a", 3, 1, 2))
	tbl := MustNew(f, "a")
	if err := tbl.SortInPlace(nil, false); err != nil {
		t.Fatalf("SortInPlace: %v", err)
	}
	a, _ := tbl.ColumnValues("a")
	if a[0].Int() != 1 || a[2].Int() != 3 {
		t.Errorf("rows not sorted: %v", a)
	}
}

func TestSort_ExplicitColumnsWin(t *testing.T) {
	f := frame.MustNew(
		frame.Ints("a", 2, 1),
		frame.Ints("b", 1, 2),
	)
	tbl := MustNew(f, "b")
	got, err := tbl.Sort([]string{"a"}, false)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	a, _ := got.ColumnValues("a")
	if a[0].Int() != 1 {
		t.Errorf("sorted by key instead of explicit columns: %v", a)
	}
}

func TestUnique_DefaultUsesKeyNotAllColumns(t *testing.T) {
	f := frame.MustNew(
		frame.Ints("a", 1, 1, 2),
		frame.Ints("b", 5, 5, 6),
		frame.Strings("note", "first", "different", "only"),
	)
	tbl := MustNew(f, "a", "b")
	got, err := tbl.Unique()
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	// rows with duplicate (a, b) collapse even though note differs
	if got.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", got.NumRows())
	}
	notes, _ := got.ColumnValues("note")
	if notes[0].Str() != "first" {
		t.Errorf("kept %q, want first occurrence", notes[0].Str())
	}
	if diff := cmp.Diff([]string{"a", "b"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqueInPlace(t *testing.T) {
	f := frame.MustNew(frame.Ints("a", 1, 1, 2))
	tbl := MustNew(f, "a")
	if err := tbl.UniqueInPlace(); err != nil {
		t.Fatalf("UniqueInPlace: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Errorf("rows = %d, want 2", tbl.NumRows())
	}
}

func TestNonUnique_DefaultUsesKey(t *testing.T) {
	f := frame.MustNew(
		frame.Ints("a", 1, 1, 2),
		frame.Strings("note", "x", "y", "z"),
	)
	tbl := MustNew(f, "a")
	flags, err := tbl.NonUnique()
	if err != nil {
		t.Fatalf("NonUnique: %v", err)
	}
	if diff := cmp.Diff([]bool{false, true, false}, flags); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaults_EmptyKey(t *testing.T) {
	tbl := MustNew(frame.MustNew(
		frame.Ints("a", 2, 1, 3),
		frame.Strings("note", "x", "y", "z"),
	), "a")

	// dropping the last key column leaves an empty key; the key-defaulted
	// ops must keep working, with all rows in a single group
	got, err := tbl.Delete("a")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(got.Key()) != 0 {
		t.Fatalf("Key = %v, want empty", got.Key())
	}

	sorted, err := got.Sort(nil, false)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if !frame.Identical(got.Frame(), sorted.Frame()) {
		t.Error("Sort by empty key should leave row order unchanged")
	}

	uniq, err := got.Unique()
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if uniq.NumRows() != 1 {
		t.Errorf("Unique rows = %d, want 1", uniq.NumRows())
	}
	if v, _ := uniq.At(0, 0); v.Str() != "x" {
		t.Errorf("surviving row = %q, want first row", v.Str())
	}

	flags, err := got.NonUnique()
	if err != nil {
		t.Fatalf("NonUnique: %v", err)
	}
	if diff := cmp.Diff([]bool{false, true, true}, flags); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectRows_KeepsKey(t *testing.T) {
	tbl := MustNew(abc(t), "a")
	got, err := tbl.SelectRows([]int{0, 2})
	if err != nil {
		t.Fatalf("SelectRows: %v", err)
	}
	if got.NumRows() != 2 {
		t.Errorf("rows = %d, want 2", got.NumRows())
	}
	if diff := cmp.Diff([]string{"a"}, got.Key()); diff != "" {
		t.Errorf("Key mismatch (-want +got):\n%s", diff)
	}
}
