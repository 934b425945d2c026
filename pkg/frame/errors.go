package frame

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError reports a reference to a column that does not exist.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// AmbiguousJoinColumnError reports a column named more than once in a join's
// on-column list.
type AmbiguousJoinColumnError struct {
	Column string
}

func (e *AmbiguousJoinColumnError) Error() string {
	return fmt.Sprintf("ambiguous join column %q: named more than once", e.Column)
}
