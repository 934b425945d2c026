package keyed

import (
	"fmt"
	"strings"
)

// InvalidKeyError reports a key referencing columns the table does not have.
type InvalidKeyError struct {
	Missing   []string
	Available []string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: columns [%s] not in table (available: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}
