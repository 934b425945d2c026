package keyed

// Key reconciliation: after any operation that may add, remove or rename
// columns, the new key derives from the old key and the surviving columns.
// Losing a key column silently shrinks the key; it is never an error.

// intersectKey keeps the key entries present in names, preserving key order.
func intersectKey(key, names []string) []string {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	out := make([]string, 0, len(key))
	for _, k := range key {
		if have[k] {
			out = append(out, k)
		}
	}
	return out
}

// unionKeys concatenates left with right's entries not already present,
// left order first.
func unionKeys(left, right []string) []string {
	out := make([]string, 0, len(left)+len(right))
	seen := make(map[string]bool, len(left)+len(right))
	for _, k := range left {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range right {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// renameKey replaces renamed identifiers in place, preserving positions.
// Key entries not in the rename map are unaffected.
func renameKey(key []string, renames map[string]string) []string {
	out := make([]string, len(key))
	for i, k := range key {
		if n, ok := renames[k]; ok {
			out[i] = n
		} else {
			out[i] = k
		}
	}
	return out
}
