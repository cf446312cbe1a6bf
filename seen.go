package harvest

// SeenIndex tracks identity values accepted during a run.
// Matching is exact and case-sensitive: whitespace or case differences are
// treated as distinct values. The index persists for the whole run so
// duplicates across page boundaries are caught.
type SeenIndex interface {
	// Contains reports whether the identity value has already been accepted.
	Contains(identity string) bool

	// Add marks the identity value as accepted.
	Add(identity string)

	// Len returns the number of accepted identity values.
	Len() int
}
