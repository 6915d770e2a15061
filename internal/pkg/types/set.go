package types

// Set is a generic hash set backed by map[T]struct{}.
//
// Set is not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values into the set and returns the ones that were not
// present before, in argument order. Inserting an existing value is a no-op.
func (s Set[T]) Add(values ...T) []T {
	var added []T
	for _, val := range values {
		if s.Has(val) {
			continue
		}

		s[val] = struct{}{}
		added = append(added, val)
	}
	return added
}

// Has reports whether value is in the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}
