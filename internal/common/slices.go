package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// FindFirst returns the first element matching pred and true,
// or the zero value and false if nothing matches.
func FindFirst[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	for _, v := range s {
		if pred(v) {
			return v, true
		}
	}

	var zero E

	return zero, false
}
