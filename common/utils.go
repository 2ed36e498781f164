package common

// Coalesce picks the first value that is not the zero value of T, falling
// back to the zero value when every candidate is zero. Useful for applying
// defaults after builder options have run.
//
// Parameters:
//   - values: candidate values, checked in order
//
// Returns:
//   - T: the first non-zero candidate, or T's zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
