package common

// Coalesce returns the first non-zero value from the provided list,
// or the zero value of T if all values are zero.
//
// Parameters:
//   - values: the candidate values in priority order
//
// Returns:
//   - T: the first non-zero value, or the zero value of T
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
