package utilities

// Contains reports whether v occurs in slice.
func Contains[T comparable](slice []T, v T) bool {
	for _, e := range slice {
		if e == v {
			return true
		}
	}
	return false
}
