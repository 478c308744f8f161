package common

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Preview shortens s to at most max characters, appending "..." when it was cut.
func Preview(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
