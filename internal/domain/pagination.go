package domain

// NextIndex returns the catalog index after i, wrapping to the first item.
// length must be at least 1.
func NextIndex(i, length int) int {
	return (i + 1) % length
}

// PrevIndex returns the catalog index before i, wrapping to the last item.
// length must be at least 1.
func PrevIndex(i, length int) int {
	return (i - 1 + length) % length
}
