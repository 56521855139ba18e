package ptr

// Ref returns a pointer to the value passed as argument. Handy for filling
// optional struct fields from literals.
func Ref[T any](v T) *T {
	return &v
}
