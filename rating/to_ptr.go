package rating

// Ptr returns a pointer to the given value. Optional model fields are
// pointers so that an absent field and a zero field serialize differently.
func Ptr[T any](v T) *T {
	return &v
}
