package serverutils

// Fallback substitutes a default when a local, non-critical computation
// fails. It must never wrap a persistence write: swallowing those would hide
// InternalError from callers.
func Fallback[T any](fn func() (T, error), def T) T {
	v, err := fn()
	if err != nil {
		return def
	}
	return v
}
