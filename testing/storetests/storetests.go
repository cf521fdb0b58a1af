// Package storetests provides helpers for mocking navcache.Store reads
// in tests.
package storetests

// MockReadReturn builds a DoAndReturn function for a mocked Read call
// that fills the output buffer with value and reports found/err.
func MockReadReturn[T any](found bool, value T, err error) func(_, _ string, v any) (bool, error) {
	return func(_, _ string, v any) (bool, error) {
		if out, ok := v.(*T); ok {
			*out = value
		}
		return found, err
	}
}

// MockReadNotFound builds a DoAndReturn function for a mocked Read call
// that reports a cache miss.
func MockReadNotFound() func(_, _ string, v any) (bool, error) {
	return func(_, _ string, _ any) (bool, error) {
		return false, nil
	}
}
