// Shared test helpers.

package notion

func ptr[T any](v T) *T {
	return &v
}
