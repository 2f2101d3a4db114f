//go:build unit || e2e

package testutil

// Field sets a payload key in a DtoMap mutation table; a nil value deletes
// the key instead, which exercises "required" binding failures.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
