//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap round-trips a request struct through JSON into a map and applies
// the given mutations, for building invalid-payload table cases.
func DtoMap(t *testing.T, dto any, mutations ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("failed to marshal dto: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("failed to unmarshal dto: %v", err)
	}
	for _, mutate := range mutations {
		mutate(m)
	}
	return m
}
