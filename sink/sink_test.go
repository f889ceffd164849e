package sink

import "testing"

func TestResolveIdentity(t *testing.T) {
	id := ResolveIdentity()

	// Under `go test` the executable resolves to the test binary
	if id.Subsystem == "" {
		t.Error("Subsystem must never be empty")
	}
	if id.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", id.Category, DefaultCategory)
	}
}
