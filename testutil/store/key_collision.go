package store

import (
	"bytes"
	"testing"

	"cosmossdk.io/collections"
)

// RequireDistinctPrefixes fails t when two store prefixes are equal or one is
// a prefix of the other, as either makes their collections overlap.
func RequireDistinctPrefixes(t *testing.T, prefixes map[string]collections.Prefix) {
	t.Helper()

	for name1, p1 := range prefixes {
		if len(p1.Bytes()) == 0 {
			t.Fatalf("key %s has empty prefix", name1)
		}
		for name2, p2 := range prefixes {
			if name1 >= name2 {
				continue
			}
			if bytes.HasPrefix(p1.Bytes(), p2.Bytes()) || bytes.HasPrefix(p2.Bytes(), p1.Bytes()) {
				t.Errorf("PREFIX COLLISION: %s (0x%x) and %s (0x%x)", name1, p1.Bytes(), name2, p2.Bytes())
			}
		}
	}
}
