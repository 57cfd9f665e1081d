package frontend

import (
	"strings"
	"testing"
)

func TestResolveKeyword(t *testing.T) {
	for _, entry := range keywordList {
		typ, cat, ok := ResolveKeyword(entry.spelling)
		if !ok {
			t.Errorf("%q did not resolve", entry.spelling)
			continue
		}
		if typ != entry.typ {
			t.Errorf("%q resolved to %s, want %s", entry.spelling, typ, entry.typ)
		}
		if cat != entry.typ.Category() {
			t.Errorf("%q category = %s, want %s", entry.spelling, cat, entry.typ.Category())
		}
	}
}

func TestResolveKeywordNoMatch(t *testing.T) {
	for _, spelling := range []string{
		"", "Proc", "IF", "procedure", "elsif", "nul", "truthy", "x",
	} {
		if typ, _, ok := ResolveKeyword(spelling); ok {
			t.Errorf("%q unexpectedly resolved to %s", spelling, typ)
		}
	}
}

// Spellings longer than the longest keyword are rejected up front; no
// keyword can be that long by construction of the table.
func TestResolveKeywordLengthCap(t *testing.T) {
	long := strings.Repeat("a", maxKeywordLen+1)
	if typ, _, ok := ResolveKeyword(long); ok {
		t.Fatalf("%d-byte spelling resolved to %s", len(long), typ)
	}

	for _, entry := range keywordList {
		if len(entry.spelling) > maxKeywordLen {
			t.Errorf("keyword %q exceeds the %d-byte cap", entry.spelling, maxKeywordLen)
		}
	}
}

// Lookup compares 32-bit hashes, not spellings, so two keywords sharing a
// hash would silently shadow each other. buildKeywordTable panics on
// collision at init; this re-checks the same invariant pairwise so a new
// keyword that collides fails review before it fails startup.
func TestKeywordHashesAreUnique(t *testing.T) {
	seen := make(map[uint32]string, len(keywordList))
	for _, entry := range keywordList {
		h := keywordHash(entry.spelling)
		if prev, ok := seen[h]; ok {
			t.Errorf("hash collision %#x between %q and %q", h, prev, entry.spelling)
		}
		seen[h] = entry.spelling
	}
	if len(seen) != len(keywordList) {
		t.Errorf("table has %d distinct hashes for %d keywords", len(seen), len(keywordList))
	}
}

func TestKeywordTableMatchesList(t *testing.T) {
	if len(keywordTable) != len(keywordList) {
		t.Fatalf("table has %d entries, list has %d", len(keywordTable), len(keywordList))
	}
	for _, entry := range keywordList {
		got, ok := keywordTable[keywordHash(entry.spelling)]
		if !ok || got.spelling != entry.spelling || got.typ != entry.typ {
			t.Errorf("table entry for %q = %+v", entry.spelling, got)
		}
	}
}
