package frontend

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// keywordSeed is the fixed murmur3 seed used for keyword dispatch. Changing
// it invalidates every precomputed hash in the table, so it is a constant of
// the language, not configuration.
const keywordSeed uint32 = 0xbeef

// maxKeywordLen is the longest keyword spelling in bytes. Candidates longer
// than this cannot be keywords and are rejected before hashing.
const maxKeywordLen = 15

type keywordEntry struct {
	spelling string
	typ      TokenType
}

// keywordList is the closed, versioned keyword set: spelling to token type.
// The category is derived from the type, so true/false/null land on their
// literal types while still classifying as keywords. Changing this list
// means rebuilding the table, never runtime configuration.
var keywordList = []keywordEntry{
	{"proc", Proc},
	{"let", Let},
	{"const", Const},
	{"cast", Cast},
	{"if", If},
	{"elif", Elif},
	{"else", Else},
	{"while", While},
	{"do", Do},
	{"for", For},
	{"switch", Switch},
	{"case", Case},
	{"default", Default},
	{"defer", Defer},
	{"block", Block},
	{"return", Return},
	{"break", Break},
	{"continue", Continue},
	{"struct", Struct},
	{"namespace", Namespace},
	{"where", Where},
	{"otherwise", Otherwise},
	{"true", BooleanLiteral},
	{"false", BooleanLiteral},
	{"null", NullLiteral},
}

// keywordTable is the hash-indexed dispatch built once at init. Read-only
// afterwards, safe to share across concurrently running lexers.
var keywordTable = buildKeywordTable()

// buildKeywordTable hashes every keyword spelling and asserts the hashes
// are pairwise distinct. Lookup compares hashes only, so a collision
// between two distinct spellings would silently misclassify identifiers;
// surfacing it here turns that into a startup failure.
func buildKeywordTable() map[uint32]keywordEntry {
	table := make(map[uint32]keywordEntry, len(keywordList))
	for _, entry := range keywordList {
		if len(entry.spelling) > maxKeywordLen {
			panic(fmt.Sprintf("frontend: keyword %q exceeds %d bytes", entry.spelling, maxKeywordLen))
		}
		h := keywordHash(entry.spelling)
		if prev, ok := table[h]; ok {
			panic(fmt.Sprintf("frontend: keyword hash collision: %q and %q both hash to %#x",
				prev.spelling, entry.spelling, h))
		}
		table[h] = entry
	}
	return table
}

func keywordHash(spelling string) uint32 {
	return murmur3.Sum32WithSeed([]byte(spelling), keywordSeed)
}

// ResolveKeyword looks up an identifier-shaped spelling in the keyword
// table. The boolean is false when the spelling is not a keyword; callers
// must treat that as "plain identifier", not as an error. Spellings longer
// than maxKeywordLen short-circuit without hashing.
func ResolveKeyword(spelling string) (TokenType, TokenCategory, bool) {
	if len(spelling) > maxKeywordLen {
		return Illegal, NonCategorical, false
	}
	entry, ok := keywordTable[keywordHash(spelling)]
	if !ok {
		return Illegal, NonCategorical, false
	}
	return entry.typ, entry.typ.Category(), true
}
