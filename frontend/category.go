package frontend

import "strings"

// TokenCategory is a bitmask of classification tags attached to a token.
// A token may carry several tags at once (a keyword can also be control
// flow, an operator can be both arithmetic and assignment). The zero value
// is NonCategorical: no tag at all, used for structural tokens such as
// EndOfFile and Illegal.
type TokenCategory uint16

const (
	NonCategorical TokenCategory = 0

	Punctuator    TokenCategory = 1 << 0
	UnaryOp       TokenCategory = 1 << 1
	BinaryOp      TokenCategory = 1 << 2
	LogicalOp     TokenCategory = 1 << 3
	ArithmeticOp  TokenCategory = 1 << 4
	BitwiseOp     TokenCategory = 1 << 5
	ComparisonOp  TokenCategory = 1 << 6
	AssignOp      TokenCategory = 1 << 7
	LiteralTok    TokenCategory = 1 << 8
	KeywordTok    TokenCategory = 1 << 9
	IdentifierTok TokenCategory = 1 << 10
	ControlFlow   TokenCategory = 1 << 11
)

// categoryNames is ordered by flag value so String output is deterministic.
var categoryNames = []struct {
	flag TokenCategory
	name string
}{
	{Punctuator, "Punctuator"},
	{UnaryOp, "UnaryOp"},
	{BinaryOp, "BinaryOp"},
	{LogicalOp, "LogicalOp"},
	{ArithmeticOp, "ArithmeticOp"},
	{BitwiseOp, "BitwiseOp"},
	{ComparisonOp, "ComparisonOp"},
	{AssignOp, "AssignOp"},
	{LiteralTok, "Literal"},
	{KeywordTok, "Keyword"},
	{IdentifierTok, "Identifier"},
	{ControlFlow, "ControlFlow"},
}

// Has reports whether every flag in set is present in c.
func (c TokenCategory) Has(set TokenCategory) bool {
	return c&set == set
}

// HasAny reports whether at least one flag in set is present in c.
func (c TokenCategory) HasAny(set TokenCategory) bool {
	return c&set != 0
}

// Union returns the combination of c and set.
func (c TokenCategory) Union(set TokenCategory) TokenCategory {
	return c | set
}

// String renders the active flags joined by " | ", or "NonCategorical"
// for the empty set.
func (c TokenCategory) String() string {
	if c == NonCategorical {
		return "NonCategorical"
	}
	var parts []string
	for _, entry := range categoryNames {
		if c&entry.flag != 0 {
			parts = append(parts, entry.name)
		}
	}
	if len(parts) == 0 {
		// Only unknown bits are set.
		return "NonCategorical"
	}
	return strings.Join(parts, " | ")
}
