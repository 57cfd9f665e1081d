package frontend

import "fmt"

// Binding priorities for expression parsing, low to high. Higher binds
// tighter. The scale itself is arbitrary; only the ordering matters.
const (
	precAssign     = 1  // = += -= *= /= %= <<= >>= &= |= ^=
	precLogicalOr  = 2  // ||
	precLogicalAnd = 3  // &&
	precBitOr      = 4  // |
	precXor        = 5  // ^
	precBitAnd     = 6  // &
	precEquality   = 7  // == !=
	precRelational = 8  // < <= > >=
	precShift      = 9  // << >>
	precAdditive   = 10 // + -
	precMultiplic  = 11 // * / %
	precAccess     = 12 // . :: ->
)

// precedences covers every TokenType that can appear as a binary operator.
// checkPrecCoverage proves that at init, so a binary-operator token reaching
// Prec without an entry is impossible.
var precedences = map[TokenType]int{
	ValueAssignment: precAssign,
	PlusEq:          precAssign,
	SubEq:           precAssign,
	MulEq:           precAssign,
	DivEq:           precAssign,
	ModEq:           precAssign,
	LshiftEq:        precAssign,
	RshiftEq:        precAssign,
	BitwiseAndEq:    precAssign,
	BitwiseOrEq:     precAssign,
	XorEq:           precAssign,

	LogicalOr:  precLogicalOr,
	LogicalAnd: precLogicalAnd,

	BitwiseOr:  precBitOr,
	Xor:        precXor,
	BitwiseAnd: precBitAnd,

	Eq:  precEquality,
	Neq: precEquality,

	Lt:  precRelational,
	Lte: precRelational,
	Gt:  precRelational,
	Gte: precRelational,

	Lshift: precShift,
	Rshift: precShift,

	Plus: precAdditive,
	Sub:  precAdditive,

	Mul: precMultiplic,
	Div: precMultiplic,
	Mod: precMultiplic,

	Dot:               precAccess,
	NamespaceOperator: precAccess,
	SkinnyArrow:       precAccess,
}

func init() {
	checkPrecCoverage()
}

// checkPrecCoverage asserts the precedence table is total over the
// BinaryOp category, turning a missing entry into a startup failure
// instead of a scan-time fault.
func checkPrecCoverage() {
	for t := TokenType(0); t < typeCount; t++ {
		if t.Category().Has(BinaryOp) {
			if _, ok := precedences[t]; !ok {
				panic(fmt.Sprintf("frontend: binary operator %s has no precedence entry", t))
			}
		}
	}
}

// Prec returns the token's binding priority for expression parsing.
//
// It is defined exactly for the binary-operator types; calling it on any
// other type is a bug in the parser, not malformed input, and panics.
// Correct lexer output can never route a non-operator token here.
func (t Token) Prec() int {
	if p, ok := precedences[t.Type]; ok {
		return p
	}
	panic(fmt.Sprintf("frontend: Prec called on non-operator token %s", t.Type))
}
