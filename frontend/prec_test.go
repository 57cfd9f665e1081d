package frontend

import "testing"

func TestPrecCoversEveryBinaryOperator(t *testing.T) {
	for typ := TokenType(0); typ < typeCount; typ++ {
		_, ok := precedences[typ]
		if typ.Category().Has(BinaryOp) && !ok {
			t.Errorf("binary operator %s has no precedence entry", typ)
		}
		if !typ.Category().Has(BinaryOp) && ok {
			t.Errorf("%s has a precedence entry but is not a binary operator", typ)
		}
	}
}

// Binding order must be monotonic with standard operator precedence:
// assignment lowest, then logical, bitwise, equality, relational, shift,
// additive, multiplicative, and member access tightest.
func TestPrecOrdering(t *testing.T) {
	ladder := []TokenType{
		ValueAssignment,
		LogicalOr,
		LogicalAnd,
		BitwiseOr,
		Xor,
		BitwiseAnd,
		Eq,
		Lt,
		Lshift,
		Plus,
		Mul,
		Dot,
	}

	for i := 1; i < len(ladder); i++ {
		lo := Token{Type: ladder[i-1]}
		hi := Token{Type: ladder[i]}
		if lo.Prec() >= hi.Prec() {
			t.Errorf("%s (prec %d) should bind looser than %s (prec %d)",
				ladder[i-1], lo.Prec(), ladder[i], hi.Prec())
		}
	}
}

func TestPrecPeers(t *testing.T) {
	peers := [][]TokenType{
		{ValueAssignment, PlusEq, SubEq, MulEq, DivEq, ModEq, LshiftEq, RshiftEq, BitwiseAndEq, BitwiseOrEq, XorEq},
		{Eq, Neq},
		{Lt, Lte, Gt, Gte},
		{Lshift, Rshift},
		{Plus, Sub},
		{Mul, Div, Mod},
		{Dot, NamespaceOperator, SkinnyArrow},
	}

	for _, group := range peers {
		want := Token{Type: group[0]}.Prec()
		for _, typ := range group[1:] {
			if got := (Token{Type: typ}).Prec(); got != want {
				t.Errorf("%s prec = %d, want %d (same as %s)", typ, got, want, group[0])
			}
		}
	}
}

func TestPrecPanicsOnNonOperator(t *testing.T) {
	for _, typ := range []TokenType{Identifier, IntLiteral, Semicolon, If, EndOfFile, Illegal, LogicalNot} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Prec on %s did not panic", typ)
				}
			}()
			Token{Type: typ}.Prec()
		}()
	}
}
