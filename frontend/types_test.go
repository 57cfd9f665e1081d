package frontend

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{Illegal, "Illegal"},
		{EndOfFile, "EndOfFile"},
		{Identifier, "Identifier"},
		{PlusEq, "PlusEq"},
		{LogicalAnd, "LogicalAnd"},
		{NamespaceOperator, "NamespaceOperator"},
		{Proc, "Proc"},
		{Otherwise, "Otherwise"},
		{TokenType(250), "Unknown"},
		{typeCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", uint8(tt.typ), got, tt.want)
		}
	}
}

func TestTokenTypeRepr(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{PlusEq, "+="},
		{LogicalAnd, "&&"},
		{LshiftEq, "<<="},
		{SkinnyArrow, "->"},
		{NamespaceOperator, "::"},
		{Semicolon, ";"},
		{Proc, "proc"},
		{Otherwise, "otherwise"},
		// No fixed spelling: fall back to the symbolic name.
		{Identifier, "Identifier"},
		{IntLiteral, "IntLiteral"},
		{EndOfFile, "EndOfFile"},
		{TokenType(250), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.Repr(); got != tt.want {
			t.Errorf("Repr(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestEveryTypeHasNameAndRepr(t *testing.T) {
	for typ := TokenType(0); typ < typeCount; typ++ {
		if typeNames[typ] == "" {
			t.Errorf("type %d has no symbolic name", typ)
		}
		if typ.Repr() == "" || typ.Repr() == "Unknown" {
			t.Errorf("type %s has no surface representation", typ)
		}
	}
}

func TestTypeCategories(t *testing.T) {
	if got := Illegal.Category(); got != NonCategorical {
		t.Errorf("Illegal category = %s", got)
	}
	if got := EndOfFile.Category(); got != NonCategorical {
		t.Errorf("EndOfFile category = %s", got)
	}
	if got := TokenType(250).Category(); got != NonCategorical {
		t.Errorf("out-of-range category = %s", got)
	}

	tests := []struct {
		typ  TokenType
		want TokenCategory
	}{
		{Identifier, IdentifierTok},
		{IntLiteral, LiteralTok},
		{BooleanLiteral, LiteralTok | KeywordTok},
		{NullLiteral, LiteralTok | KeywordTok},
		{Semicolon, Punctuator},
		{PlusEq, BinaryOp | ArithmeticOp | AssignOp},
		{XorEq, BinaryOp | BitwiseOp | AssignOp},
		{Sub, BinaryOp | UnaryOp | ArithmeticOp},
		{Eq, BinaryOp | ComparisonOp},
		{LogicalNot, UnaryOp | LogicalOp},
		{BitwiseNot, UnaryOp | BitwiseOp},
		{If, KeywordTok | ControlFlow},
		{Struct, KeywordTok},
	}
	for _, tt := range tests {
		if got := tt.typ.Category(); got != tt.want {
			t.Errorf("%s category = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestCategoryPredicates(t *testing.T) {
	for typ := TokenType(0); typ < typeCount; typ++ {
		cat := typ.Category()
		if typ.IsKeyword() != cat.Has(KeywordTok) {
			t.Errorf("%s: IsKeyword disagrees with category", typ)
		}
		if typ.IsLiteral() != cat.Has(LiteralTok) {
			t.Errorf("%s: IsLiteral disagrees with category", typ)
		}
		if typ.IsOperator() != cat.HasAny(UnaryOp|BinaryOp) {
			t.Errorf("%s: IsOperator disagrees with category", typ)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  TokenCategory
		want string
	}{
		{NonCategorical, "NonCategorical"},
		{KeywordTok, "Keyword"},
		{KeywordTok | ControlFlow, "Keyword | ControlFlow"},
		{BinaryOp | ArithmeticOp | AssignOp, "BinaryOp | ArithmeticOp | AssignOp"},
		{LiteralTok | KeywordTok, "Literal | Keyword"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("String(%#x) = %q, want %q", uint16(tt.cat), got, tt.want)
		}
	}
}

func TestCategorySetOperations(t *testing.T) {
	cat := KeywordTok.Union(ControlFlow)

	if !cat.Has(KeywordTok) || !cat.Has(ControlFlow) || !cat.Has(KeywordTok|ControlFlow) {
		t.Errorf("Has failed on %s", cat)
	}
	if cat.Has(LiteralTok) {
		t.Errorf("Has reported an absent flag on %s", cat)
	}
	if !cat.HasAny(LiteralTok | ControlFlow) {
		t.Errorf("HasAny missed a present flag on %s", cat)
	}
	if cat.HasAny(LiteralTok | Punctuator) {
		t.Errorf("HasAny reported absent flags on %s", cat)
	}
	if NonCategorical.HasAny(cat) {
		t.Errorf("empty set HasAny reported true")
	}
}
