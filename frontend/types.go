package frontend

// TokenType is the closed set of lexeme kinds the lexer can produce.
type TokenType uint8

const (
	Illegal TokenType = iota
	EndOfFile
	Identifier

	// Literals
	IntLiteral
	HexLiteral
	OctalLiteral
	BinLiteral
	FloatLiteral
	StringLiteral
	CharLiteral
	BooleanLiteral
	NullLiteral

	// Punctuation
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftSqBracket
	RightSqBracket
	Comma
	Semicolon
	Colon
	Dot
	FatArrow

	// Operators
	ValueAssignment
	PlusEq
	SubEq
	MulEq
	DivEq
	ModEq
	LshiftEq
	RshiftEq
	BitwiseAndEq
	BitwiseOrEq
	XorEq
	Plus
	Sub
	Mul
	Div
	Mod
	Inc
	Dec
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	LogicalAnd
	LogicalOr
	LogicalNot
	BitwiseAnd
	BitwiseOr
	BitwiseNot
	Xor
	Lshift
	Rshift
	NamespaceOperator
	SkinnyArrow

	// Keywords
	Proc
	Let
	Const
	Cast
	If
	Elif
	Else
	While
	Do
	For
	Switch
	Case
	Default
	Defer
	Block
	Return
	Break
	Continue
	Struct
	Namespace
	Where
	Otherwise

	typeCount
)

// typeNames maps each type to its symbolic enumerator name, used for
// diagnostics. Stable, never localized.
var typeNames = [typeCount]string{
	Illegal:    "Illegal",
	EndOfFile:  "EndOfFile",
	Identifier: "Identifier",

	IntLiteral:     "IntLiteral",
	HexLiteral:     "HexLiteral",
	OctalLiteral:   "OctalLiteral",
	BinLiteral:     "BinLiteral",
	FloatLiteral:   "FloatLiteral",
	StringLiteral:  "StringLiteral",
	CharLiteral:    "CharLiteral",
	BooleanLiteral: "BooleanLiteral",
	NullLiteral:    "NullLiteral",

	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	LeftSqBracket:  "LeftSqBracket",
	RightSqBracket: "RightSqBracket",
	Comma:          "Comma",
	Semicolon:      "Semicolon",
	Colon:          "Colon",
	Dot:            "Dot",
	FatArrow:       "FatArrow",

	ValueAssignment:   "ValueAssignment",
	PlusEq:            "PlusEq",
	SubEq:             "SubEq",
	MulEq:             "MulEq",
	DivEq:             "DivEq",
	ModEq:             "ModEq",
	LshiftEq:          "LshiftEq",
	RshiftEq:          "RshiftEq",
	BitwiseAndEq:      "BitwiseAndEq",
	BitwiseOrEq:       "BitwiseOrEq",
	XorEq:             "XorEq",
	Plus:              "Plus",
	Sub:               "Sub",
	Mul:               "Mul",
	Div:               "Div",
	Mod:               "Mod",
	Inc:               "Inc",
	Dec:               "Dec",
	Eq:                "Eq",
	Neq:               "Neq",
	Lt:                "Lt",
	Lte:               "Lte",
	Gt:                "Gt",
	Gte:               "Gte",
	LogicalAnd:        "LogicalAnd",
	LogicalOr:         "LogicalOr",
	LogicalNot:        "LogicalNot",
	BitwiseAnd:        "BitwiseAnd",
	BitwiseOr:         "BitwiseOr",
	BitwiseNot:        "BitwiseNot",
	Xor:               "Xor",
	Lshift:            "Lshift",
	Rshift:            "Rshift",
	NamespaceOperator: "NamespaceOperator",
	SkinnyArrow:       "SkinnyArrow",

	Proc:      "Proc",
	Let:       "Let",
	Const:     "Const",
	Cast:      "Cast",
	If:        "If",
	Elif:      "Elif",
	Else:      "Else",
	While:     "While",
	Do:        "Do",
	For:       "For",
	Switch:    "Switch",
	Case:      "Case",
	Default:   "Default",
	Defer:     "Defer",
	Block:     "Block",
	Return:    "Return",
	Break:     "Break",
	Continue:  "Continue",
	Struct:    "Struct",
	Namespace: "Namespace",
	Where:     "Where",
	Otherwise: "Otherwise",
}

// typeReprs maps types with a fixed surface spelling (operators,
// punctuation, keywords) to that spelling. Literal-shaped types have no
// fixed spelling and are absent; Repr falls back to the symbolic name
// for them.
var typeReprs = [typeCount]string{
	LeftParen:      "(",
	RightParen:     ")",
	LeftBrace:      "{",
	RightBrace:     "}",
	LeftSqBracket:  "[",
	RightSqBracket: "]",
	Comma:          ",",
	Semicolon:      ";",
	Colon:          ":",
	Dot:            ".",
	FatArrow:       "=>",

	ValueAssignment:   "=",
	PlusEq:            "+=",
	SubEq:             "-=",
	MulEq:             "*=",
	DivEq:             "/=",
	ModEq:             "%=",
	LshiftEq:          "<<=",
	RshiftEq:          ">>=",
	BitwiseAndEq:      "&=",
	BitwiseOrEq:       "|=",
	XorEq:             "^=",
	Plus:              "+",
	Sub:               "-",
	Mul:               "*",
	Div:               "/",
	Mod:               "%",
	Inc:               "++",
	Dec:               "--",
	Eq:                "==",
	Neq:               "!=",
	Lt:                "<",
	Lte:               "<=",
	Gt:                ">",
	Gte:               ">=",
	LogicalAnd:        "&&",
	LogicalOr:         "||",
	LogicalNot:        "!",
	BitwiseAnd:        "&",
	BitwiseOr:         "|",
	BitwiseNot:        "~",
	Xor:               "^",
	Lshift:            "<<",
	Rshift:            ">>",
	NamespaceOperator: "::",
	SkinnyArrow:       "->",

	Proc:      "proc",
	Let:       "let",
	Const:     "const",
	Cast:      "cast",
	If:        "if",
	Elif:      "elif",
	Else:      "else",
	While:     "while",
	Do:        "do",
	For:       "for",
	Switch:    "switch",
	Case:      "case",
	Default:   "default",
	Defer:     "defer",
	Block:     "block",
	Return:    "return",
	Break:     "break",
	Continue:  "continue",
	Struct:    "struct",
	Namespace: "namespace",
	Where:     "where",
	Otherwise: "otherwise",
}

// typeCategories gives the fixed classification of every type. Categories
// are metadata derived purely from the type; tokens copy this value at
// construction and it never disagrees with the type that produced it.
var typeCategories = [typeCount]TokenCategory{
	Illegal:    NonCategorical,
	EndOfFile:  NonCategorical,
	Identifier: IdentifierTok,

	IntLiteral:     LiteralTok,
	HexLiteral:     LiteralTok,
	OctalLiteral:   LiteralTok,
	BinLiteral:     LiteralTok,
	FloatLiteral:   LiteralTok,
	StringLiteral:  LiteralTok,
	CharLiteral:    LiteralTok,
	BooleanLiteral: LiteralTok | KeywordTok,
	NullLiteral:    LiteralTok | KeywordTok,

	LeftParen:      Punctuator,
	RightParen:     Punctuator,
	LeftBrace:      Punctuator,
	RightBrace:     Punctuator,
	LeftSqBracket:  Punctuator,
	RightSqBracket: Punctuator,
	Comma:          Punctuator,
	Semicolon:      Punctuator,
	Colon:          Punctuator,
	Dot:            Punctuator | BinaryOp,
	FatArrow:       Punctuator,

	ValueAssignment:   BinaryOp | AssignOp,
	PlusEq:            BinaryOp | ArithmeticOp | AssignOp,
	SubEq:             BinaryOp | ArithmeticOp | AssignOp,
	MulEq:             BinaryOp | ArithmeticOp | AssignOp,
	DivEq:             BinaryOp | ArithmeticOp | AssignOp,
	ModEq:             BinaryOp | ArithmeticOp | AssignOp,
	LshiftEq:          BinaryOp | BitwiseOp | AssignOp,
	RshiftEq:          BinaryOp | BitwiseOp | AssignOp,
	BitwiseAndEq:      BinaryOp | BitwiseOp | AssignOp,
	BitwiseOrEq:       BinaryOp | BitwiseOp | AssignOp,
	XorEq:             BinaryOp | BitwiseOp | AssignOp,
	Plus:              BinaryOp | UnaryOp | ArithmeticOp,
	Sub:               BinaryOp | UnaryOp | ArithmeticOp,
	Mul:               BinaryOp | UnaryOp | ArithmeticOp,
	Div:               BinaryOp | ArithmeticOp,
	Mod:               BinaryOp | ArithmeticOp,
	Inc:               UnaryOp | ArithmeticOp,
	Dec:               UnaryOp | ArithmeticOp,
	Eq:                BinaryOp | ComparisonOp,
	Neq:               BinaryOp | ComparisonOp,
	Lt:                BinaryOp | ComparisonOp,
	Lte:               BinaryOp | ComparisonOp,
	Gt:                BinaryOp | ComparisonOp,
	Gte:               BinaryOp | ComparisonOp,
	LogicalAnd:        BinaryOp | LogicalOp,
	LogicalOr:         BinaryOp | LogicalOp,
	LogicalNot:        UnaryOp | LogicalOp,
	BitwiseAnd:        BinaryOp | UnaryOp | BitwiseOp,
	BitwiseOr:         BinaryOp | BitwiseOp,
	BitwiseNot:        UnaryOp | BitwiseOp,
	Xor:               BinaryOp | BitwiseOp,
	Lshift:            BinaryOp | BitwiseOp,
	Rshift:            BinaryOp | BitwiseOp,
	NamespaceOperator: BinaryOp,
	SkinnyArrow:       BinaryOp | Punctuator,

	Proc:      KeywordTok,
	Let:       KeywordTok,
	Const:     KeywordTok,
	Cast:      KeywordTok,
	If:        KeywordTok | ControlFlow,
	Elif:      KeywordTok | ControlFlow,
	Else:      KeywordTok | ControlFlow,
	While:     KeywordTok | ControlFlow,
	Do:        KeywordTok | ControlFlow,
	For:       KeywordTok | ControlFlow,
	Switch:    KeywordTok | ControlFlow,
	Case:      KeywordTok | ControlFlow,
	Default:   KeywordTok | ControlFlow,
	Defer:     KeywordTok | ControlFlow,
	Block:     KeywordTok,
	Return:    KeywordTok | ControlFlow,
	Break:     KeywordTok | ControlFlow,
	Continue:  KeywordTok | ControlFlow,
	Struct:    KeywordTok,
	Namespace: KeywordTok,
	Where:     KeywordTok,
	Otherwise: KeywordTok | ControlFlow,
}

// String returns the symbolic enumerator name of the type, or "Unknown"
// for out-of-range values. Never panics.
func (t TokenType) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return "Unknown"
}

// Repr returns the fixed surface spelling of the type: "+=" for PlusEq,
// "proc" for Proc, and so on. Types with no fixed spelling (identifiers,
// literals, Illegal, EndOfFile) fall back to their symbolic name;
// out-of-range values yield "Unknown". Never panics.
func (t TokenType) Repr() string {
	if t >= typeCount {
		return "Unknown"
	}
	if r := typeReprs[t]; r != "" {
		return r
	}
	return typeNames[t]
}

// Category returns the fixed classification bitmask of the type.
// Out-of-range values classify as NonCategorical.
func (t TokenType) Category() TokenCategory {
	if t < typeCount {
		return typeCategories[t]
	}
	return NonCategorical
}

// IsKeyword reports whether the type is a keyword (including the
// literal-valued keywords true/false/null).
func (t TokenType) IsKeyword() bool {
	return t.Category().Has(KeywordTok)
}

// IsLiteral reports whether the type is literal-shaped.
func (t TokenType) IsLiteral() bool {
	return t.Category().Has(LiteralTok)
}

// IsOperator reports whether the type can appear as a unary or binary
// operator.
func (t TokenType) IsOperator() bool {
	return t.Category().HasAny(UnaryOp | BinaryOp)
}
