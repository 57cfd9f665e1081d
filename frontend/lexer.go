package frontend

// Lexer is the scanning engine. It borrows an immutable source byte buffer
// and partitions it into tokens one Next call at a time, tracking a cursor
// and the current 1-based line. The buffer must stay valid and unmodified
// for the lexer's lifetime.
//
// A Lexer is not safe for concurrent use; independent lexers over
// independent buffers run fully in parallel. Once Next has produced an
// EndOfFile token every later call produces EndOfFile again; restarting
// means constructing a new Lexer.
type Lexer struct {
	buf  []byte
	cur  int
	line uint32
}

// NewLexer returns a lexer positioned at the start of buf.
func NewLexer(buf []byte) *Lexer {
	return &Lexer{buf: buf, line: 1}
}

// Buffer returns the source buffer the lexer scans. Token values are
// recovered against this buffer.
func (l *Lexer) Buffer() []byte {
	return l.buf
}

// Next scans and returns the next token. Malformed lexemes come back as
// Illegal tokens; the cursor always moves forward, so repeated calls
// terminate with EndOfFile for any input.
func (l *Lexer) Next() Token {
	if tok, bad := l.skipTrivia(); bad {
		return tok
	}
	if l.cur >= len(l.buf) {
		return EOFToken(uint32(len(l.buf)), l.line)
	}

	switch ch := l.buf[l.cur]; {
	case isIdentStart(ch):
		return l.scanIdentifier()
	case isDigit(ch):
		return l.scanNumber()
	case ch == '"' || ch == '\'':
		return l.scanQuoted(ch)
	default:
		return l.scanOperator()
	}
}

// Tokens scans the remaining input as a full stream, ending with the
// EndOfFile token (inclusive).
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

// peekAt returns the byte n positions past the cursor, or 0 past the end.
func (l *Lexer) peekAt(n int) byte {
	if l.cur+n < len(l.buf) {
		return l.buf[l.cur+n]
	}
	return 0
}

// token builds a token for the byte range [start, l.cur) on the current
// line, with the category fixed by the type.
func (l *Lexer) token(typ TokenType, start int) Token {
	return Token{
		Pos:  uint32(start),
		Len:  uint32(l.cur - start),
		Line: l.line,
		Cat:  typ.Category(),
		Type: typ,
	}
}

// skipTrivia consumes whitespace and comments, counting newlines. An
// unterminated block comment cannot be skipped; it comes back as an
// Illegal token spanning from the opening "/*" to the end of input, with
// bad set.
func (l *Lexer) skipTrivia() (tok Token, bad bool) {
	for l.cur < len(l.buf) {
		switch ch := l.buf[l.cur]; {
		case ch == '\n':
			l.line++
			l.cur++
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f':
			l.cur++
		case ch == '/' && l.peekAt(1) == '/':
			l.cur += 2
			for l.cur < len(l.buf) && l.buf[l.cur] != '\n' {
				l.cur++
			}
		case ch == '/' && l.peekAt(1) == '*':
			start := l.cur
			startLine := l.line
			l.cur += 2
			for {
				if l.cur >= len(l.buf) {
					return IllegalToken(uint32(start), uint32(len(l.buf)-start), startLine), true
				}
				if l.buf[l.cur] == '*' && l.peekAt(1) == '/' {
					l.cur += 2
					break
				}
				if l.buf[l.cur] == '\n' {
					l.line++
				}
				l.cur++
			}
		default:
			return Token{}, false
		}
	}
	return Token{}, false
}

// scanIdentifier consumes a maximal identifier run and resolves it against
// the keyword table; non-keywords are plain Identifier tokens.
func (l *Lexer) scanIdentifier() Token {
	start := l.cur
	for l.cur < len(l.buf) && isIdentCont(l.buf[l.cur]) {
		l.cur++
	}
	spelling := string(l.buf[start:l.cur])
	if typ, cat, ok := ResolveKeyword(spelling); ok {
		return Token{
			Pos:  uint32(start),
			Len:  uint32(l.cur - start),
			Line: l.line,
			Cat:  cat,
			Type: typ,
		}
	}
	return l.token(Identifier, start)
}

// scanNumber consumes a maximal numeric literal. Accepted grammar:
// decimal integers, 0x/0o/0b based integers, and floats of the form
// digits '.' digits with an optional e[+-]digits exponent. A base prefix
// or exponent with no digits yields an Illegal token spanning exactly the
// consumed bytes.
func (l *Lexer) scanNumber() Token {
	start := l.cur
	if l.buf[l.cur] == '0' {
		switch lower(l.peekAt(1)) {
		case 'x':
			return l.scanBasedNumber(start, HexLiteral, isHexDigit)
		case 'o':
			return l.scanBasedNumber(start, OctalLiteral, isOctalDigit)
		case 'b':
			return l.scanBasedNumber(start, BinLiteral, isBinaryDigit)
		}
	}

	for l.cur < len(l.buf) && isDigit(l.buf[l.cur]) {
		l.cur++
	}

	typ := IntLiteral
	if l.cur < len(l.buf) && l.buf[l.cur] == '.' && isDigit(l.peekAt(1)) {
		typ = FloatLiteral
		l.cur++
		for l.cur < len(l.buf) && isDigit(l.buf[l.cur]) {
			l.cur++
		}
	}

	if l.cur < len(l.buf) && lower(l.buf[l.cur]) == 'e' {
		typ = FloatLiteral
		l.cur++
		if l.cur < len(l.buf) && (l.buf[l.cur] == '+' || l.buf[l.cur] == '-') {
			l.cur++
		}
		if l.cur >= len(l.buf) || !isDigit(l.buf[l.cur]) {
			// Exponent has no digits.
			return IllegalToken(uint32(start), uint32(l.cur-start), l.line)
		}
		for l.cur < len(l.buf) && isDigit(l.buf[l.cur]) {
			l.cur++
		}
	}

	return l.token(typ, start)
}

func (l *Lexer) scanBasedNumber(start int, typ TokenType, valid func(byte) bool) Token {
	l.cur += 2 // base prefix, e.g. "0x"
	if l.cur >= len(l.buf) || !valid(l.buf[l.cur]) {
		return IllegalToken(uint32(start), uint32(l.cur-start), l.line)
	}
	for l.cur < len(l.buf) && valid(l.buf[l.cur]) {
		l.cur++
	}
	return l.token(typ, start)
}

// scanQuoted consumes a string or character literal including both quotes.
// Escapes are structural only: a backslash always consumes the following
// byte so an escaped quote never terminates the literal; decoding is the
// consumer's concern since tokens carry raw byte ranges. An unterminated
// literal becomes an Illegal token spanning from the opening quote to the
// end of input. Embedded newlines are permitted and counted; the token
// line is the line of the opening quote.
func (l *Lexer) scanQuoted(quote byte) Token {
	start := l.cur
	startLine := l.line
	l.cur++
	for l.cur < len(l.buf) {
		switch l.buf[l.cur] {
		case quote:
			l.cur++
			typ := StringLiteral
			if quote == '\'' {
				typ = CharLiteral
			}
			return Token{
				Pos:  uint32(start),
				Len:  uint32(l.cur - start),
				Line: startLine,
				Cat:  typ.Category(),
				Type: typ,
			}
		case '\\':
			l.cur++
			if l.cur < len(l.buf) {
				if l.buf[l.cur] == '\n' {
					l.line++
				}
				l.cur++
			}
		case '\n':
			l.line++
			l.cur++
		default:
			l.cur++
		}
	}
	return IllegalToken(uint32(start), uint32(len(l.buf)-start), startLine)
}

// scanOperator consumes the longest matching operator or punctuation
// spelling (maximal munch): "<<=" beats "<<" beats "<". Bytes that start
// no known spelling become single-byte Illegal tokens.
func (l *Lexer) scanOperator() Token {
	start := l.cur
	var typ TokenType

	switch l.buf[l.cur] {
	case '(':
		typ = LeftParen
		l.cur++
	case ')':
		typ = RightParen
		l.cur++
	case '{':
		typ = LeftBrace
		l.cur++
	case '}':
		typ = RightBrace
		l.cur++
	case '[':
		typ = LeftSqBracket
		l.cur++
	case ']':
		typ = RightSqBracket
		l.cur++
	case ',':
		typ = Comma
		l.cur++
	case ';':
		typ = Semicolon
		l.cur++
	case '.':
		typ = Dot
		l.cur++
	case '~':
		typ = BitwiseNot
		l.cur++
	case ':':
		if l.peekAt(1) == ':' {
			typ = NamespaceOperator
			l.cur += 2
		} else {
			typ = Colon
			l.cur++
		}
	case '+':
		switch l.peekAt(1) {
		case '=':
			typ = PlusEq
			l.cur += 2
		case '+':
			typ = Inc
			l.cur += 2
		default:
			typ = Plus
			l.cur++
		}
	case '-':
		switch l.peekAt(1) {
		case '=':
			typ = SubEq
			l.cur += 2
		case '-':
			typ = Dec
			l.cur += 2
		case '>':
			typ = SkinnyArrow
			l.cur += 2
		default:
			typ = Sub
			l.cur++
		}
	case '*':
		if l.peekAt(1) == '=' {
			typ = MulEq
			l.cur += 2
		} else {
			typ = Mul
			l.cur++
		}
	case '/':
		// Comments were consumed as trivia, so '/' here is division.
		if l.peekAt(1) == '=' {
			typ = DivEq
			l.cur += 2
		} else {
			typ = Div
			l.cur++
		}
	case '%':
		if l.peekAt(1) == '=' {
			typ = ModEq
			l.cur += 2
		} else {
			typ = Mod
			l.cur++
		}
	case '=':
		switch l.peekAt(1) {
		case '=':
			typ = Eq
			l.cur += 2
		case '>':
			typ = FatArrow
			l.cur += 2
		default:
			typ = ValueAssignment
			l.cur++
		}
	case '!':
		if l.peekAt(1) == '=' {
			typ = Neq
			l.cur += 2
		} else {
			typ = LogicalNot
			l.cur++
		}
	case '<':
		switch l.peekAt(1) {
		case '<':
			if l.peekAt(2) == '=' {
				typ = LshiftEq
				l.cur += 3
			} else {
				typ = Lshift
				l.cur += 2
			}
		case '=':
			typ = Lte
			l.cur += 2
		default:
			typ = Lt
			l.cur++
		}
	case '>':
		switch l.peekAt(1) {
		case '>':
			if l.peekAt(2) == '=' {
				typ = RshiftEq
				l.cur += 3
			} else {
				typ = Rshift
				l.cur += 2
			}
		case '=':
			typ = Gte
			l.cur += 2
		default:
			typ = Gt
			l.cur++
		}
	case '&':
		switch l.peekAt(1) {
		case '&':
			typ = LogicalAnd
			l.cur += 2
		case '=':
			typ = BitwiseAndEq
			l.cur += 2
		default:
			typ = BitwiseAnd
			l.cur++
		}
	case '|':
		switch l.peekAt(1) {
		case '|':
			typ = LogicalOr
			l.cur += 2
		case '=':
			typ = BitwiseOrEq
			l.cur += 2
		default:
			typ = BitwiseOr
			l.cur++
		}
	case '^':
		if l.peekAt(1) == '=' {
			typ = XorEq
			l.cur += 2
		} else {
			typ = Xor
			l.cur++
		}
	default:
		l.cur++
		return IllegalToken(uint32(start), 1, l.line)
	}

	return l.token(typ, start)
}

// Byte classification. The scanner is byte-oriented: identifiers are
// ASCII; any other byte falls through to Illegal.

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= lower(ch) && lower(ch) <= 'f'
}

func isOctalDigit(ch byte) bool {
	return '0' <= ch && ch <= '7'
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func lower(ch byte) byte {
	return ch | ('a' - 'A')
}
