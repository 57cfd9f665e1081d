package frontend

import "fmt"

// Token is the classified, positioned record produced for one lexeme. It
// holds no reference to the source text: Pos and Len describe a byte range
// of the buffer it was scanned from, and the spelling is recovered on
// demand with Value. Tokens are created by the lexer and immutable after
// that.
type Token struct {
	Pos  uint32 // zero-based byte offset of the lexeme
	Len  uint32 // byte length; 0 only for EndOfFile
	Line uint32 // 1-based source line at the lexeme start
	Cat  TokenCategory
	Type TokenType
}

// EOFToken returns the zero-width end-of-stream token at the given
// position and line.
func EOFToken(pos, line uint32) Token {
	return Token{Pos: pos, Line: line, Cat: NonCategorical, Type: EndOfFile}
}

// IllegalToken marks a malformed byte range. Malformed input is data, not
// an error: the lexer emits one of these and keeps scanning.
func IllegalToken(pos, length, line uint32) Token {
	return Token{Pos: pos, Len: length, Line: line, Cat: NonCategorical, Type: Illegal}
}

// Value recovers the token's spelling from the buffer it was scanned from:
// exactly the byte range [Pos, Pos+Len). The boolean is false for
// zero-width tokens (EndOfFile), which have no spelling.
//
// Passing a buffer other than the originating one is a caller bug. An
// out-of-range Pos/Len against buf panics rather than returning an error,
// since it can never happen for a token scanned from buf.
func (t Token) Value(buf []byte) (string, bool) {
	if t.Len == 0 {
		return "", false
	}
	end := uint64(t.Pos) + uint64(t.Len)
	if end > uint64(len(buf)) {
		panic(fmt.Sprintf("frontend: token range [%d,%d) out of bounds for %d-byte buffer",
			t.Pos, end, len(buf)))
	}
	return string(buf[t.Pos:end]), true
}

// Format renders a fixed human-readable diagnostic line for the token:
// type name, spelling (or "N/A"), line and offset, and category string.
// Debugging and tests only; nothing parses this.
func (t Token) Format(buf []byte) string {
	value, ok := t.Value(buf)
	if !ok {
		value = "N/A"
	}
	return fmt.Sprintf("%-12s: %q -- LINE=%d,POS=%d -- %s",
		t.Type.String(), value, t.Line, t.Pos, t.Cat.String())
}

// IsTerminator reports whether the token ends a statement or list element.
func (t Token) IsTerminator() bool {
	return t.Type == Semicolon || t.Type == Comma
}

// IsEOF reports whether the token marks the end of the stream.
func (t Token) IsEOF() bool {
	return t.Type == EndOfFile
}

// IsIllegal reports whether the token marks a malformed lexeme.
func (t Token) IsIllegal() bool {
	return t.Type == Illegal
}
