package frontend

import (
	"strings"
	"testing"
)

func TestTokenValueRoundTrip(t *testing.T) {
	src := []byte(`proc greet() { let s = "hi\n"; s += name; }`)
	l := NewLexer(src)

	for _, tok := range l.Tokens() {
		value, ok := tok.Value(src)
		if tok.IsEOF() {
			if ok {
				t.Errorf("EOF token returned a value %q", value)
			}
			continue
		}
		if !ok {
			t.Errorf("token %s at %d returned no value", tok.Type, tok.Pos)
			continue
		}
		want := string(src[tok.Pos : tok.Pos+tok.Len])
		if value != want {
			t.Errorf("token %s: value = %q, want byte range %q", tok.Type, value, want)
		}
	}
}

func TestTokenValueZeroWidth(t *testing.T) {
	eof := EOFToken(0, 1)
	if _, ok := eof.Value(nil); ok {
		t.Fatalf("zero-width token must have no value")
	}
}

func TestTokenValueOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range value recovery")
		}
	}()

	tok := Token{Pos: 10, Len: 5, Line: 1, Type: Identifier, Cat: IdentifierTok}
	tok.Value([]byte("short"))
}

func TestTokenFormat(t *testing.T) {
	src := []byte("proc")
	l := NewLexer(src)
	tok := l.Next()

	line := tok.Format(src)
	for _, want := range []string{"Proc", `"proc"`, "LINE=1", "POS=0", "Keyword"} {
		if !strings.Contains(line, want) {
			t.Errorf("Format = %q, missing %q", line, want)
		}
	}
}

func TestTokenFormatEOF(t *testing.T) {
	src := []byte("")
	tok := NewLexer(src).Next()

	line := tok.Format(src)
	for _, want := range []string{"EndOfFile", `"N/A"`, "NonCategorical"} {
		if !strings.Contains(line, want) {
			t.Errorf("Format = %q, missing %q", line, want)
		}
	}
}

func TestTokenConstructors(t *testing.T) {
	eof := EOFToken(7, 3)
	if eof.Type != EndOfFile || eof.Cat != NonCategorical || eof.Pos != 7 || eof.Len != 0 || eof.Line != 3 {
		t.Errorf("unexpected EOF token: %+v", eof)
	}
	if !eof.IsEOF() || eof.IsIllegal() {
		t.Errorf("EOF predicates wrong: %+v", eof)
	}

	ill := IllegalToken(2, 4, 9)
	if ill.Type != Illegal || ill.Cat != NonCategorical || ill.Pos != 2 || ill.Len != 4 || ill.Line != 9 {
		t.Errorf("unexpected Illegal token: %+v", ill)
	}
	if !ill.IsIllegal() || ill.IsEOF() {
		t.Errorf("Illegal predicates wrong: %+v", ill)
	}
}

func TestIsTerminator(t *testing.T) {
	tokens := NewLexer([]byte("a; b, c")).Tokens()

	var terminators int
	for _, tok := range tokens {
		if tok.IsTerminator() {
			if tok.Type != Semicolon && tok.Type != Comma {
				t.Errorf("%s claims to be a terminator", tok.Type)
			}
			terminators++
		}
	}
	if terminators != 2 {
		t.Errorf("expected 2 terminators, got %d", terminators)
	}
}
