// Package frontend implements the lexical front end of the n19 compiler:
// the tokenizer and its token data model. It turns a raw source byte buffer
// into a stream of classified, positioned tokens for the parser:
//   - Tokens record a byte offset, length, and 1-based line number into the
//     source buffer; they never own source text. The original spelling is
//     recovered on demand from the buffer the token was scanned from.
//   - Keywords are recognized by murmur3 hash dispatch over a fixed, closed
//     keyword list built once at startup.
//   - Every TokenType carries a fixed TokenCategory bitmask (keyword,
//     operator, literal, ...) the parser uses for grouping decisions.
//
// Malformed input never aborts a scan. Unterminated quotes, bad numeric
// prefixes, and unrecognized bytes become Illegal tokens and scanning
// continues, so every scan terminates with an EndOfFile token.
package frontend
