// Package parser turns a source.Reader into an ast.DeclBlock, threading
// an explicit Context (message buffer, current path, reader state)
// through every parse function rather than relying on process-wide
// globals — the pipeline is single-threaded and non-reentrant per
// Context, not globally.
package parser

import (
	"fmt"

	"github.com/viant/forge/source"
)

// TokenKind classifies one lexical token. The language has no separate
// lexer stage exposed as a testable artifact; TokenKind and Token exist
// to structure the parser's own lookahead.
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokIdent
	TokKeyword
	TokIntLiteral
	TokFloatLiteral
	TokCharLiteral
	TokStringLiteral

	// Punctuation
	TokLParen
	TokRParen
	TokLBrace
	TokRBrace
	TokLBracket
	TokRBracket
	TokComma
	TokColon
	TokSemicolon
	TokDot
	TokDotDotDot
	TokQuestion
	TokArrow // ->

	// Operators
	TokAssign
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent
	TokEqualEqual
	TokNotEqual
	TokLess
	TokLessEqual
	TokGreater
	TokGreaterEqual
	TokAndAnd
	TokOrOr
	TokBang
	TokAmp
	TokPipe
	TokCaret
	TokShiftLeft
	TokShiftRight
	TokTilde

	TokUnknown
)

var tokenNames = map[TokenKind]string{
	TokEOF: "end-of-input", TokIdent: "identifier", TokKeyword: "keyword",
	TokIntLiteral: "integer literal", TokFloatLiteral: "float literal",
	TokCharLiteral: "character literal", TokStringLiteral: "string literal",
	TokLParen: "(", TokRParen: ")", TokLBrace: "{", TokRBrace: "}",
	TokLBracket: "[", TokRBracket: "]", TokComma: ",", TokColon: ":",
	TokSemicolon: ";", TokDot: ".", TokDotDotDot: "...", TokQuestion: "?",
	TokArrow: "->", TokAssign: "=", TokPlus: "+", TokMinus: "-", TokStar: "*",
	TokSlash: "/", TokPercent: "%", TokEqualEqual: "==", TokNotEqual: "!=",
	TokLess: "<", TokLessEqual: "<=", TokGreater: ">", TokGreaterEqual: ">=",
	TokAndAnd: "&&", TokOrOr: "||", TokBang: "!", TokAmp: "&", TokPipe: "|",
	TokCaret: "^", TokShiftLeft: "<<", TokShiftRight: ">>", TokTilde: "~",
	TokUnknown: "<unknown>",
}

func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(k))
}

var keywords = map[string]bool{
	"struct": true, "union": true, "interface": true, "abstract": true,
	"extends": true, "fn": true, "mut": true, "override": true,
	"return": true, "if": true, "else": true, "while": true,
	"true": true, "false": true, "void": true, "bool": true,
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
	"f32": true, "f64": true, "const": true, "keyword": true,
}

// Token is one lexical token: its classified kind, raw text, the
// source range it spans, and — for literal kinds — the value lexcast
// already decoded while the lexer scanned it.
type Token struct {
	Kind  TokenKind
	Text  string
	Range source.Range

	IntValue    uint64
	IntWidth    int
	IntUnsigned bool
	FloatValue  float64
	FloatWidth  int
	CharValue   rune
	StringValue []byte
}

// IsKeyword reports whether t is TokKeyword with the given literal
// text, the common case for matching a specific keyword in the
// parser's lookahead.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == TokKeyword && t.Text == word
}
