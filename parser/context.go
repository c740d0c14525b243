package parser

import (
	"fmt"

	"github.com/viant/forge/diag"
	"github.com/viant/forge/source"
)

// Context is the explicit, threaded parsing state: the lexer, one
// token of lookahead, the destination message buffer, and the path
// being parsed. Passing *Context instead of reaching for globals keeps
// the parser reentrant across independent calls even though any one
// Context is used single-threaded.
type Context struct {
	Path     string
	Messages *diag.Buffer

	lexer *Lexer
	tok   Token
	tokOK bool
}

// NewContext returns a Context ready to parse src, reporting messages
// into messages.
func NewContext(src *source.Source, messages *diag.Buffer) *Context {
	r := source.NewReader(src)
	return &Context{
		Path:     src.Path(),
		Messages: messages,
		lexer:    NewLexer(r),
	}
}

// Peek returns the current lookahead token, lexing it on first use.
// A lexical error is reported to Messages and surfaces as a
// TokUnknown token so the parser can still attempt recovery.
func (c *Context) Peek() Token {
	if !c.tokOK {
		c.advance()
	}
	return c.tok
}

// Advance consumes the current lookahead token and returns it.
func (c *Context) Advance() Token {
	t := c.Peek()
	c.tokOK = false
	return t
}

func (c *Context) advance() {
	tok, err := c.lexer.Next()
	if err != nil {
		c.errorf(source.Range{}, "is-1", "%s", err.Error())
		tok = Token{Kind: TokUnknown}
	}
	c.tok = tok
	c.tokOK = true
}

// At reports whether the lookahead token has kind k.
func (c *Context) At(k TokenKind) bool {
	return c.Peek().Kind == k
}

// AtKeyword reports whether the lookahead token is the keyword word.
func (c *Context) AtKeyword(word string) bool {
	return c.Peek().IsKeyword(word)
}

// Expect consumes and returns the lookahead token if it has kind k;
// otherwise it reports a diagnostic and returns the unconsumed token
// with ok == false, leaving the cursor in place for recovery.
func (c *Context) Expect(k TokenKind) (Token, bool) {
	t := c.Peek()
	if t.Kind != k {
		c.errorf(t.Range, "is-20", "expected %s, got %s %q", k, t.Kind, t.Text)
		return t, false
	}
	return c.Advance(), true
}

// ExpectKeyword consumes and returns the lookahead token if it is the
// keyword word; otherwise reports a diagnostic.
func (c *Context) ExpectKeyword(word string) (Token, bool) {
	t := c.Peek()
	if !t.IsKeyword(word) {
		c.errorf(t.Range, "is-21", "expected keyword %q, got %s %q", word, t.Kind, t.Text)
		return t, false
	}
	return c.Advance(), true
}

func (c *Context) errorf(r source.Range, code, format string, args ...any) {
	c.Messages.Emit(diag.New(diag.Error, code, fmt.Sprintf(format, args...)).WithRange(r))
}

// synchronizeStatementBoundary discards tokens until the next
// statement/declaration boundary (a ';' or the start of a new block).
func (c *Context) synchronizeStatementBoundary() {
	for {
		t := c.Peek()
		if t.Kind == TokEOF {
			return
		}
		if t.Kind == TokSemicolon {
			c.Advance()
			return
		}
		if t.Kind == TokRBrace {
			return
		}
		c.Advance()
	}
}
