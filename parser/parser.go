package parser

import (
	"github.com/viant/forge/ast"
	"github.com/viant/forge/diag"
	"github.com/viant/forge/source"
)

// Parse produces the top-level declaration block for src. It never
// returns nil: syntax errors are reported into messages and parsing
// recovers past them. Parse is single-threaded and non-reentrant for a given
// Context, matching the reader it wraps.
func Parse(src *source.Source, messages *diag.Buffer) *ast.DeclBlock {
	c := NewContext(src, messages)
	return parseTopLevel(c)
}

func parseTopLevel(c *Context) *ast.DeclBlock {
	start := c.Peek().Range.Start
	var children []ast.Node
	for !c.At(TokEOF) {
		decl := parseTopLevelDeclaration(c)
		if decl != nil {
			children = append(children, decl)
		}
	}
	return &ast.DeclBlock{
		Header:   ast.Header{NodeRange: source.Span(source.Range{Start: start}, c.Peek().Range)},
		Children: children,
	}
}

// parseTopLevelDeclaration parses one struct/union/interface/function/
// assignment declaration, recovering to the next statement boundary on
// failure so the remainder of the file can still be parsed.
func parseTopLevelDeclaration(c *Context) ast.Node {
	t := c.Peek()
	switch {
	case t.IsKeyword("struct"):
		return parseStructure(c)
	case t.IsKeyword("union"):
		return parseUnion(c)
	case t.IsKeyword("abstract"), t.IsKeyword("interface"):
		return parseInterface(c)
	case t.IsKeyword("fn"), t.IsKeyword("mut"), t.IsKeyword("override"):
		return parseFunction(c)
	case t.Kind == TokIdent:
		return parseAssignment(c)
	default:
		c.errorf(t.Range, "is-22", "expected a declaration, got %s %q", t.Kind, t.Text)
		c.synchronizeStatementBoundary()
		return nil
	}
}

func parseStructure(c *Context) ast.Node {
	start, _ := c.ExpectKeyword("struct")
	name, _ := c.Expect(TokIdent)
	props := parsePropertyList(c)
	return &ast.DeclStructure{
		Header:     ast.Header{NodeRange: start.Range},
		Name:       name.Text,
		Properties: props,
	}
}

func parseUnion(c *Context) ast.Node {
	start, _ := c.ExpectKeyword("union")
	name, _ := c.Expect(TokIdent)
	props := parsePropertyList(c)
	return &ast.DeclUnion{
		Header:     ast.Header{NodeRange: start.Range},
		Name:       name.Text,
		Properties: props,
	}
}

func parsePropertyList(c *Context) []ast.Node {
	if _, ok := c.Expect(TokLBrace); !ok {
		return nil
	}
	var props []ast.Node
	for !c.At(TokRBrace) && !c.At(TokEOF) {
		props = append(props, parseProperty(c))
		if c.At(TokSemicolon) {
			c.Advance()
		}
	}
	c.Expect(TokRBrace)
	return props
}

func parseProperty(c *Context) ast.Node {
	var flags ast.PropertyFlags
	if c.At(TokDotDotDot) {
		c.Advance()
		flags |= ast.PropertySpread
	}
	name, _ := c.Expect(TokIdent)
	if c.At(TokQuestion) {
		c.Advance()
		flags |= ast.PropertyOptional
	} else {
		flags |= ast.PropertyNonOptional
	}
	c.Expect(TokColon)
	typ := parseType(c)
	return &ast.DeclProperty{Header: ast.Header{NodeRange: name.Range}, Flags: flags, Name: name.Text, Type: typ}
}

func parseInterface(c *Context) ast.Node {
	var flags ast.InterfaceFlags
	if c.AtKeyword("abstract") {
		c.Advance()
		flags |= ast.InterfaceAbstract
	}
	start, _ := c.ExpectKeyword("interface")
	name, _ := c.Expect(TokIdent)

	var extends []ast.Node
	if c.AtKeyword("extends") {
		c.Advance()
		for {
			sym, _ := c.Expect(TokIdent)
			extends = append(extends, &ast.TypeSymbol{Header: ast.Header{NodeRange: sym.Range}, Name: sym.Text})
			if !c.At(TokComma) {
				break
			}
			c.Advance()
		}
	}

	var members []ast.Node
	if _, ok := c.Expect(TokLBrace); ok {
		for !c.At(TokRBrace) && !c.At(TokEOF) {
			members = append(members, parseProperty(c))
			if c.At(TokSemicolon) {
				c.Advance()
			}
		}
		c.Expect(TokRBrace)
	}

	return &ast.DeclInterface{
		Header:  ast.Header{NodeRange: start.Range},
		Flags:   flags,
		Name:    name.Text,
		Extends: extends,
		Members: members,
	}
}

func parseFunction(c *Context) ast.Node {
	var flags ast.FunctionFlags
modifiers:
	for {
		switch {
		case c.AtKeyword("mut"):
			c.Advance()
			flags |= ast.FunctionMutable
		case c.AtKeyword("override"):
			c.Advance()
			flags |= ast.FunctionOverride
		default:
			break modifiers
		}
	}
	start, _ := c.ExpectKeyword("fn")
	name, _ := c.Expect(TokIdent)
	args := parseFunctionArguments(c)

	var ret ast.Node
	if c.At(TokArrow) {
		c.Advance()
		ret = parseType(c)
	} else {
		ret = &ast.TypeVoid{}
	}

	body := parseStatementBlock(c)

	return &ast.DeclFunction{
		Header:     ast.Header{NodeRange: start.Range},
		Flags:      flags,
		Name:       name.Text,
		Arguments:  args,
		ReturnType: ret,
		Body:       body,
	}
}

func parseFunctionArguments(c *Context) []ast.Node {
	if _, ok := c.Expect(TokLParen); !ok {
		return nil
	}
	var args []ast.Node
	for !c.At(TokRParen) && !c.At(TokEOF) {
		var flags ast.FunctionArgumentFlags
		if c.AtKeyword("keyword") {
			c.Advance()
			flags |= ast.FunctionArgumentKeyword
		}
		prop := parseProperty(c)
		var def ast.Node
		if c.At(TokAssign) {
			c.Advance()
			def = parseExpression(c)
		}
		args = append(args, &ast.DeclFunctionArgument{
			Header: ast.Header{NodeRange: prop.Range()}, Flags: flags, Property: prop, Default: def,
		})
		if !c.At(TokComma) {
			break
		}
		c.Advance()
	}
	c.Expect(TokRParen)
	return args
}

// parseAssignment parses a top-level or block-level `name: type = value;`
// declaration.
func parseAssignment(c *Context) ast.Node {
	prop := parseProperty(c)
	var value ast.Node
	if _, ok := c.Expect(TokAssign); ok {
		value = parseExpression(c)
	}
	if c.At(TokSemicolon) {
		c.Advance()
	}
	return &ast.DeclAssignment{Header: ast.Header{NodeRange: prop.Range()}, Property: prop, Value: value}
}

// parseType parses a primary, int, float, symbol, pointer, or array
// type reference.
func parseType(c *Context) ast.Node {
	t := c.Peek()
	switch {
	case t.IsKeyword("void"):
		c.Advance()
		return &ast.TypeVoid{Header: ast.Header{NodeRange: t.Range}}
	case t.IsKeyword("bool"):
		c.Advance()
		return &ast.TypeBool{Header: ast.Header{NodeRange: t.Range}}
	case t.Kind == TokKeyword && intTypeWidths[t.Text] != 0:
		c.Advance()
		w := intTypeWidths[t.Text]
		return &ast.TypeInt{Header: ast.Header{NodeRange: t.Range}, BitWidth: w, Unsigned: t.Text[0] == 'u'}
	case t.IsKeyword("f32"):
		c.Advance()
		return &ast.TypeFloat{Header: ast.Header{NodeRange: t.Range}, BitWidth: 32}
	case t.IsKeyword("f64"):
		c.Advance()
		return &ast.TypeFloat{Header: ast.Header{NodeRange: t.Range}, BitWidth: 64}
	case t.Kind == TokStar:
		c.Advance()
		constant := false
		if c.AtKeyword("const") {
			c.Advance()
			constant = true
		}
		pointee := parseType(c)
		return &ast.TypePointer{Header: ast.Header{NodeRange: t.Range}, Constant: constant, Pointee: pointee}
	case t.Kind == TokLBracket:
		c.Advance()
		lenTok, _ := c.Expect(TokIntLiteral)
		c.Expect(TokRBracket)
		elem := parseType(c)
		return &ast.TypeArray{Header: ast.Header{NodeRange: t.Range}, Length: int(lenTok.IntValue), Element: elem}
	case t.Kind == TokIdent:
		c.Advance()
		return &ast.TypeSymbol{Header: ast.Header{NodeRange: t.Range}, Name: t.Text}
	default:
		c.errorf(t.Range, "is-23", "expected a type, got %s %q", t.Kind, t.Text)
		return &ast.TypeVoid{Header: ast.Header{NodeRange: t.Range}}
	}
}

var intTypeWidths = map[string]int{
	"i8": 8, "i16": 16, "i32": 32, "i64": 64,
	"u8": 8, "u16": 16, "u32": 32, "u64": 64,
}

// parseStatementBlock parses a brace-delimited sequence of statements
// and declarations.
func parseStatementBlock(c *Context) *ast.StmtBlock {
	start, _ := c.Expect(TokLBrace)
	var children []ast.Node
	for !c.At(TokRBrace) && !c.At(TokEOF) {
		children = append(children, parseStatement(c))
	}
	c.Expect(TokRBrace)
	return &ast.StmtBlock{Header: ast.Header{NodeRange: start.Range}, Children: children}
}

func parseStatement(c *Context) ast.Node {
	t := c.Peek()
	switch {
	case t.IsKeyword("return"):
		c.Advance()
		var value ast.Node
		if !c.At(TokSemicolon) {
			value = parseExpression(c)
		}
		if c.At(TokSemicolon) {
			c.Advance()
		}
		return &ast.StmtReturn{Header: ast.Header{NodeRange: t.Range}, Value: value}

	case t.IsKeyword("if"):
		return parseIf(c)

	case t.IsKeyword("while"):
		c.Advance()
		cond := parseParenthesizedCondition(c)
		body := parseStatementBlock(c)
		return &ast.StmtWhile{Header: ast.Header{NodeRange: t.Range}, Condition: cond, Body: body}

	case t.Kind == TokLBrace:
		return parseStatementBlock(c)

	case t.Kind == TokIdent:
		return parseAssignmentOrExpressionStatement(c)

	default:
		c.errorf(t.Range, "is-24", "expected a statement, got %s %q", t.Kind, t.Text)
		c.synchronizeStatementBoundary()
		return &ast.StmtBlock{Header: ast.Header{NodeRange: t.Range}}
	}
}

// parseParenthesizedCondition requires a condition in if/while to be
// parenthesized: without it, a bare leading-identifier condition is
// syntactically indistinguishable from the start of a structure
// literal once it meets the following '{' (the statement body, not a
// literal's field list).
func parseParenthesizedCondition(c *Context) ast.Node {
	c.Expect(TokLParen)
	cond := parseExpression(c)
	c.Expect(TokRParen)
	return cond
}

func parseIf(c *Context) ast.Node {
	start, _ := c.ExpectKeyword("if")
	cond := parseParenthesizedCondition(c)
	body := parseStatementBlock(c)
	clauses := []ast.Node{&ast.StmtIfConditionalClause{Header: ast.Header{NodeRange: start.Range}, Condition: cond, Body: body}}

	var elseBody ast.Node
	for c.AtKeyword("else") {
		c.Advance()
		if c.AtKeyword("if") {
			ifStart, _ := c.ExpectKeyword("if")
			nextCond := parseParenthesizedCondition(c)
			nextBody := parseStatementBlock(c)
			clauses = append(clauses, &ast.StmtIfConditionalClause{
				Header: ast.Header{NodeRange: ifStart.Range}, Condition: nextCond, Body: nextBody,
			})
			continue
		}
		elseBody = parseStatementBlock(c)
		break
	}

	return &ast.StmtIf{Header: ast.Header{NodeRange: start.Range}, Clauses: clauses, ElseBody: elseBody}
}

// parseAssignmentOrExpressionStatement disambiguates `name: type [=
// value];` declarations from bare expression statements by looking
// ahead for the ':' that only a property declaration has.
func parseAssignmentOrExpressionStatement(c *Context) ast.Node {
	// A leading identifier followed by ':' is a declaration; anything
	// else is parsed as an expression statement (e.g. an assignment to
	// an existing symbol, or a bare call for side effects).
	ident := c.Peek()
	if isDeclarationLookahead(c) {
		return parseAssignment(c)
	}
	_ = ident
	expr := parseExpression(c)
	if c.At(TokAssign) {
		c.Advance()
		rhs := parseExpression(c)
		if c.At(TokSemicolon) {
			c.Advance()
		}
		return &ast.DeclAssignment{
			Header:   ast.Header{NodeRange: expr.Range()},
			Property: &ast.DeclProperty{Header: ast.Header{NodeRange: expr.Range()}, Name: exprSymbolName(expr)},
			Value:    rhs,
		}
	}
	if c.At(TokSemicolon) {
		c.Advance()
	}
	return expr
}

func exprSymbolName(n ast.Node) string {
	if sym, ok := n.(*ast.ValueSymbol); ok {
		return sym.Name
	}
	return ""
}

// isDeclarationLookahead peeks past the current identifier to check
// for a following ':' without consuming anything, using the
// underlying reader's Save/Restore (the lookahead token itself is
// saved and restored alongside it, since Advance discards it).
func isDeclarationLookahead(c *Context) bool {
	if c.Peek().Kind != TokIdent {
		return false
	}
	snap := c.lexer.r.Save()
	savedTok, savedTokOK := c.tok, c.tokOK

	c.Advance()
	isDecl := c.At(TokColon)

	c.lexer.r.Restore(snap)
	c.tok, c.tokOK = savedTok, savedTokOK
	return isDecl
}
