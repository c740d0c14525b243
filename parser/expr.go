package parser

import "github.com/viant/forge/ast"

// parseExpression parses a full expression via precedence climbing,
// binding loosest (logical or) first.
func parseExpression(c *Context) ast.Node {
	return parseLogicalOr(c)
}

func parseLogicalOr(c *Context) ast.Node {
	left := parseLogicalAnd(c)
	for c.At(TokOrOr) {
		op := c.Advance()
		right := parseLogicalAnd(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: op.Range}, Operator: ast.OpLogicalOr, Left: left, Right: right}
	}
	return left
}

func parseLogicalAnd(c *Context) ast.Node {
	left := parseEquality(c)
	for c.At(TokAndAnd) {
		op := c.Advance()
		right := parseEquality(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: op.Range}, Operator: ast.OpLogicalAnd, Left: left, Right: right}
	}
	return left
}

var equalityOps = map[TokenKind]ast.Operator{TokEqualEqual: ast.OpEqual, TokNotEqual: ast.OpNotEqual}

func parseEquality(c *Context) ast.Node {
	left := parseRelational(c)
	for {
		op, ok := equalityOps[c.Peek().Kind]
		if !ok {
			return left
		}
		t := c.Advance()
		right := parseRelational(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: op, Left: left, Right: right}
	}
}

var relationalOps = map[TokenKind]ast.Operator{
	TokLess: ast.OpLess, TokLessEqual: ast.OpLessEqual,
	TokGreater: ast.OpGreater, TokGreaterEqual: ast.OpGreaterEqual,
}

func parseRelational(c *Context) ast.Node {
	left := parseBitwiseOr(c)
	for {
		op, ok := relationalOps[c.Peek().Kind]
		if !ok {
			return left
		}
		t := c.Advance()
		right := parseBitwiseOr(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: op, Left: left, Right: right}
	}
}

func parseBitwiseOr(c *Context) ast.Node {
	left := parseBitwiseXor(c)
	for c.At(TokPipe) {
		t := c.Advance()
		right := parseBitwiseXor(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: ast.OpBitOr, Left: left, Right: right}
	}
	return left
}

func parseBitwiseXor(c *Context) ast.Node {
	left := parseBitwiseAnd(c)
	for c.At(TokCaret) {
		t := c.Advance()
		right := parseBitwiseAnd(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: ast.OpBitXor, Left: left, Right: right}
	}
	return left
}

func parseBitwiseAnd(c *Context) ast.Node {
	left := parseShift(c)
	for c.At(TokAmp) {
		t := c.Advance()
		right := parseShift(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: ast.OpBitAnd, Left: left, Right: right}
	}
	return left
}

var shiftOps = map[TokenKind]ast.Operator{TokShiftLeft: ast.OpShiftLeft, TokShiftRight: ast.OpShiftRight}

func parseShift(c *Context) ast.Node {
	left := parseAdditive(c)
	for {
		op, ok := shiftOps[c.Peek().Kind]
		if !ok {
			return left
		}
		t := c.Advance()
		right := parseAdditive(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: op, Left: left, Right: right}
	}
}

var additiveOps = map[TokenKind]ast.Operator{TokPlus: ast.OpAdd, TokMinus: ast.OpSub}

func parseAdditive(c *Context) ast.Node {
	left := parseMultiplicative(c)
	for {
		op, ok := additiveOps[c.Peek().Kind]
		if !ok {
			return left
		}
		t := c.Advance()
		right := parseMultiplicative(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: op, Left: left, Right: right}
	}
}

var multiplicativeOps = map[TokenKind]ast.Operator{TokStar: ast.OpMul, TokSlash: ast.OpDiv, TokPercent: ast.OpMod}

func parseMultiplicative(c *Context) ast.Node {
	left := parseUnary(c)
	for {
		op, ok := multiplicativeOps[c.Peek().Kind]
		if !ok {
			return left
		}
		t := c.Advance()
		right := parseUnary(c)
		left = &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: op, Left: left, Right: right}
	}
}

func parseUnary(c *Context) ast.Node {
	t := c.Peek()
	switch t.Kind {
	case TokBang:
		c.Advance()
		return &ast.ValueUnary{Header: ast.Header{NodeRange: t.Range}, Operator: ast.OpLogicalNot, Operand: parseUnary(c)}
	case TokTilde:
		c.Advance()
		return &ast.ValueUnary{Header: ast.Header{NodeRange: t.Range}, Operator: ast.OpBitNot, Operand: parseUnary(c)}
	case TokMinus:
		c.Advance()
		zero := &ast.ValueInt{Header: ast.Header{NodeRange: t.Range}, Value: 0, Type: &ast.TypeInt{BitWidth: 32}}
		return &ast.ValueBinary{Header: ast.Header{NodeRange: t.Range}, Operator: ast.OpSub, Left: zero, Right: parseUnary(c)}
	case TokStar:
		c.Advance()
		return &ast.ValueDereference{Header: ast.Header{NodeRange: t.Range}, Pointer: parseUnary(c)}
	case TokAmp:
		c.Advance()
		return &ast.ValueGetAddress{Header: ast.Header{NodeRange: t.Range}, Lvalue: parseUnary(c)}
	case TokLParen:
		if isCastLookahead(c) {
			c.Advance()
			target := parseType(c)
			c.Expect(TokRParen)
			return &ast.ValueCast{Header: ast.Header{NodeRange: t.Range}, Value: parseUnary(c), TargetType: target}
		}
	}
	return parsePostfix(c)
}

// isCastLookahead peeks past "( Type )" to see whether what follows
// can start an expression, disambiguating a cast from a parenthesized
// expression without backtracking the caller's cursor.
func isCastLookahead(c *Context) bool {
	if c.Peek().Kind != TokLParen {
		return false
	}
	snap := c.lexer.r.Save()
	savedTok, savedTokOK := c.tok, c.tokOK
	defer func() {
		c.lexer.r.Restore(snap)
		c.tok, c.tokOK = savedTok, savedTokOK
	}()

	c.Advance() // '('
	if !isTypeStartToken(c.Peek()) {
		return false
	}
	parseType(c)
	if !c.At(TokRParen) {
		return false
	}
	c.Advance() // ')'
	return isExpressionStartToken(c.Peek())
}

func isTypeStartToken(t Token) bool {
	switch {
	case t.Kind == TokIdent, t.Kind == TokStar, t.Kind == TokLBracket:
		return true
	case t.IsKeyword("void"), t.IsKeyword("bool"):
		return true
	case t.Kind == TokKeyword && intTypeWidths[t.Text] != 0:
		return true
	case t.IsKeyword("f32"), t.IsKeyword("f64"):
		return true
	default:
		return false
	}
}

func isExpressionStartToken(t Token) bool {
	switch t.Kind {
	case TokIdent, TokIntLiteral, TokFloatLiteral, TokCharLiteral, TokStringLiteral,
		TokLParen, TokBang, TokTilde, TokMinus, TokStar, TokAmp, TokLBracket:
		return true
	}
	return t.IsKeyword("true") || t.IsKeyword("false")
}

func parsePostfix(c *Context) ast.Node {
	expr := parsePrimary(c)
	for {
		switch {
		case c.At(TokDot):
			c.Advance()
			member, _ := c.Expect(TokIdent)
			expr = &ast.ValueAccess{Header: ast.Header{NodeRange: member.Range}, Object: expr, Member: member.Text}
		case c.At(TokLParen):
			expr = parseCall(c, expr)
		default:
			return expr
		}
	}
}

func parseCall(c *Context, callee ast.Node) ast.Node {
	start, _ := c.Expect(TokLParen)
	var positional []ast.Node
	var keyword []ast.Node
	for !c.At(TokRParen) && !c.At(TokEOF) {
		if c.At(TokIdent) && isCallKeywordLookahead(c) {
			name, _ := c.Expect(TokIdent)
			c.Expect(TokColon)
			value := parseExpression(c)
			keyword = append(keyword, &ast.ValueCallKeywordArgument{Header: ast.Header{NodeRange: name.Range}, Name: name.Text, Value: value})
		} else {
			positional = append(positional, parseExpression(c))
		}
		if !c.At(TokComma) {
			break
		}
		c.Advance()
	}
	c.Expect(TokRParen)
	return &ast.ValueCall{Header: ast.Header{NodeRange: start.Range}, Callee: callee, Positional: positional, Keyword: keyword}
}

func isCallKeywordLookahead(c *Context) bool {
	snap := c.lexer.r.Save()
	savedTok, savedTokOK := c.tok, c.tokOK
	defer func() {
		c.lexer.r.Restore(snap)
		c.tok, c.tokOK = savedTok, savedTokOK
	}()
	c.Advance()
	return c.At(TokColon)
}

func parsePrimary(c *Context) ast.Node {
	t := c.Peek()
	switch {
	case t.IsKeyword("true"):
		c.Advance()
		return &ast.ValueBool{Header: ast.Header{NodeRange: t.Range}, Lit: true}
	case t.IsKeyword("false"):
		c.Advance()
		return &ast.ValueBool{Header: ast.Header{NodeRange: t.Range}, Lit: false}
	case t.Kind == TokIntLiteral:
		c.Advance()
		return &ast.ValueInt{
			Header: ast.Header{NodeRange: t.Range}, Value: t.IntValue,
			Type: &ast.TypeInt{BitWidth: t.IntWidth, Unsigned: t.IntUnsigned},
		}
	case t.Kind == TokFloatLiteral:
		c.Advance()
		return &ast.ValueFloat{Header: ast.Header{NodeRange: t.Range}, Value: t.FloatValue, Type: &ast.TypeFloat{BitWidth: t.FloatWidth}}
	case t.Kind == TokCharLiteral:
		c.Advance()
		return &ast.ValueCharacter{Header: ast.Header{NodeRange: t.Range}, Codepoint: t.CharValue}
	case t.Kind == TokStringLiteral:
		c.Advance()
		return &ast.ValueString{Header: ast.Header{NodeRange: t.Range}, Bytes: t.StringValue}
	case t.Kind == TokLBracket:
		return parseArrayLiteral(c)
	case t.Kind == TokIdent:
		return parseIdentOrStructureLiteral(c)
	case t.Kind == TokLParen:
		c.Advance()
		inner := parseExpression(c)
		c.Expect(TokRParen)
		return inner
	default:
		c.errorf(t.Range, "is-25", "expected an expression, got %s %q", t.Kind, t.Text)
		c.Advance()
		return &ast.ValueBool{Header: ast.Header{NodeRange: t.Range}, Lit: false}
	}
}

func parseArrayLiteral(c *Context) ast.Node {
	start, _ := c.Expect(TokLBracket)
	if c.At(TokRBracket) {
		c.Advance()
		return &ast.ValueArray{Header: ast.Header{NodeRange: start.Range}}
	}
	first := parseExpression(c)
	if c.At(TokSemicolon) {
		c.Advance()
		countTok, _ := c.Expect(TokIntLiteral)
		c.Expect(TokRBracket)
		return &ast.ValueArrayRepeated{Header: ast.Header{NodeRange: start.Range}, Element: first, Count: int(countTok.IntValue)}
	}
	elements := []ast.Node{first}
	for c.At(TokComma) {
		c.Advance()
		if c.At(TokRBracket) {
			break
		}
		elements = append(elements, parseExpression(c))
	}
	c.Expect(TokRBracket)
	return &ast.ValueArray{Header: ast.Header{NodeRange: start.Range}, Elements: elements}
}

// parseIdentOrStructureLiteral disambiguates a bare symbol reference
// from a `TypeName { field: value, ... }` structure literal by peeking
// for a following '{'.
func parseIdentOrStructureLiteral(c *Context) ast.Node {
	name, _ := c.Expect(TokIdent)
	if c.At(TokLBrace) {
		c.Advance()
		var fields []ast.Node
		for !c.At(TokRBrace) && !c.At(TokEOF) {
			fieldName, _ := c.Expect(TokIdent)
			c.Expect(TokColon)
			value := parseExpression(c)
			fields = append(fields, &ast.ValueCallKeywordArgument{
				Header: ast.Header{NodeRange: fieldName.Range}, Name: fieldName.Text, Value: value,
			})
			if !c.At(TokComma) {
				break
			}
			c.Advance()
		}
		c.Expect(TokRBrace)
		return &ast.ValueStructure{Header: ast.Header{NodeRange: name.Range}, TypeName: name.Text, Fields: fields}
	}
	return &ast.ValueSymbol{Header: ast.Header{NodeRange: name.Range}, Name: name.Text}
}
