package ast

import "strconv"

// Value variants: the expression forms of the language.

// ValueBool is a boolean literal.
type ValueBool struct {
	Header
	Lit bool
}

func (n *ValueBool) Kind() Kind       { return KindValueBool }
func (n *ValueBool) Clone() Node      { return &ValueBool{Header: n.Header, Lit: n.Lit} }
func (n *ValueBool) DebugPrint(p *Printer) { p.Prop("value", n.Lit) }
func (n *ValueBool) FormatPrint(p *Printer) {
	if n.Lit {
		p.Raw("true")
	} else {
		p.Raw("false")
	}
}
func (n *ValueBool) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// ValueInt is an integer literal whose Type names its resolved width
// and signedness (the lexical suffix, or a contextual default).
type ValueInt struct {
	Header
	Value uint64
	Type  Node // a *TypeInt
}

func (n *ValueInt) Kind() Kind { return KindValueInt }
func (n *ValueInt) Clone() Node {
	return &ValueInt{Header: n.Header, Value: n.Value, Type: cloneOrNil(n.Type)}
}
func (n *ValueInt) DebugPrint(p *Printer) {
	p.Prop("value", n.Value)
	p.PropNode("type", n.Type)
}
func (n *ValueInt) FormatPrint(p *Printer) {
	p.Raw(strconv.FormatUint(n.Value, 10))
}
func (n *ValueInt) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Type, next)
	})
}

// ValueFloat is a floating-point literal.
type ValueFloat struct {
	Header
	Value float64
	Type  Node // a *TypeFloat
}

func (n *ValueFloat) Kind() Kind { return KindValueFloat }
func (n *ValueFloat) Clone() Node {
	return &ValueFloat{Header: n.Header, Value: n.Value, Type: cloneOrNil(n.Type)}
}
func (n *ValueFloat) DebugPrint(p *Printer) {
	p.Prop("value", n.Value)
	p.PropNode("type", n.Type)
}
func (n *ValueFloat) FormatPrint(p *Printer) {
	p.Raw(strconv.FormatFloat(n.Value, 'g', -1, 64))
}
func (n *ValueFloat) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Type, next)
	})
}

// ValueCharacter is a character literal; its resolved type is always
// u32.
type ValueCharacter struct {
	Header
	Codepoint rune
}

func (n *ValueCharacter) Kind() Kind  { return KindValueCharacter }
func (n *ValueCharacter) Clone() Node { return &ValueCharacter{Header: n.Header, Codepoint: n.Codepoint} }
func (n *ValueCharacter) DebugPrint(p *Printer) {
	p.Prop("codepoint", int(n.Codepoint))
}
func (n *ValueCharacter) FormatPrint(p *Printer) {
	p.Raw(strconv.QuoteRune(n.Codepoint))
}
func (n *ValueCharacter) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// ValueString is a string literal; its resolved type is always
// pointer(u8, constant).
type ValueString struct {
	Header
	Bytes []byte
}

func (n *ValueString) Kind() Kind { return KindValueString }
func (n *ValueString) Clone() Node {
	return &ValueString{Header: n.Header, Bytes: append([]byte(nil), n.Bytes...)}
}
func (n *ValueString) DebugPrint(p *Printer) {
	p.Prop("bytes", strconv.Quote(string(n.Bytes)))
}
func (n *ValueString) FormatPrint(p *Printer) {
	p.Raw(strconv.Quote(string(n.Bytes)))
}
func (n *ValueString) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// ValueArray is a fixed-length array literal with explicit elements.
type ValueArray struct {
	Header
	Elements []Node
}

func (n *ValueArray) Kind() Kind { return KindValueArray }
func (n *ValueArray) Clone() Node {
	return &ValueArray{Header: n.Header, Elements: CloneSlice(n.Elements)}
}
func (n *ValueArray) DebugPrint(p *Printer) {
	PropNodeList(p, "elements", n.Elements)
}
func (n *ValueArray) FormatPrint(p *Printer) {
	p.Raw("[")
	for i, e := range n.Elements {
		if i > 0 {
			p.Raw(", ")
		}
		e.FormatPrint(p)
	}
	p.Raw("]")
}
func (n *ValueArray) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChildren(v, n.Elements, next)
	})
}

// ValueArrayRepeated is an array literal of Count copies of Element.
type ValueArrayRepeated struct {
	Header
	Element Node
	Count   int
}

func (n *ValueArrayRepeated) Kind() Kind { return KindValueArrayRepeated }
func (n *ValueArrayRepeated) Clone() Node {
	return &ValueArrayRepeated{Header: n.Header, Element: cloneOrNil(n.Element), Count: n.Count}
}
func (n *ValueArrayRepeated) DebugPrint(p *Printer) {
	p.PropNode("element", n.Element)
	p.Prop("count", n.Count)
}
func (n *ValueArrayRepeated) FormatPrint(p *Printer) {
	p.Raw("[")
	if n.Element != nil {
		n.Element.FormatPrint(p)
	}
	p.Raw("; ")
	p.Raw(strconv.Itoa(n.Count))
	p.Raw("]")
}
func (n *ValueArrayRepeated) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Element, next)
	})
}

// ValueStructure is a structure literal: field values keyed by the
// structure's property declaration order.
type ValueStructure struct {
	Header
	TypeName string
	Fields   []Node // each a *ValueCallKeywordArgument
}

func (n *ValueStructure) Kind() Kind { return KindValueStructure }
func (n *ValueStructure) Clone() Node {
	return &ValueStructure{Header: n.Header, TypeName: n.TypeName, Fields: CloneSlice(n.Fields)}
}
func (n *ValueStructure) DebugPrint(p *Printer) {
	p.Prop("type_name", n.TypeName)
	PropNodeList(p, "fields", n.Fields)
}
func (n *ValueStructure) FormatPrint(p *Printer) {
	p.Raw(n.TypeName)
	p.Raw(" { ")
	for i, f := range n.Fields {
		if i > 0 {
			p.Raw(", ")
		}
		f.FormatPrint(p)
	}
	p.Raw(" }")
}
func (n *ValueStructure) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChildren(v, n.Fields, next)
	})
}

// ValueSymbol is an unresolved named reference (a variable, function,
// or constant name), resolved against scope during verification.
type ValueSymbol struct {
	Header
	Name string
}

func (n *ValueSymbol) Kind() Kind  { return KindValueSymbol }
func (n *ValueSymbol) Clone() Node { return &ValueSymbol{Header: n.Header, Name: n.Name} }
func (n *ValueSymbol) DebugPrint(p *Printer) {
	p.Prop("name", n.Name)
}
func (n *ValueSymbol) FormatPrint(p *Printer) { p.Raw(n.Name) }
func (n *ValueSymbol) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// ValueCall invokes Callee with positional and keyword arguments.
type ValueCall struct {
	Header
	Callee     Node
	Positional []Node
	Keyword    []Node // each a *ValueCallKeywordArgument
}

func (n *ValueCall) Kind() Kind { return KindValueCall }
func (n *ValueCall) Clone() Node {
	return &ValueCall{
		Header:     n.Header,
		Callee:     cloneOrNil(n.Callee),
		Positional: CloneSlice(n.Positional),
		Keyword:    CloneSlice(n.Keyword),
	}
}
func (n *ValueCall) DebugPrint(p *Printer) {
	p.PropNode("callee", n.Callee)
	PropNodeList(p, "positional", n.Positional)
	PropNodeList(p, "keyword", n.Keyword)
}
func (n *ValueCall) FormatPrint(p *Printer) {
	if n.Callee != nil {
		n.Callee.FormatPrint(p)
	}
	p.Raw("(")
	for i, a := range n.Positional {
		if i > 0 {
			p.Raw(", ")
		}
		a.FormatPrint(p)
	}
	for i, a := range n.Keyword {
		if i > 0 || len(n.Positional) > 0 {
			p.Raw(", ")
		}
		a.FormatPrint(p)
	}
	p.Raw(")")
}
func (n *ValueCall) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChild(v, &n.Callee, next); status == StatusStop {
			return status
		}
		if status := acceptChildren(v, n.Positional, next); status == StatusStop {
			return status
		}
		return acceptChildren(v, n.Keyword, next)
	})
}

// ValueCallKeywordArgument is one `name: value` argument of a call or
// structure literal.
type ValueCallKeywordArgument struct {
	Header
	Name  string
	Value Node
}

func (n *ValueCallKeywordArgument) Kind() Kind { return KindValueCallKeywordArgument }
func (n *ValueCallKeywordArgument) Clone() Node {
	return &ValueCallKeywordArgument{Header: n.Header, Name: n.Name, Value: cloneOrNil(n.Value)}
}
func (n *ValueCallKeywordArgument) DebugPrint(p *Printer) {
	p.Prop("name", n.Name)
	p.PropNode("value", n.Value)
}
func (n *ValueCallKeywordArgument) FormatPrint(p *Printer) {
	p.Raw(n.Name)
	p.Raw(": ")
	if n.Value != nil {
		n.Value.FormatPrint(p)
	}
}
func (n *ValueCallKeywordArgument) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Value, next)
	})
}

// ValueCast converts Value to TargetType.
type ValueCast struct {
	Header
	Value      Node
	TargetType Node
}

func (n *ValueCast) Kind() Kind { return KindValueCast }
func (n *ValueCast) Clone() Node {
	return &ValueCast{Header: n.Header, Value: cloneOrNil(n.Value), TargetType: cloneOrNil(n.TargetType)}
}
func (n *ValueCast) DebugPrint(p *Printer) {
	p.PropNode("value", n.Value)
	p.PropNode("target_type", n.TargetType)
}
func (n *ValueCast) FormatPrint(p *Printer) {
	p.Raw("(")
	if n.TargetType != nil {
		n.TargetType.FormatPrint(p)
	}
	p.Raw(")")
	if n.Value != nil {
		n.Value.FormatPrint(p)
	}
}
func (n *ValueCast) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChild(v, &n.Value, next); status == StatusStop {
			return status
		}
		return acceptChild(v, &n.TargetType, next)
	})
}

// ValueUnary applies Operator to Operand: logical-not or bitwise-not.
type ValueUnary struct {
	Header
	Operator Operator
	Operand  Node
}

func (n *ValueUnary) Kind() Kind { return KindValueUnary }
func (n *ValueUnary) Clone() Node {
	return &ValueUnary{Header: n.Header, Operator: n.Operator, Operand: cloneOrNil(n.Operand)}
}
func (n *ValueUnary) DebugPrint(p *Printer) {
	p.Prop("operator", n.Operator)
	p.PropNode("operand", n.Operand)
}
func (n *ValueUnary) FormatPrint(p *Printer) {
	p.Raw(n.Operator.String())
	if n.Operand != nil {
		n.Operand.FormatPrint(p)
	}
}
func (n *ValueUnary) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Operand, next)
	})
}

// ValueBinary applies Operator to Left and Right: arithmetic,
// comparison, logical, or bitwise.
type ValueBinary struct {
	Header
	Operator Operator
	Left     Node
	Right    Node
}

func (n *ValueBinary) Kind() Kind { return KindValueBinary }
func (n *ValueBinary) Clone() Node {
	return &ValueBinary{
		Header:   n.Header,
		Operator: n.Operator,
		Left:     cloneOrNil(n.Left),
		Right:    cloneOrNil(n.Right),
	}
}
func (n *ValueBinary) DebugPrint(p *Printer) {
	p.Prop("operator", n.Operator)
	p.PropNode("left", n.Left)
	p.PropNode("right", n.Right)
}
func (n *ValueBinary) FormatPrint(p *Printer) {
	if n.Left != nil {
		n.Left.FormatPrint(p)
	}
	p.Raw(" ")
	p.Raw(n.Operator.String())
	p.Raw(" ")
	if n.Right != nil {
		n.Right.FormatPrint(p)
	}
}
func (n *ValueBinary) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChild(v, &n.Left, next); status == StatusStop {
			return status
		}
		return acceptChild(v, &n.Right, next)
	})
}

// ValueAccess reads Member off Object (struct field, not a symbolic
// operator).
type ValueAccess struct {
	Header
	Object Node
	Member string
}

func (n *ValueAccess) Kind() Kind { return KindValueAccess }
func (n *ValueAccess) Clone() Node {
	return &ValueAccess{Header: n.Header, Object: cloneOrNil(n.Object), Member: n.Member}
}
func (n *ValueAccess) DebugPrint(p *Printer) {
	p.PropNode("object", n.Object)
	p.Prop("member", n.Member)
}
func (n *ValueAccess) FormatPrint(p *Printer) {
	if n.Object != nil {
		n.Object.FormatPrint(p)
	}
	p.Raw(".")
	p.Raw(n.Member)
}
func (n *ValueAccess) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Object, next)
	})
}

// ValueDereference reads through Pointer.
type ValueDereference struct {
	Header
	Pointer Node
}

func (n *ValueDereference) Kind() Kind { return KindValueDereference }
func (n *ValueDereference) Clone() Node {
	return &ValueDereference{Header: n.Header, Pointer: cloneOrNil(n.Pointer)}
}
func (n *ValueDereference) DebugPrint(p *Printer) {
	p.PropNode("pointer", n.Pointer)
}
func (n *ValueDereference) FormatPrint(p *Printer) {
	p.Raw("*")
	if n.Pointer != nil {
		n.Pointer.FormatPrint(p)
	}
}
func (n *ValueDereference) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Pointer, next)
	})
}

// ValueGetAddress takes the address of Lvalue.
type ValueGetAddress struct {
	Header
	Lvalue Node
}

func (n *ValueGetAddress) Kind() Kind { return KindValueGetAddress }
func (n *ValueGetAddress) Clone() Node {
	return &ValueGetAddress{Header: n.Header, Lvalue: cloneOrNil(n.Lvalue)}
}
func (n *ValueGetAddress) DebugPrint(p *Printer) {
	p.PropNode("lvalue", n.Lvalue)
}
func (n *ValueGetAddress) FormatPrint(p *Printer) {
	p.Raw("&")
	if n.Lvalue != nil {
		n.Lvalue.FormatPrint(p)
	}
}
func (n *ValueGetAddress) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Lvalue, next)
	})
}
