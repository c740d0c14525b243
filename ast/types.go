package ast

import "strconv"

// Type variants. Every Type field on a
// declaration or value node is typed as the Node interface rather
// than a concrete pointer so that an absent/null child can always be
// represented by a genuine nil interface value instead of a typed nil
// pointer boxed in an interface (which compares unequal to nil and
// would silently defeat every "is this child present" check
// throughout the package).

// TypeVoid is the "void" primary type.
type TypeVoid struct {
	Header
}

func (n *TypeVoid) Kind() Kind { return KindTypeVoid }
func (n *TypeVoid) Clone() Node {
	return &TypeVoid{Header: n.Header}
}
func (n *TypeVoid) DebugPrint(p *Printer) {}
func (n *TypeVoid) FormatPrint(p *Printer) { p.Raw("void") }
func (n *TypeVoid) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// TypeBool is the "bool" primary type.
type TypeBool struct {
	Header
}

func (n *TypeBool) Kind() Kind { return KindTypeBool }
func (n *TypeBool) Clone() Node {
	return &TypeBool{Header: n.Header}
}
func (n *TypeBool) DebugPrint(p *Printer) {}
func (n *TypeBool) FormatPrint(p *Printer) { p.Raw("bool") }
func (n *TypeBool) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// TypeInt is an integer type of a given bit width, optionally
// unsigned. BitWidth must be one of 8, 16, 32, 64.
type TypeInt struct {
	Header
	BitWidth int
	Unsigned bool
}

func (n *TypeInt) Kind() Kind { return KindTypeInt }
func (n *TypeInt) Clone() Node {
	return &TypeInt{Header: n.Header, BitWidth: n.BitWidth, Unsigned: n.Unsigned}
}
func (n *TypeInt) DebugPrint(p *Printer) {
	p.Prop("bit_width", n.BitWidth)
	p.Prop("unsigned", n.Unsigned)
}
func (n *TypeInt) FormatPrint(p *Printer) {
	prefix := "i"
	if n.Unsigned {
		prefix = "u"
	}
	p.Raw(prefix)
	p.Raw(strconv.Itoa(n.BitWidth))
}
func (n *TypeInt) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// TypeFloat is a floating-point type of a given bit width (32 or 64).
type TypeFloat struct {
	Header
	BitWidth int
}

func (n *TypeFloat) Kind() Kind { return KindTypeFloat }
func (n *TypeFloat) Clone() Node {
	return &TypeFloat{Header: n.Header, BitWidth: n.BitWidth}
}
func (n *TypeFloat) DebugPrint(p *Printer) {
	p.Prop("bit_width", n.BitWidth)
}
func (n *TypeFloat) FormatPrint(p *Printer) {
	p.Raw("f")
	p.Raw(strconv.Itoa(n.BitWidth))
}
func (n *TypeFloat) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// TypeSymbol is an unresolved named type reference, resolved against
// scope during verification.
type TypeSymbol struct {
	Header
	Name string
}

func (n *TypeSymbol) Kind() Kind { return KindTypeSymbol }
func (n *TypeSymbol) Clone() Node {
	return &TypeSymbol{Header: n.Header, Name: n.Name}
}
func (n *TypeSymbol) DebugPrint(p *Printer) {
	p.Prop("name", n.Name)
}
func (n *TypeSymbol) FormatPrint(p *Printer) { p.Raw(n.Name) }
func (n *TypeSymbol) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptLeaf(v, &self, parents)
}

// TypePointer is a pointer to Pointee, optionally const and/or
// implicitly-dereferencing.
type TypePointer struct {
	Header
	Constant            bool
	ImplicitDereference bool
	Pointee             Node
}

func (n *TypePointer) Kind() Kind { return KindTypePointer }
func (n *TypePointer) Clone() Node {
	return &TypePointer{
		Header:              n.Header,
		Constant:            n.Constant,
		ImplicitDereference: n.ImplicitDereference,
		Pointee:             cloneOrNil(n.Pointee),
	}
}
func (n *TypePointer) DebugPrint(p *Printer) {
	p.Prop("constant", n.Constant)
	p.Prop("implicit_dereference", n.ImplicitDereference)
	p.PropNode("pointee", n.Pointee)
}
func (n *TypePointer) FormatPrint(p *Printer) {
	p.Raw("*")
	if n.Constant {
		p.Raw("const ")
	}
	if n.Pointee != nil {
		n.Pointee.FormatPrint(p)
	}
}
func (n *TypePointer) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Pointee, next)
	})
}

// TypeArray is a fixed-length array of Element.
type TypeArray struct {
	Header
	Length  int
	Element Node
}

func (n *TypeArray) Kind() Kind { return KindTypeArray }
func (n *TypeArray) Clone() Node {
	return &TypeArray{Header: n.Header, Length: n.Length, Element: cloneOrNil(n.Element)}
}
func (n *TypeArray) DebugPrint(p *Printer) {
	p.Prop("length", n.Length)
	p.PropNode("element", n.Element)
}
func (n *TypeArray) FormatPrint(p *Printer) {
	p.Raw("[")
	p.Raw(strconv.Itoa(n.Length))
	p.Raw("]")
	if n.Element != nil {
		n.Element.FormatPrint(p)
	}
}
func (n *TypeArray) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Element, next)
	})
}

// TypeFunction is a function signature: positional argument types,
// an optional variadic-positional element type, an optional
// variadic-keyword element type, and a return type.
type TypeFunction struct {
	Header
	Positional        []Node
	VariadicPositional Node // nil if the signature has none
	VariadicKeyword    Node // nil if the signature has none
	Return             Node
}

func (n *TypeFunction) Kind() Kind { return KindTypeFunction }
func (n *TypeFunction) Clone() Node {
	return &TypeFunction{
		Header:             n.Header,
		Positional:         CloneSlice(n.Positional),
		VariadicPositional: cloneOrNil(n.VariadicPositional),
		VariadicKeyword:    cloneOrNil(n.VariadicKeyword),
		Return:             cloneOrNil(n.Return),
	}
}
func (n *TypeFunction) DebugPrint(p *Printer) {
	PropNodeList(p, "positional", n.Positional)
	p.PropNode("variadic_positional", n.VariadicPositional)
	p.PropNode("variadic_keyword", n.VariadicKeyword)
	p.PropNode("return", n.Return)
}
func (n *TypeFunction) FormatPrint(p *Printer) {
	p.Raw("(")
	for i, arg := range n.Positional {
		if i > 0 {
			p.Raw(", ")
		}
		arg.FormatPrint(p)
	}
	p.Raw(") -> ")
	if n.Return != nil {
		n.Return.FormatPrint(p)
	}
}
func (n *TypeFunction) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChildren(v, n.Positional, next); status == StatusStop {
			return status
		}
		if status := acceptChild(v, &n.VariadicPositional, next); status == StatusStop {
			return status
		}
		if status := acceptChild(v, &n.VariadicKeyword, next); status == StatusStop {
			return status
		}
		return acceptChild(v, &n.Return, next)
	})
}

