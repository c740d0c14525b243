package ast

// Declaration variants. Each one exposes a
// canonical declaration name via DeclarationName (declname.go), used
// for insertion into a Scope frame.

// DeclUnion declares a tagged union of named properties.
type DeclUnion struct {
	Header
	Name       string
	Properties []Node // each a *DeclProperty
}

func (n *DeclUnion) Kind() Kind { return KindDeclUnion }
func (n *DeclUnion) Clone() Node {
	return &DeclUnion{Header: n.Header, Name: n.Name, Properties: CloneSlice(n.Properties)}
}
func (n *DeclUnion) DebugPrint(p *Printer) {
	p.Prop("name", n.Name)
	PropNodeList(p, "properties", n.Properties)
}
func (n *DeclUnion) FormatPrint(p *Printer) {
	p.Raw("union " + n.Name + " {\n")
	for _, prop := range n.Properties {
		prop.FormatPrint(p)
		p.Raw(";\n")
	}
	p.Raw("}")
}
func (n *DeclUnion) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChildren(v, n.Properties, next)
	})
}

// DeclStructure declares a product type of named properties.
type DeclStructure struct {
	Header
	Name       string
	Properties []Node // each a *DeclProperty
}

func (n *DeclStructure) Kind() Kind { return KindDeclStructure }
func (n *DeclStructure) Clone() Node {
	return &DeclStructure{Header: n.Header, Name: n.Name, Properties: CloneSlice(n.Properties)}
}
func (n *DeclStructure) DebugPrint(p *Printer) {
	p.Prop("name", n.Name)
	PropNodeList(p, "properties", n.Properties)
}
func (n *DeclStructure) FormatPrint(p *Printer) {
	p.Raw("struct " + n.Name + " {\n")
	for _, prop := range n.Properties {
		prop.FormatPrint(p)
		p.Raw(";\n")
	}
	p.Raw("}")
}
func (n *DeclStructure) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChildren(v, n.Properties, next)
	})
}

// PropertyFlags are the flag bits on a DeclProperty.
type PropertyFlags int

const (
	PropertyOptional PropertyFlags = 1 << iota
	PropertyNonOptional
	PropertySpread
)

// DeclProperty declares one struct/union/interface member.
type DeclProperty struct {
	Header
	Flags PropertyFlags
	Name  string
	Type  Node
}

func (n *DeclProperty) Kind() Kind { return KindDeclProperty }
func (n *DeclProperty) Clone() Node {
	return &DeclProperty{Header: n.Header, Flags: n.Flags, Name: n.Name, Type: cloneOrNil(n.Type)}
}
func (n *DeclProperty) DebugPrint(p *Printer) {
	p.Prop("flags", n.Flags)
	p.Prop("name", n.Name)
	p.PropNode("type", n.Type)
}
func (n *DeclProperty) FormatPrint(p *Printer) {
	if n.Flags&PropertySpread != 0 {
		p.Raw("...")
	}
	p.Raw(n.Name)
	if n.Flags&PropertyOptional != 0 {
		p.Raw("?")
	}
	p.Raw(": ")
	if n.Type != nil {
		n.Type.FormatPrint(p)
	}
}
func (n *DeclProperty) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChild(v, &n.Type, next)
	})
}

// InterfaceFlags are the flag bits on a DeclInterface.
type InterfaceFlags int

const (
	InterfaceAbstract InterfaceFlags = 1 << iota
)

// DeclInterface declares an interface with a set of extended
// interfaces and member declarations.
type DeclInterface struct {
	Header
	Flags   InterfaceFlags
	Name    string
	Extends []Node // each a *TypeSymbol
	Members []Node
}

func (n *DeclInterface) Kind() Kind { return KindDeclInterface }
func (n *DeclInterface) Clone() Node {
	return &DeclInterface{
		Header:  n.Header,
		Flags:   n.Flags,
		Name:    n.Name,
		Extends: CloneSlice(n.Extends),
		Members: CloneSlice(n.Members),
	}
}
func (n *DeclInterface) DebugPrint(p *Printer) {
	p.Prop("flags", n.Flags)
	p.Prop("name", n.Name)
	PropNodeList(p, "extends", n.Extends)
	PropNodeList(p, "members", n.Members)
}
func (n *DeclInterface) FormatPrint(p *Printer) {
	if n.Flags&InterfaceAbstract != 0 {
		p.Raw("abstract ")
	}
	p.Raw("interface " + n.Name)
	if len(n.Extends) > 0 {
		p.Raw(" extends ")
		for i, e := range n.Extends {
			if i > 0 {
				p.Raw(", ")
			}
			e.FormatPrint(p)
		}
	}
	p.Raw(" {\n")
	for _, m := range n.Members {
		m.FormatPrint(p)
		p.Raw(";\n")
	}
	p.Raw("}")
}
func (n *DeclInterface) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChildren(v, n.Extends, next); status == StatusStop {
			return status
		}
		return acceptChildren(v, n.Members, next)
	})
}

// FunctionArgumentFlags are the flag bits on a DeclFunctionArgument.
type FunctionArgumentFlags int

const (
	FunctionArgumentKeyword FunctionArgumentFlags = 1 << iota
)

// DeclFunctionArgument declares one function parameter: the
// underlying property (name/type) plus an optional default value.
type DeclFunctionArgument struct {
	Header
	Flags    FunctionArgumentFlags
	Property Node // a *DeclProperty
	Default  Node // value node, nil if none
}

func (n *DeclFunctionArgument) Kind() Kind { return KindDeclFunctionArgument }
func (n *DeclFunctionArgument) Clone() Node {
	return &DeclFunctionArgument{
		Header:   n.Header,
		Flags:    n.Flags,
		Property: cloneOrNil(n.Property),
		Default:  cloneOrNil(n.Default),
	}
}
func (n *DeclFunctionArgument) DebugPrint(p *Printer) {
	p.Prop("flags", n.Flags)
	p.PropNode("property", n.Property)
	p.PropNode("default", n.Default)
}
func (n *DeclFunctionArgument) FormatPrint(p *Printer) {
	if n.Flags&FunctionArgumentKeyword != 0 {
		p.Raw("keyword ")
	}
	if n.Property != nil {
		n.Property.FormatPrint(p)
	}
	if n.Default != nil {
		p.Raw(" = ")
		n.Default.FormatPrint(p)
	}
}
func (n *DeclFunctionArgument) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChild(v, &n.Property, next); status == StatusStop {
			return status
		}
		return acceptChild(v, &n.Default, next)
	})
}

// argumentName returns the property's name, satisfying
// DeclarationName for function arguments loaded into a function's
// scope frame.
func (n *DeclFunctionArgument) argumentName() string {
	if prop, ok := n.Property.(*DeclProperty); ok {
		return prop.Name
	}
	return ""
}

// FunctionFlags are the flag bits on a DeclFunction.
type FunctionFlags int

const (
	FunctionMutable FunctionFlags = 1 << iota
	FunctionOverride
)

// DeclFunction declares a function: name, signature (as a
// TypeFunction together with the argument declarations needed for
// scope loading), and body.
type DeclFunction struct {
	Header
	Flags        FunctionFlags
	Name         string
	Arguments    []Node // each a *DeclFunctionArgument
	ReturnType   Node
	Body         Node // a *StmtBlock
}

func (n *DeclFunction) Kind() Kind { return KindDeclFunction }
func (n *DeclFunction) Clone() Node {
	return &DeclFunction{
		Header:     n.Header,
		Flags:      n.Flags,
		Name:       n.Name,
		Arguments:  CloneSlice(n.Arguments),
		ReturnType: cloneOrNil(n.ReturnType),
		Body:       cloneOrNil(n.Body),
	}
}
func (n *DeclFunction) DebugPrint(p *Printer) {
	p.Prop("flags", n.Flags)
	p.Prop("name", n.Name)
	PropNodeList(p, "arguments", n.Arguments)
	p.PropNode("return_type", n.ReturnType)
	p.PropNode("body", n.Body)
}
func (n *DeclFunction) FormatPrint(p *Printer) {
	if n.Flags&FunctionOverride != 0 {
		p.Raw("override ")
	}
	if n.Flags&FunctionMutable != 0 {
		p.Raw("mut ")
	}
	p.Raw("fn " + n.Name + "(")
	for i, a := range n.Arguments {
		if i > 0 {
			p.Raw(", ")
		}
		a.FormatPrint(p)
	}
	p.Raw(")")
	if n.ReturnType != nil {
		p.Raw(" -> ")
		n.ReturnType.FormatPrint(p)
	}
	p.Raw(" ")
	if n.Body != nil {
		n.Body.FormatPrint(p)
	}
}
func (n *DeclFunction) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChildren(v, n.Arguments, next); status == StatusStop {
			return status
		}
		if status := acceptChild(v, &n.ReturnType, next); status == StatusStop {
			return status
		}
		return acceptChild(v, &n.Body, next)
	})
}

// FunctionType returns the signature of n as a standalone TypeFunction
// node, used by the verifier when checking calls and return types.
func (n *DeclFunction) FunctionType() *TypeFunction {
	positional := make([]Node, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		fa, ok := arg.(*DeclFunctionArgument)
		if !ok {
			continue
		}
		if fa.Flags&FunctionArgumentKeyword != 0 {
			continue
		}
		if prop, ok := fa.Property.(*DeclProperty); ok {
			positional = append(positional, prop.Type)
		}
	}
	return &TypeFunction{Positional: positional, Return: n.ReturnType}
}

// DeclAssignment declares a named value: `property = value`.
type DeclAssignment struct {
	Header
	Property Node // a *DeclProperty
	Value    Node
}

func (n *DeclAssignment) Kind() Kind { return KindDeclAssignment }
func (n *DeclAssignment) Clone() Node {
	return &DeclAssignment{Header: n.Header, Property: cloneOrNil(n.Property), Value: cloneOrNil(n.Value)}
}
func (n *DeclAssignment) DebugPrint(p *Printer) {
	p.PropNode("property", n.Property)
	p.PropNode("value", n.Value)
}
func (n *DeclAssignment) FormatPrint(p *Printer) {
	if n.Property != nil {
		n.Property.FormatPrint(p)
	}
	p.Raw(" = ")
	if n.Value != nil {
		n.Value.FormatPrint(p)
	}
}
func (n *DeclAssignment) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		if status := acceptChild(v, &n.Property, next); status == StatusStop {
			return status
		}
		return acceptChild(v, &n.Value, next)
	})
}

// DeclBlock is a declaration-block: an ordered sequence of
// declarations and statements. At the top level a source file parses
// to a single DeclBlock with no children for an empty program.
type DeclBlock struct {
	Header
	Children []Node
}

func (n *DeclBlock) Kind() Kind { return KindDeclBlock }
func (n *DeclBlock) Clone() Node {
	return &DeclBlock{Header: n.Header, Children: CloneSlice(n.Children)}
}
func (n *DeclBlock) DebugPrint(p *Printer) {
	PropNodeList(p, "children", n.Children)
}
func (n *DeclBlock) FormatPrint(p *Printer) {
	p.Raw("{\n")
	for _, c := range n.Children {
		c.FormatPrint(p)
		p.Raw(";\n")
	}
	p.Raw("}")
}
func (n *DeclBlock) Accept(v *Visitor, parents []Node) Status {
	self := Node(n)
	return acceptWithChildren(v, &self, parents, func(next []Node) Status {
		return acceptChildren(v, n.Children, next)
	})
}
