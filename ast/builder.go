package ast

import "github.com/viant/forge/source"

// Builder assembles AST nodes programmatically, the way parser
// productions and tests construct trees without going through surface
// syntax. Every node it returns carries source.Range.Null unless
// WithRange is used, matching a synthetic node's range invariant.
type Builder struct {
	rng source.Range
}

// NewBuilder returns a Builder that stamps every node with the null
// range, suitable for hand-built trees in tests.
func NewBuilder() *Builder {
	return &Builder{rng: source.Range{}}
}

// WithRange returns a Builder that stamps subsequently built nodes
// with r instead of the null range.
func (b *Builder) WithRange(r source.Range) *Builder {
	return &Builder{rng: r}
}

func (b *Builder) header() Header { return Header{NodeRange: b.rng} }

func (b *Builder) Void() *TypeVoid   { return &TypeVoid{Header: b.header()} }
func (b *Builder) Bool() *TypeBool   { return &TypeBool{Header: b.header()} }
func (b *Builder) Int(width int, unsigned bool) *TypeInt {
	return &TypeInt{Header: b.header(), BitWidth: width, Unsigned: unsigned}
}
func (b *Builder) Float(width int) *TypeFloat {
	return &TypeFloat{Header: b.header(), BitWidth: width}
}
func (b *Builder) Symbol(name string) *TypeSymbol {
	return &TypeSymbol{Header: b.header(), Name: name}
}
func (b *Builder) Pointer(constant bool, pointee Node) *TypePointer {
	return &TypePointer{Header: b.header(), Constant: constant, Pointee: pointee}
}
func (b *Builder) Array(length int, element Node) *TypeArray {
	return &TypeArray{Header: b.header(), Length: length, Element: element}
}
func (b *Builder) FunctionType(positional []Node, ret Node) *TypeFunction {
	return &TypeFunction{Header: b.header(), Positional: positional, Return: ret}
}

func (b *Builder) Property(flags PropertyFlags, name string, typ Node) *DeclProperty {
	return &DeclProperty{Header: b.header(), Flags: flags, Name: name, Type: typ}
}
func (b *Builder) Structure(name string, properties []Node) *DeclStructure {
	return &DeclStructure{Header: b.header(), Name: name, Properties: properties}
}
func (b *Builder) Union(name string, properties []Node) *DeclUnion {
	return &DeclUnion{Header: b.header(), Name: name, Properties: properties}
}
func (b *Builder) FunctionArgument(flags FunctionArgumentFlags, property Node, def Node) *DeclFunctionArgument {
	return &DeclFunctionArgument{Header: b.header(), Flags: flags, Property: property, Default: def}
}
func (b *Builder) Function(flags FunctionFlags, name string, args []Node, ret Node, body Node) *DeclFunction {
	return &DeclFunction{Header: b.header(), Flags: flags, Name: name, Arguments: args, ReturnType: ret, Body: body}
}
func (b *Builder) Assignment(property Node, value Node) *DeclAssignment {
	return &DeclAssignment{Header: b.header(), Property: property, Value: value}
}
func (b *Builder) DeclBlock(children ...Node) *DeclBlock {
	return &DeclBlock{Header: b.header(), Children: children}
}

func (b *Builder) Return(value Node) *StmtReturn {
	return &StmtReturn{Header: b.header(), Value: value}
}
func (b *Builder) IfClause(condition Node, body Node) *StmtIfConditionalClause {
	return &StmtIfConditionalClause{Header: b.header(), Condition: condition, Body: body}
}
func (b *Builder) If(elseBody Node, clauses ...Node) *StmtIf {
	return &StmtIf{Header: b.header(), Clauses: clauses, ElseBody: elseBody}
}
func (b *Builder) While(condition Node, body Node) *StmtWhile {
	return &StmtWhile{Header: b.header(), Condition: condition, Body: body}
}
func (b *Builder) StmtBlock(children ...Node) *StmtBlock {
	return &StmtBlock{Header: b.header(), Children: children}
}

func (b *Builder) BoolValue(lit bool) *ValueBool { return &ValueBool{Header: b.header(), Lit: lit} }
func (b *Builder) IntValue(value uint64, typ Node) *ValueInt {
	return &ValueInt{Header: b.header(), Value: value, Type: typ}
}
func (b *Builder) FloatValue(value float64, typ Node) *ValueFloat {
	return &ValueFloat{Header: b.header(), Value: value, Type: typ}
}
func (b *Builder) CharacterValue(codepoint rune) *ValueCharacter {
	return &ValueCharacter{Header: b.header(), Codepoint: codepoint}
}
func (b *Builder) StringValue(text string) *ValueString {
	return &ValueString{Header: b.header(), Bytes: []byte(text)}
}
func (b *Builder) ArrayValue(elements ...Node) *ValueArray {
	return &ValueArray{Header: b.header(), Elements: elements}
}
func (b *Builder) ArrayRepeated(element Node, count int) *ValueArrayRepeated {
	return &ValueArrayRepeated{Header: b.header(), Element: element, Count: count}
}
func (b *Builder) StructureValue(typeName string, fields ...Node) *ValueStructure {
	return &ValueStructure{Header: b.header(), TypeName: typeName, Fields: fields}
}
func (b *Builder) SymbolValue(name string) *ValueSymbol {
	return &ValueSymbol{Header: b.header(), Name: name}
}
func (b *Builder) Call(callee Node, positional []Node, keyword []Node) *ValueCall {
	return &ValueCall{Header: b.header(), Callee: callee, Positional: positional, Keyword: keyword}
}
func (b *Builder) KeywordArgument(name string, value Node) *ValueCallKeywordArgument {
	return &ValueCallKeywordArgument{Header: b.header(), Name: name, Value: value}
}
func (b *Builder) Cast(value Node, target Node) *ValueCast {
	return &ValueCast{Header: b.header(), Value: value, TargetType: target}
}
func (b *Builder) Unary(op Operator, operand Node) *ValueUnary {
	return &ValueUnary{Header: b.header(), Operator: op, Operand: operand}
}
func (b *Builder) Binary(op Operator, left, right Node) *ValueBinary {
	return &ValueBinary{Header: b.header(), Operator: op, Left: left, Right: right}
}
func (b *Builder) Access(object Node, member string) *ValueAccess {
	return &ValueAccess{Header: b.header(), Object: object, Member: member}
}
func (b *Builder) Dereference(pointer Node) *ValueDereference {
	return &ValueDereference{Header: b.header(), Pointer: pointer}
}
func (b *Builder) GetAddress(lvalue Node) *ValueGetAddress {
	return &ValueGetAddress{Header: b.header(), Lvalue: lvalue}
}
