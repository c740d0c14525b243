package ast

import "bytes"

// Equal reports whether a and b are structurally identical modulo
// source range: same kind, same scalar fields, and recursively equal
// children compared element-wise and by list length.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *TypeVoid:
		return true
	case *TypeBool:
		return true
	case *TypeInt:
		bv := b.(*TypeInt)
		return av.BitWidth == bv.BitWidth && av.Unsigned == bv.Unsigned
	case *TypeFloat:
		bv := b.(*TypeFloat)
		return av.BitWidth == bv.BitWidth
	case *TypeSymbol:
		bv := b.(*TypeSymbol)
		return av.Name == bv.Name
	case *TypePointer:
		bv := b.(*TypePointer)
		return av.Constant == bv.Constant && av.ImplicitDereference == bv.ImplicitDereference && Equal(av.Pointee, bv.Pointee)
	case *TypeArray:
		bv := b.(*TypeArray)
		return av.Length == bv.Length && Equal(av.Element, bv.Element)
	case *TypeFunction:
		bv := b.(*TypeFunction)
		return equalList(av.Positional, bv.Positional) &&
			Equal(av.VariadicPositional, bv.VariadicPositional) &&
			Equal(av.VariadicKeyword, bv.VariadicKeyword) &&
			Equal(av.Return, bv.Return)

	case *DeclUnion:
		bv := b.(*DeclUnion)
		return av.Name == bv.Name && equalList(av.Properties, bv.Properties)
	case *DeclStructure:
		bv := b.(*DeclStructure)
		return av.Name == bv.Name && equalList(av.Properties, bv.Properties)
	case *DeclProperty:
		bv := b.(*DeclProperty)
		return av.Flags == bv.Flags && av.Name == bv.Name && Equal(av.Type, bv.Type)
	case *DeclInterface:
		bv := b.(*DeclInterface)
		return av.Flags == bv.Flags && av.Name == bv.Name &&
			equalList(av.Extends, bv.Extends) && equalList(av.Members, bv.Members)
	case *DeclFunctionArgument:
		bv := b.(*DeclFunctionArgument)
		return av.Flags == bv.Flags && Equal(av.Property, bv.Property) && Equal(av.Default, bv.Default)
	case *DeclFunction:
		bv := b.(*DeclFunction)
		return av.Flags == bv.Flags && av.Name == bv.Name &&
			equalList(av.Arguments, bv.Arguments) &&
			Equal(av.ReturnType, bv.ReturnType) && Equal(av.Body, bv.Body)
	case *DeclAssignment:
		bv := b.(*DeclAssignment)
		return Equal(av.Property, bv.Property) && Equal(av.Value, bv.Value)
	case *DeclBlock:
		bv := b.(*DeclBlock)
		return equalList(av.Children, bv.Children)

	case *StmtReturn:
		bv := b.(*StmtReturn)
		return Equal(av.Value, bv.Value)
	case *StmtIfConditionalClause:
		bv := b.(*StmtIfConditionalClause)
		return Equal(av.Condition, bv.Condition) && Equal(av.Body, bv.Body)
	case *StmtIf:
		bv := b.(*StmtIf)
		return equalList(av.Clauses, bv.Clauses) && Equal(av.ElseBody, bv.ElseBody)
	case *StmtWhile:
		bv := b.(*StmtWhile)
		return Equal(av.Condition, bv.Condition) && Equal(av.Body, bv.Body)
	case *StmtBlock:
		bv := b.(*StmtBlock)
		return equalList(av.Children, bv.Children)

	case *ValueBool:
		bv := b.(*ValueBool)
		return av.Lit == bv.Lit
	case *ValueInt:
		bv := b.(*ValueInt)
		return av.Value == bv.Value && Equal(av.Type, bv.Type)
	case *ValueFloat:
		bv := b.(*ValueFloat)
		return av.Value == bv.Value && Equal(av.Type, bv.Type)
	case *ValueCharacter:
		bv := b.(*ValueCharacter)
		return av.Codepoint == bv.Codepoint
	case *ValueString:
		bv := b.(*ValueString)
		return bytes.Equal(av.Bytes, bv.Bytes)
	case *ValueArray:
		bv := b.(*ValueArray)
		return equalList(av.Elements, bv.Elements)
	case *ValueArrayRepeated:
		bv := b.(*ValueArrayRepeated)
		return av.Count == bv.Count && Equal(av.Element, bv.Element)
	case *ValueStructure:
		bv := b.(*ValueStructure)
		return av.TypeName == bv.TypeName && equalList(av.Fields, bv.Fields)
	case *ValueSymbol:
		bv := b.(*ValueSymbol)
		return av.Name == bv.Name
	case *ValueCall:
		bv := b.(*ValueCall)
		return Equal(av.Callee, bv.Callee) &&
			equalList(av.Positional, bv.Positional) && equalList(av.Keyword, bv.Keyword)
	case *ValueCallKeywordArgument:
		bv := b.(*ValueCallKeywordArgument)
		return av.Name == bv.Name && Equal(av.Value, bv.Value)
	case *ValueCast:
		bv := b.(*ValueCast)
		return Equal(av.Value, bv.Value) && Equal(av.TargetType, bv.TargetType)
	case *ValueUnary:
		bv := b.(*ValueUnary)
		return av.Operator == bv.Operator && Equal(av.Operand, bv.Operand)
	case *ValueBinary:
		bv := b.(*ValueBinary)
		return av.Operator == bv.Operator && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *ValueAccess:
		bv := b.(*ValueAccess)
		return av.Member == bv.Member && Equal(av.Object, bv.Object)
	case *ValueDereference:
		bv := b.(*ValueDereference)
		return Equal(av.Pointer, bv.Pointer)
	case *ValueGetAddress:
		bv := b.(*ValueGetAddress)
		return Equal(av.Lvalue, bv.Lvalue)
	default:
		return false
	}
}

// equalList compares two node lists element-wise, also requiring
// equal length.
func equalList[T Node](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
