package ast

import "fmt"

// ResolveType returns a freshly allocated type node describing n's
// value type, looking up symbols in scope. It returns an error for
// anything not well-typed locally (an unbound symbol, a dereference of
// a non-pointer, a call through a non-function, an access off a
// non-structure) — the verifier turns that into a diagnostic rather
// than propagating a Go error up through the visitor.
func ResolveType(scope *Scope, n Node) (Node, error) {
	switch v := n.(type) {
	case *ValueBool:
		return &TypeBool{}, nil
	case *ValueInt:
		return cloneOrNil(v.Type), nil
	case *ValueFloat:
		return cloneOrNil(v.Type), nil
	case *ValueCharacter:
		return &TypeInt{BitWidth: 32, Unsigned: true}, nil
	case *ValueString:
		return &TypePointer{Constant: true, Pointee: &TypeInt{BitWidth: 8, Unsigned: true}}, nil

	case *ValueSymbol:
		decl, ok := scope.Lookup(v.Name)
		if !ok {
			return nil, fmt.Errorf("unbound symbol %q", v.Name)
		}
		return declarationType(decl)

	case *ValueDereference:
		pt, err := ResolveType(scope, v.Pointer)
		if err != nil {
			return nil, err
		}
		ptr, ok := pt.(*TypePointer)
		if !ok {
			return nil, fmt.Errorf("dereference of non-pointer type %s", describeType(pt))
		}
		return cloneOrNil(ptr.Pointee), nil

	case *ValueGetAddress:
		t, err := ResolveType(scope, v.Lvalue)
		if err != nil {
			return nil, err
		}
		return &TypePointer{Pointee: t}, nil

	case *ValueCall:
		ft, err := ResolveType(scope, v.Callee)
		if err != nil {
			return nil, err
		}
		fn, ok := ft.(*TypeFunction)
		if !ok {
			return nil, fmt.Errorf("call of non-function type %s", describeType(ft))
		}
		if err := checkCallArity(fn, v); err != nil {
			return nil, err
		}
		return cloneOrNil(fn.Return), nil

	case *ValueCast:
		return cloneOrNil(v.TargetType), nil

	case *ValueAccess:
		ot, err := ResolveType(scope, v.Object)
		if err != nil {
			return nil, err
		}
		sym, ok := ot.(*TypeSymbol)
		if !ok {
			return nil, fmt.Errorf("access on non-structure type %s", describeType(ot))
		}
		decl, ok := scope.Lookup(sym.Name)
		if !ok {
			return nil, fmt.Errorf("unbound structure type %q", sym.Name)
		}
		st, ok := decl.(*DeclStructure)
		if !ok {
			return nil, fmt.Errorf("%q is not a structure", sym.Name)
		}
		for _, prop := range st.Properties {
			if p, ok := prop.(*DeclProperty); ok && p.Name == v.Member {
				return cloneOrNil(p.Type), nil
			}
		}
		return nil, fmt.Errorf("structure %q has no member %q", sym.Name, v.Member)

	case *ValueUnary:
		operandType, err := ResolveType(scope, v.Operand)
		if err != nil {
			return nil, err
		}
		if err := checkOperandFamily(v.Operator, operandType); err != nil {
			return nil, err
		}
		if v.Operator == OpLogicalNot {
			return &TypeBool{}, nil
		}
		return operandType, nil

	case *ValueBinary:
		leftType, err := ResolveType(scope, v.Left)
		if err != nil {
			return nil, err
		}
		rightType, err := ResolveType(scope, v.Right)
		if err != nil {
			return nil, err
		}
		family, _ := v.Operator.Family()
		switch family {
		case FamilyComparison:
			if !Equal(leftType, rightType) {
				return nil, fmt.Errorf("operator %s requires operands of the same type, got %s and %s", v.Operator, describeType(leftType), describeType(rightType))
			}
			return &TypeBool{}, nil
		case FamilyLogical, FamilyBitwise:
			for _, t := range []Node{leftType, rightType} {
				if err := checkOperandFamily(v.Operator, t); err != nil {
					return nil, err
				}
			}
			if family == FamilyLogical {
				return &TypeBool{}, nil
			}
			return containingNumericType(leftType, rightType)
		default:
			return containingNumericType(leftType, rightType)
		}

	case *ValueArray:
		if len(v.Elements) == 0 {
			return nil, fmt.Errorf("cannot resolve type of empty array literal")
		}
		elem, err := ResolveType(scope, v.Elements[0])
		if err != nil {
			return nil, err
		}
		return &TypeArray{Length: len(v.Elements), Element: elem}, nil

	case *ValueArrayRepeated:
		elem, err := ResolveType(scope, v.Element)
		if err != nil {
			return nil, err
		}
		return &TypeArray{Length: v.Count, Element: elem}, nil

	case *ValueStructure:
		return &TypeSymbol{Name: v.TypeName}, nil

	default:
		return nil, fmt.Errorf("cannot resolve type of %s", n.Kind())
	}
}

func declarationType(decl Node) (Node, error) {
	switch d := decl.(type) {
	case *DeclProperty:
		return cloneOrNil(d.Type), nil
	case *DeclFunction:
		return d.FunctionType(), nil
	case *DeclAssignment:
		if prop, ok := d.Property.(*DeclProperty); ok {
			return cloneOrNil(prop.Type), nil
		}
	case *DeclStructure:
		return &TypeSymbol{Name: d.Name}, nil
	case *DeclUnion:
		return &TypeSymbol{Name: d.Name}, nil
	}
	return nil, fmt.Errorf("declaration of kind %s has no value type", decl.Kind())
}

func describeType(t Node) string {
	if t == nil {
		return "<none>"
	}
	return t.Kind().String()
}

// checkCallArity verifies positional/keyword/variadic matching between
// a call site and the function type it calls.
func checkCallArity(fn *TypeFunction, call *ValueCall) error {
	if fn.VariadicPositional == nil && len(call.Positional) != len(fn.Positional) {
		return fmt.Errorf("expected %d positional arguments, got %d", len(fn.Positional), len(call.Positional))
	}
	if fn.VariadicPositional != nil && len(call.Positional) < len(fn.Positional) {
		return fmt.Errorf("expected at least %d positional arguments, got %d", len(fn.Positional), len(call.Positional))
	}
	return nil
}

// checkOperandFamily enforces the operand-type constraint for
// operator's family against a single resolved operand type.
func checkOperandFamily(op Operator, t Node) error {
	family, ok := op.Family()
	if !ok {
		return fmt.Errorf("operator %s has no known family", op)
	}
	switch family {
	case FamilyLogical:
		if _, ok := t.(*TypeBool); !ok {
			return fmt.Errorf("operator %s requires bool operand, got %s", op, describeType(t))
		}
	case FamilyBitwise:
		if _, ok := t.(*TypeInt); !ok {
			return fmt.Errorf("operator %s requires integer operand, got %s", op, describeType(t))
		}
	}
	return nil
}

// containingNumericType implements the widening rule: floats subsume
// ints; within ints the wider width wins; on equal widths, unsigned
// subsumes signed.
func containingNumericType(a, b Node) (Node, error) {
	af, aIsFloat := a.(*TypeFloat)
	bf, bIsFloat := b.(*TypeFloat)
	if aIsFloat && bIsFloat {
		if af.BitWidth >= bf.BitWidth {
			return &TypeFloat{BitWidth: af.BitWidth}, nil
		}
		return &TypeFloat{BitWidth: bf.BitWidth}, nil
	}
	if aIsFloat {
		return &TypeFloat{BitWidth: af.BitWidth}, nil
	}
	if bIsFloat {
		return &TypeFloat{BitWidth: bf.BitWidth}, nil
	}
	ai, aOk := a.(*TypeInt)
	bi, bOk := b.(*TypeInt)
	if !aOk || !bOk {
		return nil, fmt.Errorf("arithmetic requires numeric operands, got %s and %s", describeType(a), describeType(b))
	}
	if ai.BitWidth != bi.BitWidth {
		if ai.BitWidth > bi.BitWidth {
			return &TypeInt{BitWidth: ai.BitWidth, Unsigned: ai.Unsigned}, nil
		}
		return &TypeInt{BitWidth: bi.BitWidth, Unsigned: bi.Unsigned}, nil
	}
	return &TypeInt{BitWidth: ai.BitWidth, Unsigned: ai.Unsigned || bi.Unsigned}, nil
}
