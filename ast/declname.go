package ast

// DeclarationName returns the name under which n is inserted into a
// scope frame, and whether n is declarable at all. Only kinds with
// Category CategoryDeclarable ever return ok == true.
func DeclarationName(n Node) (string, bool) {
	switch d := n.(type) {
	case *DeclUnion:
		return d.Name, true
	case *DeclStructure:
		return d.Name, true
	case *DeclProperty:
		return d.Name, true
	case *DeclInterface:
		return d.Name, true
	case *DeclFunctionArgument:
		return d.argumentName(), true
	case *DeclFunction:
		return d.Name, true
	case *DeclAssignment:
		if prop, ok := d.Property.(*DeclProperty); ok {
			return prop.Name, true
		}
		return "", true
	default:
		return "", false
	}
}
