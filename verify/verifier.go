package verify

import (
	"github.com/viant/forge/ast"
	"github.com/viant/forge/diag"
)

// newVisitor wires the feature gate, scope construction, and type
// checking passes into one Visitor, in the order each pass depends on
// the one before it: features must be accepted before scope sees them,
// scope must be built before types can resolve symbols, and a
// function's return type must be tracked before its body's return
// statements are checked.
func newVisitor() *ast.Visitor {
	v := ast.NewVisitor()
	v.On(featureGateHandler(),
		ast.KindDeclUnion, ast.KindDeclInterface, ast.KindValueCall,
		ast.KindValueString, ast.KindValueCharacter)
	v.On(scopeBuilderHandler(), ast.KindDeclBlock, ast.KindStmtBlock, ast.KindDeclFunction)
	v.On(functionTrackerHandler(), ast.KindDeclFunction)
	v.OnCategory(typeResolveHandler(), ast.CategoryValue)
	v.On(returnTypeHandler(), ast.KindStmtReturn)
	return v
}

// Verify runs the full semantic pass over root and returns the
// diagnostics collected along the way. A nil root yields an empty,
// error-free buffer.
func Verify(root ast.Node, opts Options) *diag.Buffer {
	messages := diag.NewBuffer()
	if root == nil {
		return messages
	}
	c := NewContext(messages, opts)
	v := newVisitor()
	v.UserData = c
	node := root
	ast.Accept(v, &node, nil)
	return messages
}
