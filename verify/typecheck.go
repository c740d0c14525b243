package verify

import (
	"github.com/viant/forge/ast"
)

// typeResolveHandler resolves every value node's type on leave (after
// its subtree's types are already known to the scope) purely to turn a
// resolution error into an et-* diagnostic; the resolved type itself
// is discarded here rather than cached, since nothing downstream of
// this package consumes it yet.
func typeResolveHandler() ast.Handler {
	return ast.Handler{OnLeave: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
		c := contextOf(v)
		if _, err := ast.ResolveType(c.Scope, *node); err != nil {
			return reject(c, (*node).Range(), "et-1", err.Error())
		}
		return ast.StatusOk
	}}
}

// returnTypeHandler checks a return statement's value, if any, against
// the enclosing function's declared return type.
func returnTypeHandler() ast.Handler {
	return ast.Handler{OnEnter: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
		c := contextOf(v)
		ret := (*node).(*ast.StmtReturn)
		fn := c.currentFunction
		if fn == nil {
			return reject(c, ret.Range(), "et-4", "return statement outside of a function")
		}
		wantsVoid := fn.ReturnType == nil || fn.ReturnType.Kind() == ast.KindTypeVoid
		if ret.Value == nil {
			if !wantsVoid {
				return reject(c, ret.Range(), "et-5", "missing return value for non-void function")
			}
			return ast.StatusOk
		}
		if wantsVoid {
			return reject(c, ret.Range(), "et-5", "function declared void must not return a value")
		}
		valueType, err := ast.ResolveType(c.Scope, ret.Value)
		if err != nil {
			// already reported by typeResolveHandler on this same subtree
			return ast.StatusOk
		}
		if !ast.Equal(valueType, fn.ReturnType) {
			return reject(c, ret.Value.Range(), "et-5", "mismatched return type")
		}
		return ast.StatusOk
	}}
}
