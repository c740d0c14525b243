package verify

import (
	"github.com/viant/forge/ast"
	"github.com/viant/forge/diag"
	"github.com/viant/forge/source"
)

// featureGateHandler rejects constructs the backend does not yet
// handle, per Context.Options, with a specific es-* diagnostic code
// per rejected feature and SKIPs further traversal of the rejected
// subtree so sibling checks still run.
func featureGateHandler() ast.Handler {
	return ast.Handler{OnEnter: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
		c := contextOf(v)
		switch n := (*node).(type) {
		case *ast.DeclUnion:
			if !c.Options.AllowUnions {
				return reject(c, n.Range(), "es-1", "union declarations are not supported")
			}
		case *ast.DeclInterface:
			if !c.Options.AllowInterfaces {
				return reject(c, n.Range(), "es-2", "interface declarations are not supported")
			}
		case *ast.ValueCall:
			if !c.Options.AllowVariadicKeywordArgs && len(n.Keyword) > 0 {
				return reject(c, n.Range(), "es-3", "keyword call arguments are not supported")
			}
		case *ast.ValueString:
			if !c.Options.AllowStringLiteralValues {
				return reject(c, n.Range(), "es-4", "string literal values are not supported")
			}
		case *ast.ValueCharacter:
			if !c.Options.AllowCharacterLiteralValues {
				return reject(c, n.Range(), "es-5", "character literal values are not supported")
			}
		}
		return ast.StatusOk
	}}
}

func reject(c *Context, r source.Range, code, text string) ast.Status {
	c.Messages.Emit(diag.New(diag.Error, code, text).WithRange(r))
	return ast.StatusSkip
}
