package verify

import (
	"fmt"

	"github.com/viant/forge/ast"
)

// scopeBuilderHandler pushes a frame on entering every lexical region
// (a declaration block, a function body, or a statement block) and
// pops it on leaving. On entry it also loads the region's immediate
// declarable children into the new frame, turning a collision into an
// fc-1 diagnostic rather than letting the later frame silently shadow
// the earlier one.
func scopeBuilderHandler() ast.Handler {
	return ast.Handler{
		OnEnter: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
			c := contextOf(v)
			c.Scope.Push()
			var children []ast.Node
			switch n := (*node).(type) {
			case *ast.DeclBlock:
				children = n.Children
			case *ast.StmtBlock:
				children = n.Children
			case *ast.DeclFunction:
				children = n.Arguments
			}
			for _, name := range c.Scope.LoadDeclarations(children) {
				reportCollision(c, *node, name)
			}
			return ast.StatusOk
		},
		OnLeave: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
			contextOf(v).Scope.Pop()
			return ast.StatusOk
		},
	}
}

func reportCollision(c *Context, n ast.Node, name string) {
	text := fmt.Sprintf("%q is already declared in this scope", name)
	reject(c, n.Range(), "fc-1", text)
}

// functionTrackerHandler records the innermost enclosing function
// declaration so the return-type checker can find it without walking
// the parents chain on every statement-return node.
func functionTrackerHandler() ast.Handler {
	return ast.Handler{
		OnEnter: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
			fn := (*node).(*ast.DeclFunction)
			contextOf(v).currentFunction = fn
			return ast.StatusOk
		},
		OnLeave: func(v *ast.Visitor, node *ast.Node, parents []ast.Node) ast.Status {
			contextOf(v).currentFunction = nil
			return ast.StatusOk
		},
	}
}
