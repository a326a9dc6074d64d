// Package shade regenerates shading-language syntax trees from evaluated
// material and function graphs stored in a scene database.
//
// A compiled material lives in the database as a graph of constants, calls
// and resource references. To re-compile, export or re-optimize it, the
// graph must be turned back into source-level syntax. The pipeline is:
//
//	scene graph (scene.Expr) → AST (ast.Expression) → front end
//
// The heavy lifting is done by package astbuild; this package provides the
// convenience entry points for the common one-shot cases. For repeated
// transformations sharing one target module, parameter substitution, or
// used-type collection, use astbuild.Builder directly:
//
//	owner := ast.NewModule("::export::main")
//	b := astbuild.NewBuilder(owner, txn, args)
//	expr := b.TransformExpr(graphExpr)
//	imports := b.UsedTypes()
package shade

import (
	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/astbuild"
	"github.com/gogpu/shade/scene"
)

// BuildExpression lowers one graph expression into an AST expression owned
// by owner. Entities referenced by the graph are resolved through txn, and
// parameter references resolve against args (may be nil when the expression
// has none).
//
// The result is never nil: malformed graphs yield *ast.Invalid sentinels
// inside an otherwise complete tree.
func BuildExpression(owner *ast.Module, txn scene.Transaction, args *scene.ExprList, expr scene.Expr) ast.Expression {
	b := astbuild.NewBuilder(owner, txn, args)
	return b.TransformExpr(expr)
}

// BuildValue materializes one scene constant as an AST expression owned by
// owner. Resource values resolve their backing files through txn.
func BuildValue(owner *ast.Module, txn scene.Transaction, value scene.Value) ast.Expression {
	b := astbuild.NewBuilder(owner, txn, nil)
	return b.TransformValue(value)
}
