package astbuild

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

// Builder reconstructs AST expressions from graph expressions.
//
// All nodes are created through the factories of the owner module; the
// builder holds non-owning references to them. The parameter map and the
// used-type list are per-builder state, mutated across Transform calls.
type Builder struct {
	owner *ast.Module
	trans scene.Transaction

	nf *ast.NameFactory
	vf *ast.ValueFactory
	ef *ast.ExpressionFactory
	tf *ast.TypeFactory
	st *ast.SymbolTable

	log *slog.Logger

	// args is the positional-argument context of the enclosing call,
	// used to resolve parameter references.
	args *scene.ExprList

	// paramMap keys on graph node identity, not structure. Two equal
	// sub-expressions at different positions stay distinct.
	paramMap map[scene.Expr]*ast.Symbol

	usedTypes []*ast.Symbol
	tmpIdx    uint32
}

// NewBuilder creates a builder producing nodes into owner, resolving
// entities through trans, and resolving parameter references against args.
// args may be nil when the expression contains no parameter references.
func NewBuilder(owner *ast.Module, trans scene.Transaction, args *scene.ExprList) *Builder {
	return &Builder{
		owner:    owner,
		trans:    trans,
		nf:       owner.NameFactory(),
		vf:       owner.ValueFactory(),
		ef:       owner.ExpressionFactory(),
		tf:       owner.TypeFactory(),
		st:       owner.SymbolTable(),
		log:      slog.Default(),
		args:     args,
		paramMap: make(map[scene.Expr]*ast.Symbol),
	}
}

// SetLogger replaces the builder's diagnostic logger.
func (b *Builder) SetLogger(l *slog.Logger) { b.log = l }

// SimpleName creates a simple name. name must not contain a scope separator.
func (b *Builder) SimpleName(name string) *ast.SimpleName {
	if strings.Contains(name, "::") {
		b.log.Error("simple name contains a scope separator", "name", name)
	}
	return b.nf.SimpleName(b.st.Symbol(name))
}

// QualifiedName splits name on "::" into a qualified name. A leading
// separator marks the name absolute.
func (b *Builder) QualifiedName(name string) *ast.QualifiedName {
	qname, rest := b.scopePrefix(name)
	qname.AddComponent(b.SimpleName(rest))
	return qname
}

// ScopeName is QualifiedName without the final component: it stops after
// the last-but-one segment, for callers that append a suffix component
// (such as an enum value or struct field) themselves.
func (b *Builder) ScopeName(name string) *ast.QualifiedName {
	qname, _ := b.scopePrefix(name)
	return qname
}

// scopePrefix builds the leading components of name and returns the
// remaining final segment.
func (b *Builder) scopePrefix(name string) (*ast.QualifiedName, string) {
	qname := b.nf.QualifiedName()
	if len(name) > 2 && name[0] == ':' && name[1] == ':' {
		qname.Absolute = true
		name = name[2:]
	}
	for {
		p := strings.Index(name, "::")
		if p < 0 {
			return qname, name
		}
		qname.AddComponent(b.SimpleName(name[:p]))
		name = name[p+2:]
	}
}

// TemporarySymbol returns a fresh symbol of the form tmp<N>. The counter is
// per builder; clashes with symbols already present in the target module
// are not detected.
func (b *Builder) TemporarySymbol() *ast.Symbol {
	sym := b.st.Symbol(fmt.Sprintf("tmp%d", b.tmpIdx))
	b.tmpIdx++
	return sym
}

// toReference builds a reference expression for a qualified name. A
// non-nil type is attached to both the type name and the reference so the
// name importer can skip re-resolution.
func (b *Builder) toReference(qname *ast.QualifiedName, t ast.Type) *ast.Reference {
	tn := b.nf.TypeName(qname)
	if t != nil {
		tn.Type = t
	}
	ref := b.ef.Reference(tn)
	if t != nil {
		ref.Type = t
	}
	return ref
}

// symbolReference builds a reference expression for a single symbol.
func (b *Builder) symbolReference(sym *ast.Symbol) *ast.Reference {
	qname := b.nf.QualifiedName()
	qname.AddComponent(b.nf.SimpleName(sym))
	return b.toReference(qname, nil)
}

// DeclareParameter maps the graph node init to sym. A subsequent Transform
// of init (or any expression containing it) emits a reference to sym instead
// of lowering the node itself.
func (b *Builder) DeclareParameter(sym *ast.Symbol, init scene.Expr) {
	b.paramMap[init] = sym
}

// RemoveParameters drops all declared parameter mappings.
func (b *Builder) RemoveParameters() {
	clear(b.paramMap)
}

// UsedTypes returns the user-defined type symbols encountered while
// transforming call return types, in first-seen order. The list is not
// deduplicated.
func (b *Builder) UsedTypes() []*ast.Symbol {
	return b.usedTypes
}

// TransformExpr lowers a graph expression to an AST expression. It never
// returns nil; malformed input yields *ast.Invalid after a logged
// diagnostic.
func (b *Builder) TransformExpr(expr scene.Expr) ast.Expression {
	if sym, ok := b.paramMap[expr]; ok {
		// mapping takes precedence over the node's own kind
		return b.symbolReference(sym)
	}

	switch expr := expr.(type) {
	case *scene.ConstantExpr:
		return b.TransformValue(expr.Value)

	case *scene.CallExpr:
		return b.transformTaggedCall(expr)

	case *scene.DirectCallExpr:
		return b.transformDirectCall(expr)

	case *scene.ParameterExpr:
		arg := b.args.Expr(expr.Index)
		if arg == nil {
			b.log.Error("parameter has no argument", "index", expr.Index)
			return b.ef.Invalid()
		}
		return b.TransformExpr(arg)

	case *scene.TemporaryExpr:
		b.log.Error("unexpected temporary in AST builder", "index", expr.Index)
		return b.ef.Invalid()

	default:
		b.log.Error("unexpected expression kind", "expr", fmt.Sprintf("%T", expr))
		return b.ef.Invalid()
	}
}

// transformTaggedCall resolves a call through its database tag and lowers it.
func (b *Builder) transformTaggedCall(expr *scene.CallExpr) ast.Expression {
	tag := expr.Callee

	switch b.trans.ClassOf(tag) {
	case scene.ClassFunctionCall:
		fcall, ok := b.trans.FunctionCall(tag)
		if !ok {
			b.log.Error("function call not found", "tag", tag)
			return b.ef.Invalid()
		}
		fdef, ok := b.trans.FunctionDefinition(fcall.Definition)
		if !ok {
			b.log.Error("function definition not found", "tag", fcall.Definition)
			return b.ef.Invalid()
		}
		// if re-exported, use the original name
		name := fdef.Name
		if fdef.OriginalName != "" {
			name = fdef.OriginalName
		}
		return b.TransformCall(
			expr.Type, fdef.Semantic, dagUnmangle(name),
			fcall.ParameterCount, fcall.Arguments, false)

	case scene.ClassMaterialInstance:
		inst, ok := b.trans.MaterialInstance(tag)
		if !ok {
			b.log.Error("material instance not found", "tag", tag)
			return b.ef.Invalid()
		}
		mdef, ok := b.trans.MaterialDefinition(inst.Definition)
		if !ok {
			b.log.Error("material definition not found", "tag", inst.Definition)
			return b.ef.Invalid()
		}
		name := mdef.Name
		if mdef.OriginalName != "" {
			name = mdef.OriginalName
		}
		// materials have no intrinsic semantics and use named arguments
		return b.TransformCall(
			expr.Type, scene.SemanticUnknown, dagUnmangle(name),
			mdef.ParameterCount, inst.Arguments, true)

	default:
		b.log.Error("unsupported callee class", "tag", tag, "class", b.trans.ClassOf(tag))
		return b.ef.Invalid()
	}
}

// transformDirectCall lowers a call whose definition is already resolved.
func (b *Builder) transformDirectCall(expr *scene.DirectCallExpr) ast.Expression {
	tag := expr.Definition

	switch b.trans.ClassOf(tag) {
	case scene.ClassFunctionDefinition:
		fdef, ok := b.trans.FunctionDefinition(tag)
		if !ok {
			b.log.Error("function definition not found", "tag", tag)
			return b.ef.Invalid()
		}
		name := fdef.Name
		if fdef.OriginalName != "" {
			name = fdef.OriginalName
		}
		return b.TransformCall(
			expr.Type, fdef.Semantic, dagUnmangle(name),
			fdef.ParameterCount, expr.Arguments, false)

	case scene.ClassMaterialDefinition:
		mdef, ok := b.trans.MaterialDefinition(tag)
		if !ok {
			b.log.Error("material definition not found", "tag", tag)
			return b.ef.Invalid()
		}
		name := mdef.Name
		if mdef.OriginalName != "" {
			name = mdef.OriginalName
		}
		return b.TransformCall(
			expr.Type, scene.SemanticUnknown, dagUnmangle(name),
			mdef.ParameterCount, expr.Arguments, true)

	default:
		b.log.Error("unsupported definition class", "tag", tag, "class", b.trans.ClassOf(tag))
		return b.ef.Invalid()
	}
}

// dagUnmangle strips the signature suffix from a mangled definition name.
// A trailing $version marker on deprecated names is kept.
func dagUnmangle(name string) string {
	if p := strings.IndexByte(name, '('); p >= 0 {
		return name[:p]
	}
	return name
}

// removeDeprecated strips the trailing $version marker from a name.
func removeDeprecated(name string) string {
	if p := strings.LastIndexByte(name, '$'); p >= 0 {
		return name[:p]
	}
	return name
}
