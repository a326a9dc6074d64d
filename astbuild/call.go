package astbuild

import (
	"strings"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

// TransformCall lowers a resolved call into an AST expression. Operator
// semantics become operator expressions, legacy signatures are migrated to
// the current language version, graph pseudo-intrinsics are lowered
// structurally, and everything else becomes a qualified call.
//
// calleeName is the unmangled callee name; namedArgs selects named over
// positional argument form (set for material-instance calls).
func (b *Builder) TransformCall(
	retType scene.Type,
	sema scene.Semantic,
	calleeName string,
	nParams int,
	args *scene.ExprList,
	namedArgs bool,
) ast.Expression {
	b.noteUsedType(retType)

	if sema.IsOperator() {
		return b.transformOperator(sema, args)
	}

	site := &callSite{
		retType: retType,
		callee:  calleeName,
		nParams: nParams,
		args:    args,
		named:   namedArgs,
	}
	if expr, ok := b.applyMigration(sema, site); ok {
		return expr
	}

	switch sema {
	case scene.SemanticDAGFieldAccess:
		compound := b.TransformExpr(args.Expr(0))
		fsym := fieldSymbol(calleeName)
		if fsym == "" {
			b.log.Error("could not retrieve the field from a field access", "callee", calleeName)
			return b.ef.Invalid()
		}
		member := b.symbolReference(b.st.Symbol(fsym))
		return b.ef.Binary(ast.BinarySelect, compound, member)

	case scene.SemanticDAGIndexAccess:
		comp := b.TransformExpr(args.Expr(0))
		index := b.TransformExpr(args.Expr(1))
		return b.ef.Binary(ast.BinaryArrayIndex, comp, index)

	case scene.SemanticDAGArrayConstructor:
		arr, ok := scene.SkipAliases(retType).(*scene.ArrayType)
		if !ok {
			b.log.Error("array constructor with non-array return type")
			return b.ef.Invalid()
		}
		call := b.ef.Call(b.ef.Reference(b.TypeName(arr.Elem)))
		for i := 0; i < nParams; i++ {
			call.AddArgument(b.ef.PositionalArgument(b.TransformExpr(args.Expr(i))))
		}
		return call

	case scene.SemanticDAGArrayLength:
		arg := args.Expr(0)
		arr, ok := scene.SkipAliases(arg.ResultType()).(*scene.ArrayType)
		if !ok {
			b.log.Error("array length of non-array argument")
			return b.ef.Invalid()
		}
		if arr.Immediate() {
			return b.ef.Literal(b.vf.Int(int32(arr.Size)))
		}
		return b.toReference(b.QualifiedName(arr.DeferredSize), nil)

	case scene.SemanticDAGSetObjectID, scene.SemanticDAGSetTransforms:
		// reserved for lambdas, never valid in a material expression
		b.log.Error("unexpected graph annotation intrinsic", "semantic", sema)
		return b.ef.Invalid()

	default:
		call := b.ef.Call(b.toReference(b.QualifiedName(calleeName), nil))
		for i := 0; i < nParams; i++ {
			expr := b.TransformExpr(args.Expr(i))
			call.AddArgument(b.argument(namedArgs, args.Name(i), expr))
		}
		return call
	}
}

// noteUsedType appends the symbol of a user struct or non-predefined enum
// return type to the used-type list.
func (b *Builder) noteUsedType(retType scene.Type) {
	switch t := scene.SkipAliases(retType).(type) {
	case *scene.StructType:
		if t.Predefined == scene.StructUser {
			b.usedTypes = append(b.usedTypes, b.st.UserTypeSymbol(t.Symbol))
		}
	case *scene.EnumType:
		// only intensity_mode is predefined in the target language
		if t.Predefined != scene.EnumIntensityMode {
			b.usedTypes = append(b.usedTypes, b.st.UserTypeSymbol(t.Symbol))
		}
	}
}

// transformOperator synthesizes the operator expression for an operator
// semantic from the call's arguments.
func (b *Builder) transformOperator(sema scene.Semantic, args *scene.ExprList) ast.Expression {
	switch {
	case sema.IsUnaryOperator():
		arg := b.TransformExpr(args.Expr(0))
		return b.ef.Unary(unaryOperator(sema), arg)

	case sema.IsBinaryOperator():
		l := b.TransformExpr(args.Expr(0))
		r := b.TransformExpr(args.Expr(1))
		return b.ef.Binary(binaryOperator(sema), l, r)

	default:
		// ternary operator with lazy evaluation
		cond := b.TransformExpr(args.Expr(0))
		trueRes := b.TransformExpr(args.Expr(1))
		falseRes := b.TransformExpr(args.Expr(2))
		return b.ef.Conditional(cond, trueRes, falseRes)
	}
}

// argument builds a named or positional argument depending on mode.
func (b *Builder) argument(named bool, name string, expr ast.Expression) *ast.Argument {
	if named {
		return b.ef.NamedArgument(b.SimpleName(name), expr)
	}
	return b.ef.PositionalArgument(expr)
}

// fieldSymbol extracts the trailing field name from the mangled callee of a
// field access, skipping over a ".mdle::" module marker if present.
func fieldSymbol(def string) string {
	s := def
	if p := strings.Index(s, ".mdle::"); p >= 0 {
		s = s[p+len(".mdle::"):]
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return s[dot+1:]
	}
	return ""
}

func unaryOperator(sema scene.Semantic) ast.UnaryOp {
	switch sema {
	case scene.SemanticOperatorPositive:
		return ast.UnaryPositive
	case scene.SemanticOperatorNegative:
		return ast.UnaryNegative
	case scene.SemanticOperatorLogicalNot:
		return ast.UnaryLogicalNot
	default:
		return ast.UnaryComplement
	}
}

func binaryOperator(sema scene.Semantic) ast.BinaryOp {
	switch sema {
	case scene.SemanticOperatorMultiply:
		return ast.BinaryMultiply
	case scene.SemanticOperatorDivide:
		return ast.BinaryDivide
	case scene.SemanticOperatorModulo:
		return ast.BinaryModulo
	case scene.SemanticOperatorPlus:
		return ast.BinaryPlus
	case scene.SemanticOperatorMinus:
		return ast.BinaryMinus
	case scene.SemanticOperatorShiftLeft:
		return ast.BinaryShiftLeft
	case scene.SemanticOperatorShiftRight:
		return ast.BinaryShiftRight
	case scene.SemanticOperatorUnsignedShiftRight:
		return ast.BinaryUnsignedShiftRight
	case scene.SemanticOperatorLess:
		return ast.BinaryLess
	case scene.SemanticOperatorLessEqual:
		return ast.BinaryLessEqual
	case scene.SemanticOperatorGreater:
		return ast.BinaryGreater
	case scene.SemanticOperatorGreaterEqual:
		return ast.BinaryGreaterEqual
	case scene.SemanticOperatorEqual:
		return ast.BinaryEqual
	case scene.SemanticOperatorNotEqual:
		return ast.BinaryNotEqual
	case scene.SemanticOperatorBitwiseAnd:
		return ast.BinaryBitwiseAnd
	case scene.SemanticOperatorBitwiseXor:
		return ast.BinaryBitwiseXor
	case scene.SemanticOperatorBitwiseOr:
		return ast.BinaryBitwiseOr
	case scene.SemanticOperatorLogicalAnd:
		return ast.BinaryLogicalAnd
	default:
		return ast.BinaryLogicalOr
	}
}
