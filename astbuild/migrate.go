package astbuild

import (
	"math"
	"strings"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

// callSite carries one resolved call through the migration rules.
type callSite struct {
	retType scene.Type
	callee  string
	nParams int
	args    *scene.ExprList
	named   bool
}

// anyArity matches a migration rule regardless of the observed parameter
// count; used when the legacy form is detected by other means.
const anyArity = -1

// migrationKey selects a migration rule by semantic and observed arity.
type migrationKey struct {
	sema  scene.Semantic
	arity int
}

// migration restructures a legacy call to the current signature. It returns
// (nil, false) to fall through when the call turns out not to be legacy
// after all.
type migration func(b *Builder, c *callSite) (ast.Expression, bool)

// migrations maps {semantic, legacy arity} to its rewrite. Rules trigger
// only at their legacy arity; calls already at the current parameter count
// pass through untouched. New language-version migrations are new entries
// here, not new control flow.
var migrations map[migrationKey]migration

func init() {
	migrations = map[migrationKey]migration{
		// measured_edf gained a multiplier (1.1) and a tangent_u (1.2) parameter
		{scene.SemanticDFMeasuredEDF, 4}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateMeasuredEDF(c, true), true
		},
		{scene.SemanticDFMeasuredEDF, 5}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateMeasuredEDF(c, false), true
		},

		// fresnel_layer 1.3 half-colored form became color_fresnel_layer in 1.4;
		// the legacy form is marked by a $version suffix on the callee name
		{scene.SemanticDFFresnelLayer, anyArity}: (*Builder).migrateFresnelLayer,

		// spot_edf gained a spread parameter in 1.1
		{scene.SemanticDFSpotEDF, 4}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateSpotEDF(c), true
		},

		// rounded_corner_normal gained a roundness parameter in 1.3
		{scene.SemanticStateRoundedCornerNormal, 2}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateRoundedCorner(c), true
		},

		// tex queries on 2-D textures gained a uv_tile parameter in 1.4
		{scene.SemanticTexWidth, 1}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 1), true
		},
		{scene.SemanticTexHeight, 1}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 1), true
		},
		{scene.SemanticTexTexelFloat, 2}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 2), true
		},
		{scene.SemanticTexTexelFloat2, 2}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 2), true
		},
		{scene.SemanticTexTexelFloat3, 2}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 2), true
		},
		{scene.SemanticTexTexelFloat4, 2}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 2), true
		},
		{scene.SemanticTexTexelColor, 2}: func(b *Builder, c *callSite) (ast.Expression, bool) {
			return b.migrateTexQuery(c, 2), true
		},
	}
}

// applyMigration runs the matching migration rule, if any. The exact-arity
// rule wins over an any-arity rule for the same semantic.
func (b *Builder) applyMigration(sema scene.Semantic, c *callSite) (ast.Expression, bool) {
	if m, ok := migrations[migrationKey{sema, c.nParams}]; ok {
		return m(b, c)
	}
	if m, ok := migrations[migrationKey{sema, anyArity}]; ok {
		return m(b, c)
	}
	return nil, false
}

// currentCall starts the rebuilt call against the current (non-deprecated)
// callee name.
func (b *Builder) currentCall(c *callSite) *ast.Call {
	qname := b.QualifiedName(removeDeprecated(c.callee))
	return b.ef.Call(b.toReference(qname, nil))
}

// textureTangentU builds the default tangent-direction sub-expression,
// state::texture_tangent_u(0).
func (b *Builder) textureTangentU() ast.Expression {
	call := b.ef.Call(b.toReference(b.QualifiedName("state::texture_tangent_u"), nil))
	call.AddArgument(b.ef.PositionalArgument(b.ef.Literal(b.vf.Int(0))))
	return call
}

// migrateMeasuredEDF rebuilds a 4- or 5-argument measured_edf call to the
// current 6-argument form: the multiplier (for the 4-argument form) lands at
// target position 1 and the tangent_u default at target position 4, all
// original arguments keeping their relative order.
func (b *Builder) migrateMeasuredEDF(c *callSite, insertMultiplier bool) ast.Expression {
	call := b.currentCall(c)

	j := 0
	for i := 0; i < c.nParams; i++ {
		if insertMultiplier && j == 1 {
			lit := b.ef.Literal(b.vf.Float(1.0))
			call.AddArgument(b.argument(c.named, "multiplier", lit))
			j++
		}
		if j == 4 {
			call.AddArgument(b.argument(c.named, "tangent_u", b.textureTangentU()))
			j++
		}
		expr := b.TransformExpr(c.args.Expr(i))
		call.AddArgument(b.argument(c.named, c.args.Name(i), expr))
		j++
	}
	return call
}

// migrateFresnelLayer converts the legacy half-colored layering call into
// its fully-colored successor: the callee is renamed and the weight argument
// is wrapped in a color constructor. Calls without the version marker are
// not legacy and fall through.
func (b *Builder) migrateFresnelLayer(c *callSite) (ast.Expression, bool) {
	if !strings.Contains(c.callee, "$") {
		return nil, false
	}

	call := b.ef.Call(b.toReference(b.QualifiedName("::df::color_fresnel_layer"), nil))

	for i := 0; i < c.nParams; i++ {
		expr := b.TransformExpr(c.args.Expr(i))

		if i == 1 {
			// wrap by color constructor
			wrap := b.ef.Call(b.toReference(b.QualifiedName("color"), nil))
			wrap.AddArgument(b.ef.PositionalArgument(expr))
			expr = wrap
		}

		call.AddArgument(b.argument(c.named, c.args.Name(i), expr))
	}
	return call, true
}

// migrateSpotEDF rebuilds a 4-argument spot_edf call to the current form,
// inserting the default spread angle at target position 1.
func (b *Builder) migrateSpotEDF(c *callSite) ast.Expression {
	call := b.currentCall(c)

	for i := 0; i < c.nParams; i++ {
		if i == 1 {
			lit := b.ef.Literal(b.vf.Float(math.Pi))
			call.AddArgument(b.argument(c.named, "spread", lit))
		}
		expr := b.TransformExpr(c.args.Expr(i))
		call.AddArgument(b.argument(c.named, c.args.Name(i), expr))
	}
	return call
}

// migrateRoundedCorner rebuilds a 2-argument rounded_corner_normal call,
// appending the default roundness after the original arguments.
func (b *Builder) migrateRoundedCorner(c *callSite) ast.Expression {
	call := b.currentCall(c)

	for i := 0; i < c.nParams; i++ {
		expr := b.TransformExpr(c.args.Expr(i))
		call.AddArgument(b.argument(c.named, c.args.Name(i), expr))
	}

	lit := b.ef.Literal(b.vf.Float(1.0))
	call.AddArgument(b.argument(c.named, "roundness", lit))
	return call
}

// migrateTexQuery rebuilds width/height/texel lookups, appending a
// zero-valued uv_tile argument when, and only when, the texture argument is
// 2-D. Non-2-D shapes were never versioned and keep their argument list.
func (b *Builder) migrateTexQuery(c *callSite, nArgs int) ast.Expression {
	call := b.currentCall(c)

	for i := 0; i < nArgs; i++ {
		expr := b.TransformExpr(c.args.Expr(i))
		call.AddArgument(b.argument(c.named, c.args.Name(i), expr))
	}

	if isTex2D(c.args.Expr(0)) {
		lit := b.ef.Literal(b.vf.IntVector2Zero())
		call.AddArgument(b.argument(c.named, "uv_tile", lit))
	}
	return call
}

// isTex2D reports whether the expression's type is the 2-D texture kind.
func isTex2D(e scene.Expr) bool {
	if e == nil {
		return false
	}
	t, ok := scene.SkipAliases(e.ResultType()).(*scene.TextureType)
	return ok && t.Shape == scene.Texture2D
}
